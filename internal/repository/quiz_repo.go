package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"kizuna/internal/model"
)

type QuizRepository interface {
	ListActive(ctx context.Context) ([]model.QuizQuestion, error)
	List(ctx context.Context) ([]model.QuizQuestion, error)
	// Upsert inserts when q.ID is empty, otherwise inserts or replaces by id.
	Upsert(ctx context.Context, q *model.QuizQuestion) error
	Delete(ctx context.Context, id string) error
}

type quizRepo struct {
	db *sql.DB
}

func NewQuizRepo(db *sql.DB) QuizRepository {
	return &quizRepo{db: db}
}

const quizSelect = `
	SELECT id, COALESCE(question, ''), options, correct_index, explanation,
		COALESCE(is_active, true), COALESCE(order_index, 0), created_at, updated_at
	FROM quiz_questions
`

func (r *quizRepo) ListActive(ctx context.Context) ([]model.QuizQuestion, error) {
	return r.query(ctx, quizSelect+` WHERE is_active = true ORDER BY order_index ASC, created_at ASC`)
}

func (r *quizRepo) List(ctx context.Context) ([]model.QuizQuestion, error) {
	return r.query(ctx, quizSelect+` ORDER BY order_index ASC, created_at ASC`)
}

func (r *quizRepo) query(ctx context.Context, query string) ([]model.QuizQuestion, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query quiz questions: %w", err)
	}
	defer rows.Close()

	questions := []model.QuizQuestion{}
	for rows.Next() {
		var (
			id, question string
			options      []byte
			correct      sql.NullInt64
			explanation  sql.NullString
			isActive     bool
			orderIndex   int
			createdAt    sql.NullTime
			updatedAt    sql.NullTime
		)
		if err := rows.Scan(&id, &question, &options, &correct, &explanation, &isActive, &orderIndex, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		raw := map[string]any{
			"id":          id,
			"question":    question,
			"is_active":   isActive,
			"order_index": orderIndex,
		}
		if len(options) > 0 {
			var opts any
			if err := json.Unmarshal(options, &opts); err != nil {
				return nil, fmt.Errorf("quiz question %s has malformed options: %w", id, err)
			}
			raw["options"] = opts
		}
		if correct.Valid {
			raw["correct_index"] = int(correct.Int64)
		}
		if explanation.Valid {
			raw["explanation"] = explanation.String
		}

		q := model.NormalizeQuizQuestion(raw)
		if createdAt.Valid {
			q.CreatedAt = &createdAt.Time
		}
		if updatedAt.Valid {
			q.UpdatedAt = &updatedAt.Time
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (r *quizRepo) Upsert(ctx context.Context, q *model.QuizQuestion) error {
	options, err := json.Marshal(q.Options)
	if err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}

	if q.ID == "" {
		query := `
			INSERT INTO quiz_questions (question, options, correct_index, explanation, is_active, order_index)
			VALUES ($1, $2::jsonb, $3, $4, $5, $6)
			RETURNING id
		`
		return r.db.QueryRowContext(ctx, query,
			q.Question, string(options), q.CorrectIndex, q.Explanation, q.IsActive, q.OrderIndex,
		).Scan(&q.ID)
	}

	query := `
		INSERT INTO quiz_questions (id, question, options, correct_index, explanation, is_active, order_index)
		VALUES ($1, $2, $3::jsonb, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET question = EXCLUDED.question, options = EXCLUDED.options,
			correct_index = EXCLUDED.correct_index, explanation = EXCLUDED.explanation,
			is_active = EXCLUDED.is_active, order_index = EXCLUDED.order_index,
			updated_at = NOW()
	`
	_, err = r.db.ExecContext(ctx, query,
		q.ID, q.Question, string(options), q.CorrectIndex, q.Explanation, q.IsActive, q.OrderIndex,
	)
	return err
}

func (r *quizRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM quiz_questions WHERE id = $1`, id)
	return err
}
