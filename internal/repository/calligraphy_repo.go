package repository

import (
	"context"
	"database/sql"
	"fmt"

	"kizuna/internal/model"

	"github.com/lib/pq"
)

type CalligraphyRepository interface {
	List(ctx context.Context) ([]model.CalligraphyCourse, error)
	Insert(ctx context.Context, c *model.CalligraphyCourse) error
	Update(ctx context.Context, c *model.CalligraphyCourse) error
	Delete(ctx context.Context, id string) error
}

type calligraphyRepo struct {
	db *sql.DB
}

func NewCalligraphyRepo(db *sql.DB) CalligraphyRepository {
	return &calligraphyRepo{db: db}
}

// List returns the workshops by date, each with its teacher.
func (r *calligraphyRepo) List(ctx context.Context) ([]model.CalligraphyCourse, error) {
	query := `
		SELECT c.id, c.title, COALESCE(c.date::text, ''), COALESCE(c.schedule_line, ''),
			COALESCE(c.classes_count, 1), c.price, c.teacher_id, c.description, c.note,
			COALESCE(c.href, '/contact'),
			` + joinedTeacherColumns + `
		FROM calligraphy_courses c
		LEFT JOIN teachers t ON t.id = c.teacher_id
		ORDER BY c.date ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query calligraphy courses: %w", err)
	}
	defer rows.Close()

	courses := []model.CalligraphyCourse{}
	for rows.Next() {
		var (
			c model.CalligraphyCourse
			j joinedTeacher
		)
		dest := []any{
			&c.ID, &c.Title, &c.Date, &c.ScheduleLine,
			&c.ClassesCount, &c.Price, &c.TeacherID, pq.Array(&c.Description), &c.Note,
			&c.Href,
		}
		if err := rows.Scan(append(dest, j.dest()...)...); err != nil {
			return nil, fmt.Errorf("failed to scan calligraphy course: %w", err)
		}
		if c.Description == nil {
			c.Description = []string{}
		}
		c.Teacher = j.teacher()
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *calligraphyRepo) Insert(ctx context.Context, c *model.CalligraphyCourse) error {
	query := `
		INSERT INTO calligraphy_courses (title, date, schedule_line, classes_count, price, teacher_id, description, note, href)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		c.Title, c.Date, c.ScheduleLine, c.ClassesCount, c.Price, c.TeacherID, pq.Array(c.Description), c.Note, c.Href,
	).Scan(&c.ID)
}

func (r *calligraphyRepo) Update(ctx context.Context, c *model.CalligraphyCourse) error {
	query := `
		UPDATE calligraphy_courses
		SET title = $1, date = $2::date, schedule_line = $3, classes_count = $4, price = $5,
			teacher_id = $6, description = $7, note = $8, href = $9
		WHERE id = $10
	`
	res, err := r.db.ExecContext(ctx, query,
		c.Title, c.Date, c.ScheduleLine, c.ClassesCount, c.Price, c.TeacherID, pq.Array(c.Description), c.Note, c.Href, c.ID,
	)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *calligraphyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM calligraphy_courses WHERE id = $1`, id)
	return err
}
