package repository

import (
	"context"
	"database/sql"

	"kizuna/internal/model"
)

type TeacherRepository interface {
	List(ctx context.Context) ([]model.Teacher, error)
	Insert(ctx context.Context, t *model.Teacher) error
	Update(ctx context.Context, t *model.Teacher) error
	Delete(ctx context.Context, id string) error
}

type teacherRepo struct {
	db *sql.DB
}

func NewTeacherRepo(db *sql.DB) TeacherRepository {
	return &teacherRepo{db: db}
}

// List returns all teachers, newest first.
func (r *teacherRepo) List(ctx context.Context) ([]model.Teacher, error) {
	query := `
		SELECT id, name, title, COALESCE(image, ''), description, created_at
		FROM teachers
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teachers := []model.Teacher{}
	for rows.Next() {
		var t model.Teacher
		if err := rows.Scan(&t.ID, &t.Name, &t.Title, &t.Image, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

func (r *teacherRepo) Insert(ctx context.Context, t *model.Teacher) error {
	query := `
		INSERT INTO teachers (name, title, image, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, t.Name, t.Title, t.Image, t.Description).
		Scan(&t.ID, &t.CreatedAt)
}

func (r *teacherRepo) Update(ctx context.Context, t *model.Teacher) error {
	query := `
		UPDATE teachers
		SET name = $1, title = $2, image = $3, description = $4
		WHERE id = $5
	`
	res, err := r.db.ExecContext(ctx, query, t.Name, t.Title, t.Image, t.Description, t.ID)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *teacherRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	return err
}

// Columns of a LEFT JOINed teachers row aliased "t".
const joinedTeacherColumns = `t.id, t.name, t.title, t.image, t.description, t.created_at`

type joinedTeacher struct {
	id          sql.NullString
	name        sql.NullString
	title       sql.NullString
	image       sql.NullString
	description sql.NullString
	createdAt   sql.NullTime
}

func (j *joinedTeacher) dest() []any {
	return []any{&j.id, &j.name, &j.title, &j.image, &j.description, &j.createdAt}
}

// teacher is nil when the join found no row.
func (j *joinedTeacher) teacher() *model.Teacher {
	if !j.id.Valid {
		return nil
	}
	t := &model.Teacher{
		ID:    j.id.String,
		Name:  j.name.String,
		Image: j.image.String,
	}
	if j.title.Valid {
		t.Title = &j.title.String
	}
	if j.description.Valid {
		t.Description = &j.description.String
	}
	if j.createdAt.Valid {
		t.CreatedAt = j.createdAt.Time
	}
	return t
}
