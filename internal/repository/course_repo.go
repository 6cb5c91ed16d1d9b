package repository

import (
	"context"
	"database/sql"
	"fmt"

	"kizuna/internal/model"

	"github.com/lib/pq"
)

// CourseRepository reads courses joined with their teacher.
type CourseRepository interface {
	List(ctx context.Context) ([]model.Course, error)
	ListByLevel(ctx context.Context, level model.Level) ([]model.Course, error)
	// ListUpcoming returns courses starting on or after fromDate (YYYY-MM-DD).
	ListUpcoming(ctx context.Context, fromDate string, limit int) ([]model.Course, error)
	ListRecent(ctx context.Context, limit int) ([]model.Course, error)
	Insert(ctx context.Context, c *model.Course) error
	Update(ctx context.Context, c *model.Course) error
	Delete(ctx context.Context, id string) error
}

type courseRepo struct {
	db *sql.DB
}

func NewCourseRepo(db *sql.DB) CourseRepository {
	return &courseRepo{db: db}
}

const courseSelect = `
	SELECT c.id, c.title, COALESCE(c.level, 'N5'), COALESCE(c.start_date::text, ''),
		COALESCE(c.total_hours, 0), COALESCE(c.price, 0), c.days, COALESCE(c.time, ''),
		COALESCE(c.format, ''), c.teacher_id, COALESCE(c.href, '/courses'), c.created_at,
		` + joinedTeacherColumns + `
	FROM courses c
	LEFT JOIN teachers t ON t.id = c.teacher_id
`

// List returns every course by start date.
func (r *courseRepo) List(ctx context.Context) ([]model.Course, error) {
	return r.query(ctx, courseSelect+` ORDER BY c.start_date ASC`)
}

// ListByLevel filters by level; LevelAll returns everything. A missing level
// counts as N5.
func (r *courseRepo) ListByLevel(ctx context.Context, level model.Level) ([]model.Course, error) {
	if level == "" || level == model.LevelAll {
		return r.List(ctx)
	}
	return r.query(ctx, courseSelect+` WHERE COALESCE(c.level, 'N5') = $1 ORDER BY c.start_date ASC`, string(level))
}

func (r *courseRepo) ListUpcoming(ctx context.Context, fromDate string, limit int) ([]model.Course, error) {
	return r.query(ctx, courseSelect+` WHERE c.start_date >= $1::date ORDER BY c.start_date ASC LIMIT $2`, fromDate, limit)
}

func (r *courseRepo) ListRecent(ctx context.Context, limit int) ([]model.Course, error) {
	return r.query(ctx, courseSelect+` ORDER BY c.start_date DESC NULLS LAST LIMIT $1`, limit)
}

func (r *courseRepo) query(ctx context.Context, query string, args ...any) ([]model.Course, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		var (
			c model.Course
			j joinedTeacher
		)
		dest := []any{
			&c.ID, &c.Title, &c.Level, &c.StartDate,
			&c.TotalHours, &c.Price, pq.Array(&c.Days), &c.Time,
			&c.Format, &c.TeacherID, &c.Href, &c.CreatedAt,
		}
		if err := rows.Scan(append(dest, j.dest()...)...); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		if c.Days == nil {
			c.Days = []string{}
		}
		c.Teacher = j.teacher()
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *courseRepo) Insert(ctx context.Context, c *model.Course) error {
	query := `
		INSERT INTO courses (title, level, start_date, total_hours, price, days, time, format, teacher_id, href)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		c.Title, c.Level, c.StartDate, c.TotalHours, c.Price, pq.Array(c.Days), c.Time, c.Format, c.TeacherID, c.Href,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *courseRepo) Update(ctx context.Context, c *model.Course) error {
	query := `
		UPDATE courses
		SET title = $1, level = $2, start_date = $3::date, total_hours = $4, price = $5,
			days = $6, time = $7, format = $8, teacher_id = $9, href = $10
		WHERE id = $11
	`
	res, err := r.db.ExecContext(ctx, query,
		c.Title, c.Level, c.StartDate, c.TotalHours, c.Price, pq.Array(c.Days), c.Time, c.Format, c.TeacherID, c.Href, c.ID,
	)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *courseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	return err
}
