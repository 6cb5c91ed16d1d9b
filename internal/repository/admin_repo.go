package repository

import (
	"context"
	"database/sql"
	"errors"

	"kizuna/internal/model"
)

// AdminRepository manages the admins allow-list.
type AdminRepository interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
	Add(ctx context.Context, userID string) error
	Remove(ctx context.Context, userID string) error
	List(ctx context.Context) ([]model.Admin, error)
}

type adminRepo struct {
	db *sql.DB
}

func NewAdminRepo(db *sql.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) IsAdmin(ctx context.Context, userID string) (bool, error) {
	var id string
	err := r.db.QueryRowContext(ctx, `SELECT user_id FROM admins WHERE user_id = $1`, userID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Add is idempotent.
func (r *adminRepo) Add(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO admins (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID)
	return err
}

func (r *adminRepo) Remove(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM admins WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *adminRepo) List(ctx context.Context) ([]model.Admin, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id, created_at FROM admins ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	admins := []model.Admin{}
	for rows.Next() {
		var a model.Admin
		if err := rows.Scan(&a.UserID, &a.CreatedAt); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}
