package repository

import (
	"context"
	"database/sql"
	"errors"

	"kizuna/internal/model"
)

type PageConfigRepository interface {
	// Get returns nil, nil when the slug has no row.
	Get(ctx context.Context, slug string) (*model.PageConfig, error)
}

type pageConfigRepo struct {
	db *sql.DB
}

func NewPageConfigRepo(db *sql.DB) PageConfigRepository {
	return &pageConfigRepo{db: db}
}

func (r *pageConfigRepo) Get(ctx context.Context, slug string) (*model.PageConfig, error) {
	var (
		pc   model.PageConfig
		data []byte
	)
	err := r.db.QueryRowContext(ctx, `SELECT slug, data FROM page_configs WHERE slug = $1`, slug).Scan(&pc.Slug, &data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	pc.Data = data
	return &pc, nil
}
