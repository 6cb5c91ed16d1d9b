package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kizuna/internal/model"
)

type NewsRepository interface {
	// List returns news newest first; limit <= 0 means all.
	List(ctx context.Context, limit int) ([]model.NewsItem, error)
	GetBySlug(ctx context.Context, slug string) (*model.NewsItem, error)
	ListExcept(ctx context.Context, excludeSlug string, limit int) ([]model.NewsItem, error)
	Insert(ctx context.Context, n *model.NewsItem) error
	Update(ctx context.Context, n *model.NewsItem) error
	Delete(ctx context.Context, id string) error
}

type newsRepo struct {
	db *sql.DB
}

func NewNewsRepo(db *sql.DB) NewsRepository {
	return &newsRepo{db: db}
}

const newsSelect = `
	SELECT id, slug, COALESCE(title, ''), COALESCE(content, ''), image, created_at
	FROM news
`

func (r *newsRepo) List(ctx context.Context, limit int) ([]model.NewsItem, error) {
	if limit <= 0 {
		return r.query(ctx, newsSelect+` ORDER BY created_at DESC`)
	}
	return r.query(ctx, newsSelect+` ORDER BY created_at DESC LIMIT $1`, limit)
}

func (r *newsRepo) ListExcept(ctx context.Context, excludeSlug string, limit int) ([]model.NewsItem, error) {
	return r.query(ctx, newsSelect+` WHERE slug <> $1 ORDER BY created_at DESC LIMIT $2`, excludeSlug, limit)
}

// GetBySlug returns nil, nil when no item has the slug.
func (r *newsRepo) GetBySlug(ctx context.Context, slug string) (*model.NewsItem, error) {
	var n model.NewsItem
	err := r.db.QueryRowContext(ctx, newsSelect+` WHERE slug = $1`, slug).
		Scan(&n.ID, &n.Slug, &n.Title, &n.Content, &n.Image, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *newsRepo) query(ctx context.Context, query string, args ...any) ([]model.NewsItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}
	defer rows.Close()

	items := []model.NewsItem{}
	for rows.Next() {
		var n model.NewsItem
		if err := rows.Scan(&n.ID, &n.Slug, &n.Title, &n.Content, &n.Image, &n.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// Insert fails with ErrConflict when the slug is taken.
func (r *newsRepo) Insert(ctx context.Context, n *model.NewsItem) error {
	query := `
		INSERT INTO news (slug, title, content, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, n.Slug, n.Title, n.Content, n.Image).Scan(&n.ID, &n.CreatedAt)
	return translate(err)
}

// Update leaves slug and created_at alone.
func (r *newsRepo) Update(ctx context.Context, n *model.NewsItem) error {
	query := `
		UPDATE news
		SET title = $1, content = $2, image = $3
		WHERE id = $4
	`
	res, err := r.db.ExecContext(ctx, query, n.Title, n.Content, n.Image, n.ID)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *newsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id)
	return err
}
