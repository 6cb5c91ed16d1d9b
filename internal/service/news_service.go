package service

import (
	"context"
	"fmt"

	"kizuna/internal/model"
	"kizuna/internal/repository"
)

const DefaultMoreNews = 10

type NewsService interface {
	// List returns news newest first; limit <= 0 means all.
	List(ctx context.Context, limit int) ([]model.NewsItem, error)
	// BySlug fails with ErrNewsNotFound for an unknown slug.
	BySlug(ctx context.Context, slug string) (*model.NewsItem, error)
	// More lists other news for the article sidebar.
	More(ctx context.Context, excludeSlug string, limit int) ([]model.NewsItem, error)
}

type newsService struct {
	repo repository.NewsRepository
}

func NewNewsService(repo repository.NewsRepository) NewsService {
	return &newsService{repo: repo}
}

func (s *newsService) List(ctx context.Context, limit int) ([]model.NewsItem, error) {
	items, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	return items, nil
}

func (s *newsService) BySlug(ctx context.Context, slug string) (*model.NewsItem, error) {
	item, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get news %q: %w", slug, err)
	}
	if item == nil {
		return nil, ErrNewsNotFound
	}
	return item, nil
}

func (s *newsService) More(ctx context.Context, excludeSlug string, limit int) ([]model.NewsItem, error) {
	if limit <= 0 {
		limit = DefaultMoreNews
	}
	items, err := s.repo.ListExcept(ctx, excludeSlug, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list more news: %w", err)
	}
	return items, nil
}
