package service

import (
	"context"
	"encoding/json"
	"fmt"

	"kizuna/internal/model"
	"kizuna/internal/repository"

	"github.com/rs/zerolog"
)

type PageConfigService interface {
	// Get returns the stored document, the built-in default, or
	// ErrPageConfigNotFound.
	Get(ctx context.Context, slug string) (json.RawMessage, error)
}

type pageConfigService struct {
	repo   repository.PageConfigRepository
	logger zerolog.Logger
}

func NewPageConfigService(repo repository.PageConfigRepository, logger zerolog.Logger) PageConfigService {
	return &pageConfigService{
		repo:   repo,
		logger: logger.With().Str("service", "page_config").Logger(),
	}
}

// Get falls back to the default on a read error too: page copy is not worth
// failing a page over.
func (s *pageConfigService) Get(ctx context.Context, slug string) (json.RawMessage, error) {
	pc, err := s.repo.Get(ctx, slug)
	if err != nil {
		if def := model.DefaultPageConfig(slug); def != nil {
			s.logger.Warn().Err(err).Str("slug", slug).Msg("using default page config")
			return def, nil
		}
		return nil, fmt.Errorf("failed to load page config %s: %w", slug, err)
	}
	if pc != nil {
		return pc.Data, nil
	}
	if def := model.DefaultPageConfig(slug); def != nil {
		return def, nil
	}
	return nil, ErrPageConfigNotFound
}
