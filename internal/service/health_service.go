package service

import (
	"context"
	"fmt"

	"kizuna/internal/repository"
)

type HealthService interface {
	Keepalive(ctx context.Context) error
}

type healthService struct {
	repo repository.HealthRepository
}

func NewHealthService(repo repository.HealthRepository) HealthService {
	return &healthService{repo: repo}
}

func (s *healthService) Keepalive(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return fmt.Errorf("keepalive query failed: %w", err)
	}
	return nil
}
