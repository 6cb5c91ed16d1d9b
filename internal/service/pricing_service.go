package service

import (
	"context"
	"fmt"

	"kizuna/internal/model"
	"kizuna/internal/repository"
)

type PricingService interface {
	List(ctx context.Context) ([]model.PricingPlan, error)
	Update(ctx context.Context, p *model.PricingPlan) error
}

type pricingService struct {
	repo repository.PricingRepository
}

func NewPricingService(repo repository.PricingRepository) PricingService {
	return &pricingService{repo: repo}
}

func (s *pricingService) List(ctx context.Context) ([]model.PricingPlan, error) {
	plans, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pricing plans: %w", err)
	}
	return plans, nil
}

// Update overwrites name, price and description; last write wins.
func (s *pricingService) Update(ctx context.Context, p *model.PricingPlan) error {
	if err := s.repo.Update(ctx, p); err != nil {
		return fmt.Errorf("failed to update pricing plan %s: %w", p.ID, err)
	}
	return nil
}
