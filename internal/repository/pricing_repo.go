package repository

import (
	"context"
	"database/sql"

	"kizuna/internal/model"
)

type PricingRepository interface {
	List(ctx context.Context) ([]model.PricingPlan, error)
	Update(ctx context.Context, p *model.PricingPlan) error
}

type pricingRepo struct {
	db *sql.DB
}

func NewPricingRepo(db *sql.DB) PricingRepository {
	return &pricingRepo{db: db}
}

func (r *pricingRepo) List(ctx context.Context) ([]model.PricingPlan, error) {
	query := `
		SELECT id, COALESCE(name, ''), COALESCE(price, ''), COALESCE(description, '')
		FROM pricing_plans
		ORDER BY name ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := []model.PricingPlan{}
	for rows.Next() {
		var p model.PricingPlan
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *pricingRepo) Update(ctx context.Context, p *model.PricingPlan) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE pricing_plans SET name = $1, price = $2, description = $3 WHERE id = $4`,
		p.Name, p.Price, p.Description, p.ID,
	)
	if err != nil {
		return err
	}
	return expectOne(res)
}
