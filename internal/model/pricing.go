package model

// PricingPlan is edited in place; Price is free text ("620 лв. / месец").
type PricingPlan struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Price       string `db:"price" json:"price"`
	Description string `db:"description" json:"description"`
}
