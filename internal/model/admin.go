package model

import (
	"encoding/json"
	"time"
)

// Admin is a row of the admins allow-list.
type Admin struct {
	UserID    string    `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// PageConfig is a JSON document of page copy keyed by page slug.
type PageConfig struct {
	Slug string          `db:"slug" json:"slug"`
	Data json.RawMessage `db:"data" json:"data"`
}
