package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		dev  bool
		want string
	}{
		{"dev url", "postgres://u:p@localhost:54322/postgres", true, "postgres://u:p@localhost:54322/postgres?sslmode=disable"},
		{"dev url with query", "postgres://u:p@localhost/db?x=1", true, "postgres://u:p@localhost/db?x=1&sslmode=disable"},
		{"dev keyword", "host=localhost dbname=postgres", true, "host=localhost dbname=postgres sslmode=disable"},
		{"dev explicit sslmode", "postgres://h/db?sslmode=require", true, "postgres://h/db?sslmode=require"},
		{"prod pooler", "postgresql://u:p@pooler.supabase.com:6543/postgres", false, "postgresql://u:p@pooler.supabase.com:6543/postgres?default_query_exec_mode=simple_protocol"},
		{"prod explicit", "postgres://h/db?default_query_exec_mode=exec", false, "postgres://h/db?default_query_exec_mode=exec"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DSN(tt.in, tt.dev))
		})
	}
}
