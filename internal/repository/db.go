package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
)

// Open opens the pool. Local databases run without TLS; hosted ones sit
// behind a transaction pooler, which cannot use server-side prepared
// statements.
func Open(connString string, development bool, logger zerolog.Logger) (*sql.DB, error) {
	dsn := DSN(connString, development)
	if pc, err := pgconn.ParseConfig(dsn); err == nil {
		logger.Info().Str("db_host", pc.Host).Uint16("db_port", pc.Port).Msg("DB connection target")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	logger.Info().Msg("Database connection successful")

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)
	return db, nil
}

// DSN adds sslmode=disable in development and the simple query protocol
// elsewhere, unless the connection string already sets them.
func DSN(dsn string, development bool) string {
	isURL := strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
	add := func(param string) {
		switch {
		case !isURL:
			dsn += " " + param
		case strings.Contains(dsn, "?"):
			dsn += "&" + param
		default:
			dsn += "?" + param
		}
	}

	if development && !strings.Contains(dsn, "sslmode") {
		add("sslmode=disable")
	}
	if !development && !strings.Contains(dsn, "default_query_exec_mode") {
		add("default_query_exec_mode=simple_protocol")
	}
	return dsn
}
