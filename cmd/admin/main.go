package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"kizuna/internal/config"
	"kizuna/internal/logger"
	"kizuna/internal/repository"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// admin manages the admins allow-list: the only way a signed-in user
// becomes an admin.
func main() {
	mode := flag.String("mode", "", "Action: add|remove|list|check")
	userID := flag.String("user", "", "Auth user ID (uuid) for add, remove and check")
	flag.Parse()

	envErr := godotenv.Load()
	logger := logger.New()
	if envErr != nil {
		logger.Warn().Msg("Warning: no .env file found")
	}

	cfg, err := config.LoadDB()
	if err != nil {
		logger.Fatal().Msgf("Error loading config: %v", err)
	}

	if *mode != "list" {
		if _, err := uuid.Parse(*userID); err != nil {
			logger.Fatal().Msgf("Invalid -user %q: %v", *userID, err)
		}
	}

	db, err := repository.Open(cfg.DBConnectionString, cfg.IsDevelopment(), logger)
	if err != nil {
		logger.Fatal().Msgf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	admins := repository.NewAdminRepo(db)

	var runErr error
	switch *mode {
	case "add":
		runErr = admins.Add(ctx, *userID)
		if runErr == nil {
			logger.Info().Str("user_id", *userID).Msg("Admin added")
		}
	case "remove":
		runErr = admins.Remove(ctx, *userID)
		if runErr == nil {
			logger.Info().Str("user_id", *userID).Msg("Admin removed")
		}
	case "check":
		var ok bool
		ok, runErr = admins.IsAdmin(ctx, *userID)
		if runErr == nil {
			fmt.Println(ok)
		}
	case "list":
		list, err := admins.List(ctx)
		runErr = err
		for _, a := range list {
			fmt.Printf("%s\t%s\n", a.UserID, a.CreatedAt.Format("2006-01-02"))
		}
	default:
		flag.Usage()
		os.Exit(2)
	}

	if runErr != nil {
		logger.Fatal().Msgf("%s failed: %v", *mode, runErr)
	}
}
