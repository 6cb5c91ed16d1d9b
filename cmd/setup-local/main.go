// Command setup-local prepares a local stack: the contact queue in Supabase
// Queues and, when PUBSUB_EMULATOR_HOST is set, the contact topic in the
// Pub/Sub emulator.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"kizuna/internal/config"
	"kizuna/internal/logger"
	"kizuna/internal/pgmq"
	"kizuna/internal/repository"

	"cloud.google.com/go/pubsub"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const topicRetention = 7 * 24 * time.Hour

func main() {
	reset := flag.Bool("reset", false, "delete every emulator topic and subscription first")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, relying on system environment variables.")
	}
	logger := logger.New()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Msgf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 1. Contact queue
	db, err := repository.Open(cfg.DBConnectionString, cfg.IsDevelopment(), logger)
	if err != nil {
		logger.Fatal().Msgf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()
	if err := pgmq.New(db).Create(ctx, cfg.ContactQueue); err != nil {
		logger.Fatal().Msgf("Failed to create queue: %v", err)
	}
	logger.Info().Msgf("Queue %s is ready", cfg.ContactQueue)

	// 2. Pub/Sub emulator
	if cfg.PubSubEmulatorHost == "" {
		logger.Info().Msg("PUBSUB_EMULATOR_HOST not set, skipping Pub/Sub setup")
		return
	}
	projectID := cfg.GCPProjectID
	if projectID == "" {
		projectID = "kizuna-local"
	}
	client, err := pubsub.NewClient(ctx, projectID,
		option.WithEndpoint(cfg.PubSubEmulatorHost),
		option.WithoutAuthentication(),
	)
	if err != nil {
		logger.Fatal().Msgf("Failed to create Pub/Sub client: %v", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error().Msgf("Failed to close pubsub client: %v", err)
		}
	}()

	if *reset {
		resetEmulator(ctx, client, logger)
	}
	topic := ensureTopic(ctx, client, logger, cfg.PubSubContactTopic)
	ensureSubscription(ctx, client, logger, cfg.PubSubContactTopic+"-sub", topic)
	logger.Info().Msg("Local setup complete")
}

// resetEmulator deletes all topics and subscriptions. Only for the emulator.
func resetEmulator(ctx context.Context, client *pubsub.Client, logger zerolog.Logger) {
	subs := client.Subscriptions(ctx)
	for {
		sub, err := subs.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Fatal().Msgf("Failed to list subscriptions: %v", err)
		}
		if err := sub.Delete(ctx); err != nil {
			logger.Warn().Msgf("Failed to delete subscription %s: %v", sub.ID(), err)
		}
	}

	topics := client.Topics(ctx)
	for {
		topic, err := topics.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Fatal().Msgf("Failed to list topics: %v", err)
		}
		if err := topic.Delete(ctx); err != nil {
			logger.Warn().Msgf("Failed to delete topic %s: %v", topic.ID(), err)
		}
	}
	logger.Info().Msg("Emulator reset")
}

func ensureTopic(ctx context.Context, client *pubsub.Client, logger zerolog.Logger, id string) *pubsub.Topic {
	topic := client.Topic(id)
	exists, err := topic.Exists(ctx)
	if err != nil {
		logger.Fatal().Msgf("Failed to check topic %s: %v", id, err)
	}
	if exists {
		logger.Info().Msgf("Topic %s already exists", id)
		return topic
	}
	topic, err = client.CreateTopicWithConfig(ctx, id, &pubsub.TopicConfig{RetentionDuration: topicRetention})
	if err != nil {
		logger.Fatal().Msgf("Failed to create topic %s: %v", id, err)
	}
	logger.Info().Msgf("Created topic %s", id)
	return topic
}

// ensureSubscription adds a pull subscription so published submissions can
// be inspected locally.
func ensureSubscription(ctx context.Context, client *pubsub.Client, logger zerolog.Logger, id string, topic *pubsub.Topic) {
	sub := client.Subscription(id)
	exists, err := sub.Exists(ctx)
	if err != nil {
		logger.Fatal().Msgf("Failed to check subscription %s: %v", id, err)
	}
	if exists {
		logger.Info().Msgf("Subscription %s already exists", id)
		return
	}
	if _, err := client.CreateSubscription(ctx, id, pubsub.SubscriptionConfig{
		Topic:       topic,
		AckDeadline: 60 * time.Second,
	}); err != nil {
		logger.Fatal().Msgf("Failed to create subscription %s: %v", id, err)
	}
	logger.Info().Msgf("Created subscription %s", id)
}
