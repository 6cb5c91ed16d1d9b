package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// SecretPrefix marks a value that must be fetched from Secret Manager.
const SecretPrefix = "sm://"

type Config struct {
	// Supabase project
	DBConnectionString string `envconfig:"DB_CONNECTION_STRING" required:"true"`
	SupabaseURL        string `envconfig:"SUPABASE_URL" required:"true"`
	SupabaseAnonKey    string `envconfig:"SUPABASE_ANON_KEY" required:"true"`
	JWTSecret          string `envconfig:"SUPABASE_JWT_SECRET" required:"true"`
	S3URL              string `envconfig:"SUPABASE_S3_URL" required:"true"`
	S3Region           string `envconfig:"SUPABASE_S3_REGION" default:"eu-central-1"`
	S3AccessKey        string `envconfig:"SUPABASE_S3_ACCESS_KEY" required:"true"`
	S3SecretKey        string `envconfig:"SUPABASE_S3_SECRET_KEY" required:"true"`

	// Storage
	TeachersBucket string        `envconfig:"TEACHERS_BUCKET" default:"teachers"`
	NewsBucket     string        `envconfig:"NEWS_BUCKET" default:"news"`
	SignedURLTTL   time.Duration `envconfig:"SIGNED_URL_TTL" default:"1h"`
	MaxImageWidth  int           `envconfig:"MAX_IMAGE_WIDTH" default:"1600"`
	RedisURL       string        `envconfig:"REDIS_URL"`

	// HTTP
	Port              string   `envconfig:"PORT" default:"8080"`
	Environment       string   `envconfig:"ENV" default:"development"`
	AllowedOrigins    []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	SessionCookieName string   `envconfig:"SESSION_COOKIE_NAME" default:"sb-access-token"`
	LoginPath         string   `envconfig:"LOGIN_PATH" default:"/login"`
	HomePath          string   `envconfig:"HOME_PATH" default:"/"`
	AdminPath         string   `envconfig:"ADMIN_PATH" default:"/admin"`

	// Keepalive
	KeepaliveCron string `envconfig:"KEEPALIVE_CRON" default:"0 3 */3 * *"`

	// Contact form relay: formsubmit | sendgrid | pubsub | queue.
	// With queue, submissions go to Supabase Queues and CONTACT_DELIVERY
	// names the relay the outbox delivers through.
	ContactRelay       string `envconfig:"CONTACT_RELAY" default:"formsubmit"`
	ContactQueue       string `envconfig:"CONTACT_QUEUE" default:"contact"`
	ContactDelivery    string `envconfig:"CONTACT_DELIVERY" default:"formsubmit"`
	FormSubmitAddress  string `envconfig:"FORMSUBMIT_ADDRESS"`
	FormSubmitNext     string `envconfig:"FORMSUBMIT_NEXT" default:"https://kizuna.bg/contact"`
	SendGridAPIKey     string `envconfig:"SENDGRID_API_KEY"`
	ContactFromEmail   string `envconfig:"CONTACT_FROM_EMAIL"`
	ContactToEmail     string `envconfig:"CONTACT_TO_EMAIL"`
	PubSubContactTopic string `envconfig:"PUBSUB_CONTACT_TOPIC" default:"contact"`

	// Google Cloud (optional)
	GCPProjectID       string `envconfig:"GCP_PROJECT_ID"`
	PubSubEmulatorHost string `envconfig:"PUBSUB_EMULATOR_HOST"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DBConfig is the subset of Config the admin CLI needs.
type DBConfig struct {
	DBConnectionString string `envconfig:"DB_CONNECTION_STRING" required:"true"`
	Environment        string `envconfig:"ENV" default:"development"`
}

func LoadDB() (*DBConfig, error) {
	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *DBConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsDevelopment reports whether the service runs locally.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// SecretSource fetches the latest version of a named secret.
type SecretSource interface {
	AccessSecret(ctx context.Context, name string) (string, error)
}

// HasSecretRefs reports whether any secret field points at Secret Manager.
func (c *Config) HasSecretRefs() bool {
	for _, f := range c.secretFields() {
		if strings.HasPrefix(*f, SecretPrefix) {
			return true
		}
	}
	return false
}

// ResolveSecrets replaces every "sm://<name>" secret value with the secret's
// payload.
func (c *Config) ResolveSecrets(ctx context.Context, src SecretSource) error {
	for _, f := range c.secretFields() {
		if !strings.HasPrefix(*f, SecretPrefix) {
			continue
		}
		name := strings.TrimPrefix(*f, SecretPrefix)
		value, err := src.AccessSecret(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to resolve secret %s: %w", name, err)
		}
		*f = value
	}
	return nil
}

func (c *Config) secretFields() []*string {
	return []*string{
		&c.DBConnectionString,
		&c.SupabaseAnonKey,
		&c.JWTSecret,
		&c.S3AccessKey,
		&c.S3SecretKey,
		&c.SendGridAPIKey,
	}
}
