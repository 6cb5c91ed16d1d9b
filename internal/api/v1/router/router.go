package router

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"kizuna/internal/api/v1/handler"
	"kizuna/internal/auth"
	"kizuna/internal/config"
	"kizuna/internal/contact"
	"kizuna/internal/editor"
	"kizuna/internal/pgmq"
	"kizuna/internal/pubsub"
	"kizuna/internal/repository"
	"kizuna/internal/service"
	"kizuna/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const signedURLCachePrefix = "kizuna:signed-url:"

// App is the wired HTTP handler plus the resources main must release.
type App struct {
	Handler http.Handler
	Health  service.HealthService
	// Outbox is set when contact submissions are queued; main runs it.
	Outbox *contact.Outbox

	closers []func() error
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}

func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	logger.Info().Str("environment", cfg.Environment).Msg("Building router")
	app := &App{}

	// 1. Database
	db, err := repository.Open(cfg.DBConnectionString, cfg.IsDevelopment(), logger)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, db.Close)

	// 2. Storage: S3 client, optional signed URL cache
	s3Client, err := storage.NewS3Client(ctx, storage.S3Config{
		Endpoint:  cfg.S3URL,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	var cache storage.Cache
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opts)
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn().Err(err).Msg("Redis unreachable, signed URLs will be signed on every request until it recovers")
		}
		app.closers = append(app.closers, rdb.Close)
		cache = storage.NewRedisCache(rdb, signedURLCachePrefix)
	}

	teacherImages := storage.NewResolver(cfg.TeachersBucket, storage.NewS3Signer(s3Client), cfg.SignedURLTTL, cache, logger)
	uploader := storage.NewUploader(s3Client, cfg.MaxImageWidth, logger)

	// 3. Contact relay
	relay, err := newContactRelay(ctx, cfg, app, db, logger)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	// 4. Repositories, services, editors
	teacherRepo := repository.NewTeacherRepo(db)
	courseRepo := repository.NewCourseRepo(db)
	calligraphyRepo := repository.NewCalligraphyRepo(db)
	newsRepo := repository.NewNewsRepo(db)
	quizRepo := repository.NewQuizRepo(db)
	pricingRepo := repository.NewPricingRepo(db)
	pageConfigRepo := repository.NewPageConfigRepo(db)
	adminRepo := repository.NewAdminRepo(db)
	healthRepo := repository.NewHealthRepo(db)

	teacherSvc := service.NewTeacherService(teacherRepo, teacherImages)
	courseSvc := service.NewCourseService(courseRepo, teacherImages)
	calligraphySvc := service.NewCalligraphyService(calligraphyRepo, teacherImages)
	newsSvc := service.NewNewsService(newsRepo)
	quizSvc := service.NewQuizService(quizRepo)
	pricingSvc := service.NewPricingService(pricingRepo)
	pageConfigSvc := service.NewPageConfigService(pageConfigRepo, logger)
	dashboardSvc := service.NewDashboardService(courseRepo, teacherRepo, newsRepo, calligraphyRepo, quizRepo, pricingRepo)
	app.Health = service.NewHealthService(healthRepo)

	editors := handler.AdminEditors{
		Courses:     editor.NewCourseEditor(courseRepo, logger),
		Calligraphy: editor.NewCalligraphyEditor(calligraphyRepo, logger),
		Teachers:    editor.NewTeacherEditor(teacherRepo, cfg.TeachersBucket, logger),
		News:        editor.NewNewsEditor(newsRepo, logger),
		Quiz:        editor.NewQuizEditor(quizRepo, logger),
	}

	// 5. Auth
	verifier, err := auth.NewVerifier(cfg.JWTSecret)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("invalid SUPABASE_JWT_SECRET: %w", err)
	}
	sessions := auth.NewSessions(
		auth.NewGoTrueClient(cfg.SupabaseURL, cfg.SupabaseAnonKey),
		verifier,
		logger,
	)

	// 6. Handlers
	validate := validator.New(validator.WithRequiredStructEnabled())
	handlers := Handlers{
		Public: handler.NewPublicHandler(handler.PublicServices{
			Courses:     courseSvc,
			Calligraphy: calligraphySvc,
			Teachers:    teacherSvc,
			News:        newsSvc,
			Pricing:     pricingSvc,
			Quiz:        quizSvc,
			Pages:       pageConfigSvc,
		}, validate, logger),
		Contact: handler.NewContactHandler(relay, validate, logger),
		Health:  handler.NewHealthHandler(app.Health, logger),
		Auth: handler.NewAuthHandler(sessions, handler.CookieOptions{
			Name:   cfg.SessionCookieName,
			Secure: !cfg.IsDevelopment(),
		}, cfg.HomePath, validate, logger),
		Admin: handler.NewAdminHandler(editors, teacherSvc, pricingSvc, dashboardSvc, teacherImages, logger),
		Upload: handler.NewUploadHandler(uploader, teacherImages, handler.UploadTargets{
			TeachersBucket: cfg.TeachersBucket,
			NewsBucket:     cfg.NewsBucket,
			SupabaseURL:    cfg.SupabaseURL,
		}, logger),
		Events: handler.NewEventsHandler(sessions.Notifier(), cfg.LoginPath, logger),
	}

	app.Handler = Routes(RouteOptions{
		SessionCookieName: cfg.SessionCookieName,
		LoginPath:         cfg.LoginPath,
		HomePath:          cfg.HomePath,
		AllowedOrigins:    cfg.AllowedOrigins,
	}, handlers, Guards{Sessions: sessions, Admins: adminRepo}, logger)

	logger.Info().Msg("Router initialized")
	return app, nil
}

func newContactRelay(ctx context.Context, cfg *config.Config, app *App, db *sql.DB, logger zerolog.Logger) (contact.Relay, error) {
	kind, err := contact.ParseKind(cfg.ContactRelay)
	if err != nil {
		return nil, err
	}
	if kind != contact.KindQueue {
		return buildRelay(ctx, cfg, app, kind)
	}

	deliveryKind, err := contact.ParseKind(cfg.ContactDelivery)
	if err != nil {
		return nil, err
	}
	if deliveryKind == contact.KindQueue {
		return nil, errors.New("CONTACT_DELIVERY cannot be queue")
	}
	delivery, err := buildRelay(ctx, cfg, app, deliveryKind)
	if err != nil {
		return nil, err
	}

	queue := pgmq.New(db)
	app.Outbox = contact.NewOutbox(queue, cfg.ContactQueue, delivery, logger)
	return contact.New(kind, contact.Options{Queue: queue, QueueName: cfg.ContactQueue})
}

func buildRelay(ctx context.Context, cfg *config.Config, app *App, kind contact.Kind) (contact.Relay, error) {
	opts := contact.Options{
		FormSubmitAddress: cfg.FormSubmitAddress,
		FormSubmitNext:    cfg.FormSubmitNext,
		SendGridAPIKey:    cfg.SendGridAPIKey,
		FromEmail:         cfg.ContactFromEmail,
		ToEmail:           cfg.ContactToEmail,
		Topic:             cfg.PubSubContactTopic,
	}
	if kind == contact.KindPubSub {
		publisher, err := pubsub.NewPublisher(ctx, cfg.GCPProjectID)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, publisher.Close)
		opts.Publisher = publisher
	}
	return contact.New(kind, opts)
}
