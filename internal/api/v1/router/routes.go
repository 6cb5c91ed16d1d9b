package router

import (
	"net/http"

	"kizuna/internal/api/v1/handler"
	"kizuna/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/swaggo/swag"
)

// Handlers are the mounted route groups.
type Handlers struct {
	Public  *handler.PublicHandler
	Contact *handler.ContactHandler
	Health  *handler.HealthHandler
	Auth    *handler.AuthHandler
	Admin   *handler.AdminHandler
	Upload  *handler.UploadHandler
	Events  *handler.EventsHandler
}

// Guards decide who a request belongs to and whether it may enter /v1/admin.
type Guards struct {
	Sessions middleware.SessionResolver
	Admins   middleware.AdminChecker
}

// RouteOptions are the path and CORS settings of the router.
type RouteOptions struct {
	SessionCookieName string
	LoginPath         string
	HomePath          string
	AllowedOrigins    []string
}

// Routes builds the full handler tree:
//
//	/api/keepalive     health ping
//	/v1/...            public JSON and auth
//	/v1/admin/...      admin JSON, behind the admin guard
//	/swagger/doc.json  OpenAPI document
func Routes(opts RouteOptions, h Handlers, g Guards, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.SessionMiddleware(g.Sessions, opts.SessionCookieName, logger))

	r.Route("/api", h.Health.RegisterRoutes)

	r.Route("/v1", func(r chi.Router) {
		h.Public.RegisterRoutes(r)
		h.Contact.RegisterRoutes(r)
		h.Auth.RegisterRoutes(r)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminGuard(g.Admins, opts.LoginPath, opts.HomePath, logger))
			h.Admin.RegisterRoutes(r)
			h.Upload.RegisterRoutes(r)
			h.Events.RegisterRoutes(r)
		})
	})

	r.Get("/swagger/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, "Failed to read API docs: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}
