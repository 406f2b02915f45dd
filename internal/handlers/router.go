package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Lixing-Zhang/meal-storefront/internal/middleware"
	"github.com/Lixing-Zhang/meal-storefront/internal/service"
)

// Dependencies are the services the router exposes
type Dependencies struct {
	Catalog        *service.CatalogService
	Filters        *service.FilterService
	Login          *service.LoginService
	Logger         *slog.Logger
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter wires middleware and every storefront route
func NewRouter(deps Dependencies) http.Handler {
	log := deps.Logger

	healthHandler := NewHealthHandler(log)
	menuHandler := NewMenuHandler(deps.Catalog, deps.Filters, log)
	cartHandler := NewCartHandler(deps.Catalog, log)
	filterHandler := NewFilterHandler(deps.Filters, log)
	loginHandler := NewLoginHandler(deps.Login, log)

	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", loginHandler.Login)

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", menuHandler.ListMenu)
			r.Post("/", menuHandler.CreateItem)
			r.Get("/all", menuHandler.ListAll)
			r.Get("/stats", menuHandler.Stats)
			r.Delete("/{itemId}", menuHandler.DeleteItem)
		})

		r.Get("/cart", cartHandler.GetCart)
		r.Post("/cart", cartHandler.AddToCart)

		r.Get("/filter", filterHandler.GetFilter)
		r.Put("/filter", filterHandler.UpdateFilter)
	})

	return r
}
