package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/warrantyit/server/internal/api/handlers"
	mw "github.com/warrantyit/server/internal/api/middleware"
	"github.com/warrantyit/server/internal/repository"
)

type Dependencies struct {
	AppEnv          string
	HMACSecret      []byte
	CORSOrigin      string
	RateLimitRPS    float64
	RateLimitBurst  int
	UserRepo        repository.UserRepository
	AuthHandler     *handlers.AuthHandler
	ProductsHandler *handlers.ProductsHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS(dep.CORSOrigin))
	r.Use(mw.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	r.Use(chimid.Compress(5))

	hh := handlers.NewHealthHandler(dep.AppEnv)
	r.Get("/health", hh.Health)

	// Swagger documentation
	r.Get("/api-docs/*", httpSwagger.Handler(
		httpSwagger.URL("/api-docs/doc.json"),
	))

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/register", dep.AuthHandler.Register)
			ar.Post("/login", dep.AuthHandler.Login)

			ar.Group(func(protected chi.Router) {
				protected.Use(mw.Auth(dep.HMACSecret, dep.UserRepo))
				protected.Get("/profile", dep.AuthHandler.Profile)
			})
		})

		api.Route("/products", func(pr chi.Router) {
			pr.Use(mw.Auth(dep.HMACSecret, dep.UserRepo))

			pr.Get("/", dep.ProductsHandler.List)
			pr.Post("/", dep.ProductsHandler.Create)
			pr.Get("/stats", dep.ProductsHandler.Stats)
			pr.Get("/{id}", dep.ProductsHandler.Get)
			pr.Put("/{id}", dep.ProductsHandler.Update)
			pr.Delete("/{id}", dep.ProductsHandler.Delete)
		})
	})

	return r
}
