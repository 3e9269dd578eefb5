// Package app contains the application setup for the catalog service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/minicatalog/internal/config"
	"github.com/abgdnv/minicatalog/internal/idgen"
	"github.com/abgdnv/minicatalog/internal/service"
	"github.com/abgdnv/minicatalog/internal/store"
	"github.com/abgdnv/minicatalog/internal/transport/rest"
	"github.com/abgdnv/minicatalog/internal/utility"
	"github.com/abgdnv/minicatalog/pkg/messaging"
	"github.com/abgdnv/minicatalog/pkg/server"
	"github.com/go-chi/chi/v5"
)

type Dependencies struct {
	ProductService service.ProductService
	Names          *utility.NameGenerator
	Logger         *slog.Logger
}

// SetupDependencies builds the in-memory catalog. Lifecycle events go to publisher.
func SetupDependencies(publisher messaging.Publisher, logger *slog.Logger) *Dependencies {
	productStore := store.NewInMemoryStore(idgen.New())
	return &Dependencies{
		ProductService: service.NewService(productStore, publisher, logger),
		Names:          utility.NewNameGenerator(),
		Logger:         logger,
	}
}

// SetupHttpHandler initializes the router, middleware and routes of the catalog.
// Used by E2E tests to run the application inside an httptest.Server.
func SetupHttpHandler(deps *Dependencies, maxBodyBytes int64) http.Handler {
	mux := server.NewChiRouter(deps.Logger, maxBodyBytes)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the catalog.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	handler := rest.NewHandler(deps.ProductService, deps.Names, deps.Logger)
	handler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures the HTTP server of the catalog.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps, cfg.HTTPServer.MaxBodyBytes)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
