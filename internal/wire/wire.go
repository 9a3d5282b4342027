package wire

import (
	"fmt"
	"net/http"

	"movie-review/internal/adaptor"
	"movie-review/internal/data/repository"
	"movie-review/internal/usecase"
	"movie-review/pkg/middleware"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	renderer, err := adaptor.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, renderer, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}, nil
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseMethodNotAllowed(w, "Method not allowed")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", map[string]int{"sessions": repo.Session.Len()})
	})

	// every screen keeps its state in the browser's view session
	r.Group(func(r chi.Router) {
		r.Use(middleware.ViewSession(repo.Session, config.Session.CookieName, logger))

		wireHome(r, handler.Home)
		wireCreate(r, handler.Create)
		wireRead(r, handler.Read)
	})

	return r
}
