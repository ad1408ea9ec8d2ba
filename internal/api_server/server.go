package apiserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/jobforge/status-board/internal/config"
	handlers "github.com/jobforge/status-board/internal/handlers/v1alpha1"
	"github.com/jobforge/status-board/internal/service"
	"github.com/jobforge/status-board/internal/status"
	"github.com/jobforge/status-board/internal/store"
	"github.com/jobforge/status-board/pkg/log"
	"github.com/jobforge/status-board/pkg/metrics"
	"github.com/jobforge/status-board/pkg/middleware"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg      *config.Config
	store    store.Store
	listener net.Listener
}

// New returns a new instance of a status-board server.
func New(
	cfg *config.Config,
	store store.Store,
	listener net.Listener,
) *Server {
	return &Server{
		cfg:      cfg,
		store:    store,
		listener: listener,
	}
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	router := chi.NewRouter()

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegisterDefault()

	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: false,
			MaxAge:           300,
		}),
		middleware.RequestID,
		log.Logger(zap.L(), "api"),
		chiMiddleware.Recoverer,
	)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tokens := status.TokenTable{
		FailureSystem:    s.cfg.Service.Tokens.FailureSystem,
		FailureData:      s.cfg.Service.Tokens.FailureData,
		FailureAlgorithm: s.cfg.Service.Tokens.FailureAlgorithm,
		Inactive:         s.cfg.Service.Tokens.Inactive,
		Healthy:          s.cfg.Service.Tokens.Healthy,
	}

	h := handlers.NewServiceHandler(
		service.NewJobTypeService(s.store),
		service.NewStatusService(s.store),
		tokens,
	)
	h.RegisterRoutes(router)

	srv := http.Server{Addr: s.cfg.Service.Address, Handler: router}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
