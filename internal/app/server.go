// internal/app/server.go
package app

import (
	"context"
	"errors"
	"net/http"
	"os"

	"mockcrm-service/internal/config"
	customerHandler "mockcrm-service/internal/handlers/customer"
	"mockcrm-service/internal/middleware"
	xerrors "mockcrm-service/internal/pkg/errors"
	"mockcrm-service/internal/repository/memory"
	customersvc "mockcrm-service/internal/service/customer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	http   *http.Server
}

func NewServer() *Server {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	s.logger = logger

	// ----- Record Store -----
	// Seeded from the static dataset on every start; mutations live only in
	// process memory and vanish on restart.
	store, err := seedStore(s.cfg.SeedPath, logger)
	if err != nil {
		return err
	}
	logger.Info("record store seeded",
		zap.String("path", s.cfg.SeedPath),
		zap.Int("records", store.Len()),
		zap.String("default_strategy", string(s.cfg.Defaults)),
	)

	// ----- Services (Usecases) -----
	customerService := customersvc.NewCustomerService(store, s.cfg.Defaults, logger)

	// ----- Handlers -----
	customerHandlerInst := customerHandler.NewCustomerHandler(customerService)

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RequestIDMiddleware(),
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		CustomerHandler: customerHandlerInst,
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	logger.Info("server starting", zap.String("addr", s.cfg.HTTPAddr))
	s.http = &http.Server{Addr: s.cfg.HTTPAddr, Handler: s.engine}
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// seedStore builds the record store from the static dataset. A missing file
// only degrades the mock to an empty store; a file that exists but cannot be
// read or parsed is a startup error.
func seedStore(path string, logger *zap.Logger) (*memory.CustomerStore, error) {
	seed, err := memory.LoadSeed(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Warn("seed dataset missing, starting with an empty store",
			zap.String("path", path),
			zap.Error(err),
		)
	case err != nil:
		return nil, xerrors.Wrap(err, "seeding record store")
	}
	return memory.NewCustomerStore(seed), nil
}

// Shutdown drains in-flight requests. There is nothing else to flush: the
// store is memory-only by design.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	if s.logger != nil {
		defer s.logger.Sync()
	}
	return s.http.Shutdown(ctx)
}
