// Package stubserver is an in-memory double of the hostel inventory backend.
// It implements the documented REST contract closely enough for the admin
// client to run against it, which is exactly what the mockapi command and the
// integration tests do. It is not a production server: state lives in maps
// and disappears on exit.
package stubserver

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const sessionCookieName = "sessionid"

type Server struct {
	store      *Store
	logger     *zap.Logger
	validate   *validator.Validate
	httpServer *http.Server
}

func New(logger *zap.Logger) *Server {
	return &Server{
		store:    NewStore(),
		logger:   logger,
		validate: validator.New(),
	}
}

// Store exposes the backing state so tests can seed and inspect it.
func (s *Server) Store() *Store {
	return s.store
}

func (s *Server) Start(port string) {
	s.httpServer = &http.Server{
		Addr:         ":" + port,
		Handler:      s.InjectRoutes(),
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	s.logger.Info("mock backend running", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Fatal("mock backend error", zap.Error(err))
	}
}

func (s *Server) Stop() {
	if s.httpServer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Warn("error shutting down mock backend", zap.Error(err))
	}
}
