// Package server exposes the translation dispatcher over HTTP: one POST
// handler per surface, open CORS, JSON in and out.
package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/docuglot/docuglot/internal/constants"
	"github.com/docuglot/docuglot/internal/doctranslate"
	"github.com/docuglot/docuglot/internal/domain"
)

// Translator is the dispatcher surface the handlers depend on.
type Translator interface {
	Translate(ctx context.Context, req domain.TranslateRequest) (string, error)
	GatewayConfigured() bool
}

// Dependencies bundles everything the handlers need.
type Dependencies struct {
	Translator Translator
	Documents  *doctranslate.Service
	Logger     *zap.Logger
}

type Server struct {
	httpServer *http.Server
	deps       *Dependencies
	logger     *zap.Logger
}

func New(addr string, deps *Dependencies) *Server {
	s := &Server{
		deps:   deps,
		logger: deps.Logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/translate", s.handleTranslate)
	mux.HandleFunc("/api/translate/batch", s.handleTranslateBatch)
	mux.HandleFunc("/api/languages", s.handleLanguages)
	mux.HandleFunc("/healthz", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.withAccessLog(mux),
		ReadTimeout:  constants.HTTPTimeouts.Read,
		WriteTimeout: constants.HTTPTimeouts.Write,
		IdleTimeout:  constants.HTTPTimeouts.IdleTimeout,
	}

	return s
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
