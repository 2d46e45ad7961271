package app

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/docuglot/docuglot/internal/config"
	"github.com/docuglot/docuglot/internal/doctranslate"
	"github.com/docuglot/docuglot/internal/gateway"
	"github.com/docuglot/docuglot/internal/provider"
	"github.com/docuglot/docuglot/internal/server"
	"github.com/docuglot/docuglot/internal/service"
)

// Container bundles the assembled services for constructing the HTTP server.
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Translator *service.Translator
	Documents  *doctranslate.Service
}

// Build assembles the provider registry, the default gateway and the
// dispatcher so that server construction stays focused on routing.
func Build(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	httpClient := resty.New().SetTimeout(cfg.Server.ProviderTimeout)
	registry := provider.NewRegistry(httpClient, logger)
	gw := gateway.New(cfg.Gateway, logger)
	translator := service.NewTranslator(registry, gw, logger)
	documents := doctranslate.New(translator, logger)

	return &Container{
		Config:     cfg,
		Logger:     logger,
		Translator: translator,
		Documents:  documents,
	}, nil
}

// NewServer instantiates the HTTP server with the pre-built dependency graph.
func (c *Container) NewServer() *server.Server {
	return server.New(c.Config.Server.Addr, &server.Dependencies{
		Translator: c.Translator,
		Documents:  c.Documents,
		Logger:     c.Logger,
	})
}
