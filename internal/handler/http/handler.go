package http

import (
	"github.com/MKhiriev/go-env-keeper/internal/config"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// integrityCheck enables the upload hash check; it is on whenever the
	// server has a hash key.
	integrityCheck bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	if cfg.HashKey != "" {
		utils.InitHasherPool(cfg.HashKey)
	}

	logger.Info().Bool("integrity_check", cfg.HashKey != "").Msg("http handler created")
	return &Handler{
		services:       services,
		integrityCheck: cfg.HashKey != "",
		logger:         logger,
	}
}
