package handler

import (
	"github.com/emzola/liber/config"
	"github.com/emzola/liber/internal/jsonlog"
	"github.com/emzola/liber/service"
	"github.com/jellydator/ttlcache/v3"
)

// Handler defines the handler layer. The cache holds short-lived lookups made
// on the request path, currently the user to borrower profile resolution.
type Handler struct {
	config  config.Config
	logger  *jsonlog.Logger
	cache   *ttlcache.Cache[string, int64]
	service service.Service
}

// New creates a new instance of Handler.
func New(cfg config.Config, logger *jsonlog.Logger, cache *ttlcache.Cache[string, int64], service service.Service) *Handler {
	return &Handler{
		config:  cfg,
		logger:  logger,
		cache:   cache,
		service: service,
	}
}
