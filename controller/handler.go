package controller

import (
	"coolenergy/analytics"
	"coolenergy/config"
	"coolenergy/gallery"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler carries every dependency the HTTP handlers need. Everything is
// constructed in main and injected; no package-level state.
type Handler struct {
	cfg       *config.Config
	log       *zap.SugaredLogger
	resolver  *gallery.Resolver
	cloud     *gallery.Cloudinary
	fallback  *gallery.Fallback
	analytics *analytics.Store
	validate  *validator.Validate
}

func New(cfg *config.Config, log *zap.SugaredLogger, resolver *gallery.Resolver,
	cloud *gallery.Cloudinary, fallback *gallery.Fallback, store *analytics.Store) *Handler {
	return &Handler{
		cfg:       cfg,
		log:       log,
		resolver:  resolver,
		cloud:     cloud,
		fallback:  fallback,
		analytics: store,
		validate:  validator.New(),
	}
}
