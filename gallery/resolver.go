package gallery

import (
	"context"

	"coolenergy/apperrors"
	"coolenergy/models"

	"go.uber.org/zap"
)

// Resolver tries providers in fixed priority order and serves the first
// non-empty result. Strict precedence, never a merge: mixing tiers would
// produce confusing duplicate category counts, and the host is the source
// of truth whenever it has anything to say.
type Resolver struct {
	providers []Provider
	log       *zap.SugaredLogger
}

func NewResolver(log *zap.SugaredLogger, providers ...Provider) *Resolver {
	return &Resolver{providers: providers, log: log}
}

// Resolve runs the read path. An invalid filter fails fast regardless of
// source availability. A provider error and a provider serving zero images
// are treated identically when deciding to fall through; the read path never
// surfaces a host error to the caller. When every tier is empty the result
// is an explicit empty success tagged with the last tier's name, so the
// client renders an empty state instead of an error.
func (r *Resolver) Resolve(ctx context.Context, filter string) (*models.ImagesResponse, error) {
	if !ValidFilter(filter) {
		return nil, apperrors.ErrInvalidCategory
	}

	source := ""
	for _, p := range r.providers {
		source = p.Name()
		images, err := p.List(ctx, filter)
		if err != nil {
			r.log.Warnw("gallery provider failed, trying next tier",
				"provider", p.Name(), "category", filter, "error", err)
			continue
		}
		if len(images) > 0 {
			return &models.ImagesResponse{Success: true, Images: images, Source: source}, nil
		}
	}

	return &models.ImagesResponse{Success: true, Images: []models.Image{}, Source: source}, nil
}
