package gallery

import (
	"context"

	"coolenergy/models"
)

// Provider is one tier of the gallery read path. Implementations must treat
// filter as already validated against the closed enumeration, but may
// revalidate defensively since listing is cheap to reject.
type Provider interface {
	// Name tags responses served from this provider.
	Name() string
	// List returns every image under the provider's namespace, optionally
	// narrowed to one category. An empty slice is a valid answer, not an
	// error.
	List(ctx context.Context, filter string) ([]models.Image, error)
}
