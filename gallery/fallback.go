package gallery

import (
	"context"

	"coolenergy/apperrors"
	"coolenergy/models"
)

// fallbackEntry is one pre-declared catalog row. Identifiers deliberately do
// not share the host namespace, so a fallback identifier can never be fed
// back into a host delete.
type fallbackEntry struct {
	ID       string
	File     string
	Category string
}

// fallbackBasePath is where the static product shots are served from. The
// shots themselves are deployment assets dropped into web/images/productos
// (mounted at /images by the router); they are not checked into this tree.
const fallbackBasePath = "/images/productos"

var fallbackEntries = []fallbackEntry{
	{ID: "fallback/rave-xl-01", File: "abanico-rave-xl-negro.webp", Category: "rave-xl"},
	{ID: "fallback/rave-xl-02", File: "abanico-rave-xl-holografico.webp", Category: "rave-xl"},
	{ID: "fallback/rave-xl-03", File: "abanico-rave-xl-fuego.webp", Category: "rave-xl"},
	{ID: "fallback/rave-l-01", File: "abanico-rave-l-negro.webp", Category: "rave-l"},
	{ID: "fallback/rave-l-02", File: "abanico-rave-l-uv.webp", Category: "rave-l"},
	{ID: "fallback/medium-01", File: "abanico-medium-negro.webp", Category: "medium"},
	{ID: "fallback/medium-02", File: "abanico-medium-plata.webp", Category: "medium"},
	{ID: "fallback/personalizados-01", File: "abanico-personalizado-logo.webp", Category: "personalizados"},
	{ID: "fallback/personalizados-02", File: "abanico-personalizado-nombre.webp", Category: "personalizados"},
}

// Fallback serves the static catalog that keeps the public gallery non-empty
// while the image host is empty or unreachable. Listing never errors: a
// disabled or non-matching catalog is an empty result, not a failure.
type Fallback struct {
	siteURL  string
	entries  []fallbackEntry
	disabled bool
}

func NewFallback(siteURL string, disabled bool) *Fallback {
	return &Fallback{siteURL: siteURL, entries: fallbackEntries, disabled: disabled}
}

func (f *Fallback) Name() string {
	if f.disabled {
		return "fallback-disabled"
	}
	return "fallback"
}

func (f *Fallback) Disabled() bool { return f.disabled }

func (f *Fallback) List(_ context.Context, filter string) ([]models.Image, error) {
	if !ValidFilter(filter) {
		return nil, apperrors.ErrInvalidCategory
	}
	if f.disabled {
		return []models.Image{}, nil
	}

	images := make([]models.Image, 0, len(f.entries))
	for _, e := range f.entries {
		if filter != CategoryAll && e.Category != filter {
			continue
		}
		url := f.siteURL + fallbackBasePath + "/" + e.File
		images = append(images, models.Image{
			PublicID:  e.ID,
			URL:       url,
			Thumbnail: url,
			Full:      url,
			Category:  e.Category,
		})
	}
	return images, nil
}
