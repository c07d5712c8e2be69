package gallery

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"coolenergy/apperrors"
	"coolenergy/config"
	"coolenergy/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

const (
	maxListResults = 500

	thumbnailTransform = "w_300,h_300,c_fill,q_auto,f_auto"
	fullTransform      = "w_800,q_auto,f_auto"
)

// Cloudinary is the primary gallery provider, backed by the image host's
// Admin and Upload APIs. All objects live under cfg.BaseFolder; list, sign
// and delete never reach outside that namespace.
type Cloudinary struct {
	cld *cloudinary.Cloudinary
	cfg config.Cloudinary
	log *zap.SugaredLogger
}

// NewCloudinary builds the provider. Missing credentials are not an error:
// the provider starts in a degraded mode where every host call answers
// ErrUnavailable, and the router's precheck turns that into a 503.
func NewCloudinary(cfg config.Cloudinary, log *zap.SugaredLogger) (*Cloudinary, error) {
	p := &Cloudinary{cfg: cfg, log: log}
	if !cfg.Configured() {
		log.Warnw("cloudinary credentials missing, provider degraded")
		return p, nil
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	p.cld = cld
	return p, nil
}

func (p *Cloudinary) Name() string { return "cloudinary" }

// Configured reports whether host calls can be attempted at all.
func (p *Cloudinary) Configured() bool { return p.cld != nil }

func (p *Cloudinary) List(ctx context.Context, filter string) ([]models.Image, error) {
	if !ValidFilter(filter) {
		return nil, apperrors.ErrInvalidCategory
	}
	if p.cld == nil {
		return nil, apperrors.ErrUnavailable
	}

	prefix := p.cfg.BaseFolder
	if filter != CategoryAll {
		prefix = p.cfg.BaseFolder + "/" + filter
	}

	res, err := p.cld.Admin.Assets(ctx, admin.AssetsParams{
		AssetType:    api.Image,
		DeliveryType: "upload",
		Prefix:       prefix,
		MaxResults:   maxListResults,
	})
	if err != nil {
		p.log.Errorw("cloudinary list failed", "prefix", prefix, "error", err)
		return nil, apperrors.ErrUnavailable
	}
	if res.Error.Message != "" {
		p.log.Errorw("cloudinary list rejected", "prefix", prefix, "error", res.Error.Message)
		return nil, apperrors.ErrUnavailable
	}

	images := make([]models.Image, 0, len(res.Assets))
	for _, asset := range res.Assets {
		images = append(images, models.Image{
			PublicID:  asset.PublicID,
			URL:       asset.SecureURL,
			Thumbnail: p.deliveryURL(asset.PublicID, thumbnailTransform),
			Full:      p.deliveryURL(asset.PublicID, fullTransform),
			Category:  ExtractCategory(asset.PublicID),
			CreatedAt: asset.CreatedAt,
		})
	}
	return images, nil
}

// SignUpload authorizes one direct browser upload into a single category
// folder. The signature follows the host's signing rule: SHA-1 over the
// alphabetically ordered parameters concatenated with the API secret. An
// empty category lands in the uncategorized folder.
func (p *Cloudinary) SignUpload(category string) (*models.UploadSignature, error) {
	if category == "" {
		category = CategoryUncategorized
	}
	if !ValidCategory(category) {
		return nil, apperrors.ErrInvalidCategory
	}
	if p.cld == nil {
		return nil, apperrors.ErrUnavailable
	}

	timestamp := time.Now().Unix()
	folder := p.cfg.BaseFolder + "/" + category
	toSign := fmt.Sprintf("folder=%s&timestamp=%d%s", folder, timestamp, p.cfg.APISecret)
	sum := sha1.Sum([]byte(toSign))

	return &models.UploadSignature{
		Signature: hex.EncodeToString(sum[:]),
		Timestamp: timestamp,
		Folder:    folder,
		APIKey:    p.cfg.APIKey,
		CloudName: p.cfg.CloudName,
	}, nil
}

// Delete destroys one asset. Identifiers outside the base namespace are
// rejected before any network call so the service can never delete objects
// that are not its own.
func (p *Cloudinary) Delete(ctx context.Context, publicID string) error {
	if !InNamespace(p.cfg.BaseFolder, publicID) {
		return apperrors.ErrInvalidIdentifier
	}
	if p.cld == nil {
		return apperrors.ErrUnavailable
	}

	res, err := p.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		p.log.Errorw("cloudinary destroy failed", "public_id", publicID, "error", err)
		return apperrors.ErrUnavailable
	}
	if res.Result != "ok" {
		return fmt.Errorf("destroy %s: %s", publicID, res.Result)
	}
	return nil
}

// CountByCategory reports per-category asset counts plus a total. A failing
// category counts as zero rather than failing the whole report.
func (p *Cloudinary) CountByCategory(ctx context.Context) (map[string]int, error) {
	if p.cld == nil {
		return nil, apperrors.ErrUnavailable
	}

	stats := map[string]int{}
	total := 0
	for _, cat := range Categories {
		images, err := p.List(ctx, cat)
		if err != nil {
			stats[cat] = 0
			continue
		}
		stats[cat] = len(images)
		total += len(images)
	}
	stats["total"] = total
	return stats, nil
}

func (p *Cloudinary) deliveryURL(publicID, transform string) string {
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/%s/%s", p.cfg.CloudName, transform, publicID)
}

// InNamespace reports whether publicID lives under the base folder.
func InNamespace(baseFolder, publicID string) bool {
	prefix := baseFolder + "/"
	return len(publicID) > len(prefix) && publicID[:len(prefix)] == prefix
}
