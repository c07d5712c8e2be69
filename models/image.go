package models

import "time"

// Image is the descriptor served to the gallery, computed per-request from
// the image host or from the static fallback catalog. Category is carried
// explicitly; the positional parse of the public ID only happens once, at
// the provider boundary.
type Image struct {
	PublicID  string    `json:"public_id"`
	URL       string    `json:"url"`
	Thumbnail string    `json:"thumbnail"`
	Full      string    `json:"full"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// ImagesResponse is the wire shape the gallery renderer consumes. Source is
// "cloudinary", "fallback" or "fallback-disabled".
type ImagesResponse struct {
	Success bool    `json:"success"`
	Images  []Image `json:"images"`
	Source  string  `json:"source"`
}

// UploadSignature authorizes one direct upload into a single category folder.
// The host interprets the timestamp window itself.
type UploadSignature struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	Folder    string `json:"folder"`
	APIKey    string `json:"api_key"`
	CloudName string `json:"cloud_name"`
}
