// Package image provides uploaded image references.
package image

// MaxSize is the largest upload the API accepts.
const MaxSize = 10 << 20

// Upload is the stored location of an uploaded image.
type Upload struct {
	URL string `json:"url" validate:"required,url"`
}
