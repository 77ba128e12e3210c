package media

import "context"

// Object is a stored upload: where it can be fetched and the key used to delete it.
type Object struct {
	URL         string `json:"url"`
	PublicID    string `json:"public_id"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Uploader is a media backend.
type Uploader interface {
	Store(ctx context.Context, data []byte, contentType, name string) (*Object, error)
	Delete(ctx context.Context, publicID string) error
}

const (
	FolderIDCards   = "id-cards"
	FolderCirculars = "circulars"
)
