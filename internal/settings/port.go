package settings

import (
	"context"
	"time"

	"culturefest-api/internal/logs"
	"culturefest-api/internal/media"
)

type SettingsServiceAPI interface {
	Get(clientLastModified *time.Time) (*GetResult, error)
	Update(ctx context.Context, in UpdateInput, circular *Upload) (*Settings, error)
	RemoveCircular(ctx context.Context) (*Settings, error)
}

var _ SettingsServiceAPI = (*SettingsService)(nil)

// Files is the part of media.Service settings needs.
type Files interface {
	Upload(ctx context.Context, folder, filename string, data []byte) (*media.Object, error)
	Discard(ctx context.Context, publicIDs ...string)
}

var _ Files = (*media.Service)(nil)

type LogServicePort interface {
	Log(entry logs.SystemLog, metadata interface{}) error
}
