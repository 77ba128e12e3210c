package media

import (
	"context"

	"culturefest-api/internal/logs"
)

type MediaServiceAPI interface {
	Upload(ctx context.Context, folder, filename string, data []byte) (*Object, error)
	Remove(ctx context.Context, publicID string) error
}

var _ MediaServiceAPI = (*Service)(nil)

type LogServicePort interface {
	Log(entry logs.SystemLog, metadata interface{}) error
}
