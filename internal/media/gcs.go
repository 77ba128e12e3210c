package media

import (
	"context"
	"errors"

	"culturefest-api/internal/util"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type GCSUploader struct {
	Client *storage.Client
	Bucket string
}

var _ Uploader = (*GCSUploader)(nil)

// NewGCSUploader uses application default credentials, or an unauthenticated
// client against endpoint when one is given (emulators).
func NewGCSUploader(ctx context.Context, bucket, endpoint string) (*GCSUploader, error) {
	var opts []option.ClientOption
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint), option.WithoutAuthentication())
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &GCSUploader{Client: client, Bucket: bucket}, nil
}

func (u *GCSUploader) Store(ctx context.Context, data []byte, contentType, name string) (*Object, error) {
	w := u.Client.Bucket(u.Bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType

	n, err := w.Write(data)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return &Object{
		URL:         util.PublicGCSURL(u.Bucket, name),
		PublicID:    name,
		Size:        int64(n),
		ContentType: contentType,
	}, nil
}

// Delete treats an already missing object as deleted.
func (u *GCSUploader) Delete(ctx context.Context, publicID string) error {
	err := u.Client.Bucket(u.Bucket).Object(publicID).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	return err
}

func (u *GCSUploader) Close() error {
	return u.Client.Close()
}
