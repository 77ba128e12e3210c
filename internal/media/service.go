package media

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"culturefest-api/config"
	"culturefest-api/internal/apperr"
	"culturefest-api/internal/util"

	"github.com/google/uuid"
)

var (
	nowFunc   = time.Now
	newSuffix = func() string { return uuid.NewString()[:8] }
)

type Service struct {
	Uploader Uploader
	Guard    Guard
}

func NewService(u Uploader, maxBytes int64) *Service {
	return &Service{Uploader: u, Guard: Guard{MaxBytes: maxBytes, Allowed: DefaultAllowed}}
}

// Upload checks data and stores it under folder.
func (s *Service) Upload(ctx context.Context, folder, filename string, data []byte) (*Object, error) {
	contentType, err := s.Guard.Check(data)
	if err != nil {
		return nil, err
	}

	name := util.ObjectName(folder, filename, contentType, newSuffix(), nowFunc())
	obj, err := s.Uploader.Store(ctx, data, contentType, name)
	if err != nil {
		return nil, apperr.Upload(apperr.ReasonFailed, "could not store file", err)
	}
	return obj, nil
}

func (s *Service) Remove(ctx context.Context, publicID string) error {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return apperr.Validation("public_id", "required", "public_id is required")
	}
	if err := s.Uploader.Delete(ctx, publicID); err != nil {
		return apperr.Upload(apperr.ReasonFailed, "could not delete file", err)
	}
	return nil
}

// Discard removes publicIDs, logging failures instead of returning them.
func (s *Service) Discard(ctx context.Context, publicIDs ...string) {
	if s == nil || s.Uploader == nil {
		return
	}
	for _, id := range publicIDs {
		if strings.TrimSpace(id) == "" {
			continue
		}
		if err := s.Uploader.Delete(ctx, id); err != nil {
			log.Printf("media: discard %s: %v", id, err)
		}
	}
}

// New builds the backend named by cfg.MediaBackend.
func New(ctx context.Context, cfg config.Config) (Uploader, error) {
	switch cfg.MediaBackend {
	case config.MediaBackendGCS, "":
		if cfg.GCSBucket == "" {
			return nil, errors.New("GCS_BUCKET is required for the gcs media backend")
		}
		return NewGCSUploader(ctx, cfg.GCSBucket, cfg.GCSEndpoint)
	case config.MediaBackendS3:
		return NewS3Uploader(ctx, S3Config{
			AccountID:       cfg.S3AccountID,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretKey,
			Bucket:          cfg.S3Bucket,
			PublicBaseURL:   cfg.S3PublicBase,
		})
	default:
		return nil, fmt.Errorf("unknown MEDIA_BACKEND %q", cfg.MediaBackend)
	}
}
