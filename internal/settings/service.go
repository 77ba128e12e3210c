package settings

import (
	"context"
	"errors"
	"strings"
	"time"

	"culturefest-api/internal/apperr"
	"culturefest-api/internal/media"
	"culturefest-api/internal/util"

	"gorm.io/gorm"
)

type SettingsService struct {
	DB    *gorm.DB
	Files Files
}

// Get returns the settings, or NotModified when clientLastModified is not
// older than the stored row. A missing row reads as empty settings and is
// never reported as not modified.
func (s *SettingsService) Get(clientLastModified *time.Time) (*GetResult, error) {
	cur, err := s.load(s.DB)
	if err != nil {
		return nil, err
	}
	if clientLastModified != nil && !cur.UpdatedAt.IsZero() && !cur.UpdatedAt.After(*clientLastModified) {
		return &GetResult{NotModified: true, Settings: cur}, nil
	}
	return &GetResult{Settings: cur}, nil
}

// Update applies in and, when circular is set, replaces the stored circular.
// The old object is deleted only after the row is saved; a failed save
// deletes the new upload instead.
func (s *SettingsService) Update(ctx context.Context, in UpdateInput, circular *Upload) (*Settings, error) {
	cur, err := s.load(s.DB)
	if err != nil {
		return nil, err
	}
	next := *cur
	if in.DisplayName != nil {
		next.DisplayName = util.Clamp(strings.TrimSpace(*in.DisplayName), 200)
	}
	if in.Remarks != nil {
		next.Remarks = util.Clamp(strings.TrimSpace(*in.Remarks), 4000)
	}

	var uploaded *media.Object
	if circular != nil {
		uploaded, err = s.Files.Upload(ctx, media.FolderCirculars, circular.Filename, circular.Data)
		if err != nil {
			return nil, err
		}
		next.CircularURL = uploaded.URL
		next.CircularPublicID = uploaded.PublicID
		if next.DisplayName == "" {
			next.DisplayName = util.Clamp(strings.TrimSpace(circular.Filename), 200)
		}
	}

	if err := s.DB.Save(&next).Error; err != nil {
		if uploaded != nil {
			s.Files.Discard(ctx, uploaded.PublicID)
		}
		return nil, apperr.Persistence("save settings", err)
	}
	if uploaded != nil && cur.CircularPublicID != "" && cur.CircularPublicID != uploaded.PublicID {
		s.Files.Discard(ctx, cur.CircularPublicID)
	}
	return &next, nil
}

func (s *SettingsService) RemoveCircular(ctx context.Context) (*Settings, error) {
	cur, err := s.load(s.DB)
	if err != nil {
		return nil, err
	}
	old := cur.CircularPublicID
	next := *cur
	next.CircularURL, next.CircularPublicID = "", ""
	if err := s.DB.Save(&next).Error; err != nil {
		return nil, apperr.Persistence("save settings", err)
	}
	if old != "" {
		s.Files.Discard(ctx, old)
	}
	return &next, nil
}

func (s *SettingsService) load(db *gorm.DB) (*Settings, error) {
	var cur Settings
	err := db.Where("id = ?", singletonID).First(&cur).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Settings{ID: singletonID}, nil
	}
	if err != nil {
		return nil, apperr.Persistence("read settings", err)
	}
	return &cur, nil
}
