package settings

import "time"

const singletonID = 1

// Settings is the single row holding the interschool circular and notes.
type Settings struct {
	ID               int64     `json:"-" gorm:"primaryKey"`
	CircularURL      string    `json:"circular_url" gorm:"type:text;not null;default:''"`
	CircularPublicID string    `json:"circular_public_id" gorm:"type:text;not null;default:''"`
	DisplayName      string    `json:"display_name" gorm:"type:text;not null;default:''"`
	Remarks          string    `json:"remarks" gorm:"type:text;not null;default:''"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"not null;autoUpdateTime"`
}

func (Settings) TableName() string { return "interschool_settings" }

type GetResult struct {
	NotModified bool
	Settings    *Settings
}

// UpdateInput leaves a field untouched when it is nil.
type UpdateInput struct {
	DisplayName *string
	Remarks     *string
}

type Upload struct {
	Filename string
	Data     []byte
}
