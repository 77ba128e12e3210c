package category

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a judged dimension such as Dance or Costume.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(120);not null;uniqueIndex"`
	Position  int       `json:"position" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Category) TableName() string {
	return "competition_categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CategoryInput leaves Position nil to append the category at the end.
type CategoryInput struct {
	Name     string `json:"name" binding:"required"`
	Position *int   `json:"position"`
}

const scoresTable = "scores"
