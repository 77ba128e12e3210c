package judge

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Judge struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Contact   string    `json:"contact" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Judge) TableName() string {
	return "judges"
}

func (j *Judge) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

type JudgeInput struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
}

const scoresTable = "scores"
