package logs

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// SystemLog is one row of the organizer-facing activity log.
type SystemLog struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Level     string         `gorm:"size:20;not null" json:"level"`
	Service   string         `gorm:"size:100;not null" json:"service"`
	ActorID   *string        `gorm:"size:100;index" json:"actor_id,omitempty"`
	ActorRole string         `gorm:"size:20" json:"actor_role,omitempty"`
	Action    string         `gorm:"size:255;not null" json:"action"`
	EntityID  *string        `gorm:"size:100;index" json:"entity_id,omitempty"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	Tags      pq.StringArray `gorm:"type:text[];column:tags" json:"tags"`
	Metadata  datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (SystemLog) TableName() string {
	return "activity_logs"
}

type LogFilterInput struct {
	Level    *string  `json:"level"`
	Service  *string  `json:"service"`
	Action   *string  `json:"action"`
	ActorID  *string  `json:"actor_id"`
	EntityID *string  `json:"entity_id"`
	Tags     []string `json:"tags"`

	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`

	Search   *string `json:"search"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}

type AggItem struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type LogAggregates struct {
	ByService []AggItem `json:"by_service"`
	ByAction  []AggItem `json:"by_action"`
}
