package score

import "time"

const (
	MinScore = 0
	MaxScore = 10
)

// Score holds one judge's mark for one school in one category.
type Score struct {
	JudgeID    string    `json:"judge_id" gorm:"primaryKey;type:varchar(36)"`
	SchoolID   string    `json:"school_id" gorm:"primaryKey;type:varchar(36);index"`
	CategoryID string    `json:"category_id" gorm:"primaryKey;type:varchar(36);index"`
	Value      int       `json:"score" gorm:"column:score;not null"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Score) TableName() string {
	return "scores"
}

type Entry struct {
	SchoolID   string `json:"school_id"`
	CategoryID string `json:"category_id"`
	Score      *int   `json:"score"`
}

type BatchInput struct {
	JudgeID string  `json:"judge_id"`
	Entries []Entry `json:"entries"`
}
