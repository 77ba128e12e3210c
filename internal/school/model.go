package school

import (
	"fmt"
	"strings"
	"time"

	"culturefest-api/internal/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tier is a competition division. Schools only compete within their tier.
type Tier string

const (
	TierSenior    Tier = "Senior"
	TierJunior    Tier = "Junior"
	TierSubJunior Tier = "Sub-Junior"
)

var tierOrder = []Tier{TierSenior, TierJunior, TierSubJunior}

// Tiers returns every tier in display order.
func Tiers() []Tier {
	out := make([]Tier, len(tierOrder))
	copy(out, tierOrder)
	return out
}

func (t Tier) Valid() bool {
	for _, known := range tierOrder {
		if t == known {
			return true
		}
	}
	return false
}

// ParseTier accepts any casing and "sub junior", "sub_junior" or "subjunior".
func ParseTier(raw string) (Tier, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	switch key {
	case "senior":
		return TierSenior, nil
	case "junior":
		return TierJunior, nil
	case "subjunior":
		return TierSubJunior, nil
	}
	return "", apperr.Validation("tier", "tier", tierMessage)
}

var tierMessage = fmt.Sprintf("tier must be one of %s, %s, %s", TierSenior, TierJunior, TierSubJunior)

type School struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Tier      Tier      `json:"tier" gorm:"type:varchar(20);not null;index"`
	SerialNo  *int      `json:"serial_no" gorm:"column:serial_no"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (School) TableName() string {
	return "schools"
}

func (s *School) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type SchoolInput struct {
	Name string `json:"name" binding:"required"`
	Tier string `json:"tier" binding:"required"`
}

// scoresTable is deleted alongside a school; the score package owns the model.
const scoresTable = "scores"
