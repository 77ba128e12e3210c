package judge

import (
	"strings"

	"culturefest-api/internal/apperr"
	"culturefest-api/internal/store"
	"culturefest-api/internal/util"

	"gorm.io/gorm"
)

type JudgeService struct {
	DB *gorm.DB
}

func (s *JudgeService) List() ([]Judge, error) {
	return store.ReadAll[Judge](s.DB, "LOWER(name) asc, id asc")
}

func (s *JudgeService) Get(id string) (*Judge, error) {
	return store.First[Judge](s.DB, "judge", id)
}

func (s *JudgeService) Create(in JudgeInput) (*Judge, error) {
	row, err := parseInput(in)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Create(&row).Error; err != nil {
		return nil, apperr.Persistence("create judge", err)
	}
	return &row, nil
}

func (s *JudgeService) Update(id string, in JudgeInput) (*Judge, error) {
	row, err := parseInput(in)
	if err != nil {
		return nil, err
	}
	res := s.DB.Model(&Judge{}).Where("id = ?", id).
		Updates(map[string]interface{}{"name": row.Name, "contact": row.Contact})
	if res.Error != nil {
		return nil, apperr.Persistence("update judge", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("judge", id)
	}
	return s.Get(id)
}

// Delete removes the judge together with every score the judge submitted.
func (s *JudgeService) Delete(id string) (*Judge, error) {
	current, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM "+scoresTable+" WHERE judge_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Judge{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, apperr.Persistence("delete judge", err)
	}
	return current, nil
}

// Count is the divisor used by the leaderboard.
func (s *JudgeService) Count() (int64, error) {
	var n int64
	if err := s.DB.Model(&Judge{}).Count(&n).Error; err != nil {
		return 0, apperr.Persistence("count judges", err)
	}
	return n, nil
}

func parseInput(in JudgeInput) (Judge, error) {
	name := strings.Join(strings.Fields(in.Name), " ")
	if name == "" {
		return Judge{}, apperr.Validation("name", "required", "judge name is required")
	}
	return Judge{Name: name, Contact: util.Clamp(strings.TrimSpace(in.Contact), 200)}, nil
}
