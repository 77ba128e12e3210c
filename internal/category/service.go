package category

import (
	"strings"

	"culturefest-api/internal/apperr"
	"culturefest-api/internal/store"

	"gorm.io/gorm"
)

type CategoryService struct {
	DB *gorm.DB
}

func (s *CategoryService) List() ([]Category, error) {
	return store.ReadAll[Category](s.DB, "position asc, LOWER(name) asc")
}

func (s *CategoryService) Create(in CategoryInput) (*Category, error) {
	name, err := s.checkName(in.Name, "")
	if err != nil {
		return nil, err
	}

	row := Category{Name: name}
	if in.Position != nil {
		row.Position = *in.Position
	} else {
		var last struct{ Max *int }
		if err := s.DB.Model(&Category{}).Select("MAX(position) AS max").Scan(&last).Error; err != nil {
			return nil, apperr.Persistence("create category", err)
		}
		if last.Max != nil {
			row.Position = *last.Max + 1
		}
	}

	if err := s.DB.Create(&row).Error; err != nil {
		return nil, apperr.Persistence("create category", err)
	}
	return &row, nil
}

func (s *CategoryService) Update(id string, in CategoryInput) (*Category, error) {
	current, err := store.First[Category](s.DB, "category", id)
	if err != nil {
		return nil, err
	}
	name, err := s.checkName(in.Name, id)
	if err != nil {
		return nil, err
	}

	current.Name = name
	if in.Position != nil {
		current.Position = *in.Position
	}
	if err := s.DB.Model(&Category{}).Where("id = ?", id).
		Updates(map[string]interface{}{"name": current.Name, "position": current.Position}).Error; err != nil {
		return nil, apperr.Persistence("update category", err)
	}
	return current, nil
}

// Delete removes the category and the scores given under it.
func (s *CategoryService) Delete(id string) (*Category, error) {
	current, err := store.First[Category](s.DB, "category", id)
	if err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM "+scoresTable+" WHERE category_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Category{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, apperr.Persistence("delete category", err)
	}
	return current, nil
}

// checkName normalizes the name and rejects one already used by another category.
func (s *CategoryService) checkName(raw, selfID string) (string, error) {
	name := strings.Join(strings.Fields(raw), " ")
	if name == "" {
		return "", apperr.Validation("name", "required", "category name is required")
	}
	q := s.DB.Model(&Category{}).Where("LOWER(name) = ?", strings.ToLower(name))
	if selfID != "" {
		q = q.Where("id <> ?", selfID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return "", apperr.Persistence("check category name", err)
	}
	if n > 0 {
		return "", apperr.Validation("name", "duplicate", "a category named "+name+" already exists")
	}
	return name, nil
}
