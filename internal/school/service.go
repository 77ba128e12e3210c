package school

import (
	"sort"
	"strings"

	"culturefest-api/internal/apperr"
	"culturefest-api/internal/store"

	"gorm.io/gorm"
)

type SchoolService struct {
	DB *gorm.DB
}

// List returns schools ordered by name, optionally limited to one tier.
func (s *SchoolService) List(tier *Tier) ([]School, error) {
	q := s.DB.Order("LOWER(name) asc, id asc")
	if tier != nil {
		q = q.Where("tier = ?", *tier)
	}
	var out []School
	if err := q.Find(&out).Error; err != nil {
		return nil, apperr.Persistence("list schools", err)
	}
	return out, nil
}

func (s *SchoolService) Get(id string) (*School, error) {
	return store.First[School](s.DB, "school", id)
}

func (s *SchoolService) Create(in SchoolInput) (*School, error) {
	name, tier, err := parseInput(in)
	if err != nil {
		return nil, err
	}
	row := School{Name: name, Tier: tier}
	if err := s.DB.Create(&row).Error; err != nil {
		return nil, apperr.Persistence("create school", err)
	}
	return &row, nil
}

// Update renames or moves a school. Moving it to another tier clears its serial number.
func (s *SchoolService) Update(id string, in SchoolInput) (*School, error) {
	name, tier, err := parseInput(in)
	if err != nil {
		return nil, err
	}
	current, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{"name": name, "tier": tier}
	if tier != current.Tier {
		fields["serial_no"] = nil
	}
	if err := s.DB.Model(&School{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, apperr.Persistence("update school", err)
	}
	return s.Get(id)
}

// Delete removes the school and every score recorded for it.
func (s *SchoolService) Delete(id string) (*School, error) {
	current, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM "+scoresTable+" WHERE school_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&School{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, apperr.Persistence("delete school", err)
	}
	return current, nil
}

// PerformanceOrder lists a tier by serial number; unnumbered schools follow by name.
func (s *SchoolService) PerformanceOrder(tier Tier) ([]School, error) {
	rows, err := s.List(&tier)
	if err != nil {
		return nil, err
	}
	SortBySerial(rows)
	return rows, nil
}

func SortBySerial(rows []School) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].SerialNo, rows[j].SerialNo
		switch {
		case a != nil && b != nil:
			return *a < *b
		case a != nil:
			return true
		case b != nil:
			return false
		default:
			return strings.ToLower(rows[i].Name) < strings.ToLower(rows[j].Name)
		}
	})
}

func parseInput(in SchoolInput) (string, Tier, error) {
	verr := &apperr.ValidationError{}
	name := strings.Join(strings.Fields(in.Name), " ")
	if name == "" {
		verr.Add("name", "required", "school name is required")
	}
	tier, err := ParseTier(in.Tier)
	if err != nil {
		verr.Add("tier", "tier", tierMessage)
	}
	return name, tier, verr.OrNil()
}
