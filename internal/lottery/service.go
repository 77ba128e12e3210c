package lottery

import (
	"fmt"
	"sort"
	"time"

	"culturefest-api/internal/apperr"
	"culturefest-api/internal/school"
	"culturefest-api/internal/store"

	"gorm.io/gorm"
)

var nowFunc = time.Now

type LotteryService struct {
	DB *gorm.DB
}

// Preview draws a new order for tier without saving it.
func (s *LotteryService) Preview(tier school.Tier) ([]Assignment, error) {
	schools, err := store.ReadAll[school.School](s.DB, "LOWER(name) asc, id asc")
	if err != nil {
		return nil, err
	}
	drawn := Draw(schools, tier, newRand())

	var out []Assignment
	for _, sc := range drawn {
		if sc.Tier == tier {
			out = append(out, Assignment{SchoolID: sc.ID, SchoolName: sc.Name, SerialNo: *sc.SerialNo})
		}
	}
	if len(out) == 0 {
		return nil, apperr.Validation("tier", "empty", fmt.Sprintf("no schools registered in %s", tier))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SerialNo < out[j].SerialNo })
	return out, nil
}

// Commit saves order as the performance order of tier. The order must number
// every school of the tier exactly once from 1 to N. Only changed serial
// numbers are written, all in one transaction.
func (s *LotteryService) Commit(tier school.Tier, order []Assignment) ([]Assignment, error) {
	current, err := (&school.SchoolService{DB: s.DB}).List(&tier)
	if err != nil {
		return nil, err
	}
	if len(current) == 0 {
		return nil, apperr.Validation("tier", "empty", fmt.Sprintf("no schools registered in %s", tier))
	}
	if err := checkPermutation(current, order); err != nil {
		return nil, err
	}

	byID := make(map[string]school.School, len(current))
	for _, sc := range current {
		byID[sc.ID] = sc
	}

	now := nowFunc()
	var writes []store.Write
	out := make([]Assignment, 0, len(order))
	for _, a := range order {
		sc := byID[a.SchoolID]
		if sc.SerialNo == nil || *sc.SerialNo != a.SerialNo {
			writes = append(writes, store.Write{
				Table:  sc.TableName(),
				ID:     sc.ID,
				Fields: map[string]interface{}{"serial_no": a.SerialNo, "updated_at": now},
			})
		}
		out = append(out, Assignment{SchoolID: sc.ID, SchoolName: sc.Name, SerialNo: a.SerialNo})
	}
	if err := store.BatchUpdate(s.DB, writes); err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].SerialNo < out[j].SerialNo })
	return out, nil
}

func checkPermutation(current []school.School, order []Assignment) error {
	verr := &apperr.ValidationError{}
	n := len(current)
	if len(order) != n {
		verr.Add("order", "count", fmt.Sprintf("order must list all %d schools of the tier, got %d", n, len(order)))
		return verr
	}

	inTier := make(map[string]bool, n)
	for _, sc := range current {
		inTier[sc.ID] = true
	}
	seenID := map[string]bool{}
	seenSerial := map[int]bool{}
	for i, a := range order {
		field := fmt.Sprintf("order[%d]", i)
		switch {
		case !inTier[a.SchoolID]:
			verr.Add(field+".school_id", "tier", "school "+a.SchoolID+" is not in this tier")
		case seenID[a.SchoolID]:
			verr.Add(field+".school_id", "duplicate", "school "+a.SchoolID+" is listed twice")
		}
		seenID[a.SchoolID] = true

		switch {
		case a.SerialNo < 1 || a.SerialNo > n:
			verr.Add(field+".serial_no", "range", fmt.Sprintf("serial number must be between 1 and %d", n))
		case seenSerial[a.SerialNo]:
			verr.Add(field+".serial_no", "duplicate", fmt.Sprintf("serial number %d is used twice", a.SerialNo))
		}
		seenSerial[a.SerialNo] = true
	}
	return verr.OrNil()
}
