package score

import (
	"fmt"
	"sort"
	"strings"

	"culturefest-api/internal/apperr"
	"culturefest-api/internal/category"
	"culturefest-api/internal/judge"
	"culturefest-api/internal/school"
	"culturefest-api/internal/store"

	"gorm.io/gorm"
)

var (
	conflictKeys  = []string{"judge_id", "school_id", "category_id"}
	updateColumns = []string{"score", "updated_at"}
)

type ScoreService struct {
	DB *gorm.DB
}

// SubmitBatch validates and upserts a judge's marks in one transaction.
// A triple repeated within the batch keeps its last value; resubmitting
// the same batch leaves the table unchanged.
func (s *ScoreService) SubmitBatch(judgeID string, entries []Entry) ([]Score, error) {
	judgeID = strings.TrimSpace(judgeID)
	if judgeID == "" {
		return nil, apperr.Validation("judge_id", "required", "judge_id is required")
	}
	rows, err := collapse(judgeID, entries)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := store.First[judge.Judge](tx, "judge", judgeID); err != nil {
			return err
		}
		if err := checkReferences(tx, rows); err != nil {
			return err
		}
		return store.Upsert(tx, rows, conflictKeys, updateColumns)
	})
	if err != nil {
		return nil, apperr.Persistence("submit scores", err)
	}
	return rows, nil
}

func (s *ScoreService) ListByJudge(judgeID string) ([]Score, error) {
	var out []Score
	if err := s.DB.Where("judge_id = ?", judgeID).Order("school_id, category_id").Find(&out).Error; err != nil {
		return nil, apperr.Persistence("list scores", err)
	}
	return out, nil
}

func (s *ScoreService) All() ([]Score, error) {
	return store.ReadAll[Score](s.DB, "judge_id, school_id, category_id")
}

// collapse validates every entry and keeps the last value per triple,
// preserving first-seen order.
func collapse(judgeID string, entries []Entry) ([]Score, error) {
	verr := &apperr.ValidationError{}
	if len(entries) == 0 {
		verr.Add("entries", "required", "at least one score is required")
	}

	index := map[[2]string]int{}
	var rows []Score
	for i, e := range entries {
		field := fmt.Sprintf("entries[%d]", i)
		sid, cid := strings.TrimSpace(e.SchoolID), strings.TrimSpace(e.CategoryID)
		if sid == "" {
			verr.Add(field+".school_id", "required", "school_id is required")
		}
		if cid == "" {
			verr.Add(field+".category_id", "required", "category_id is required")
		}
		switch {
		case e.Score == nil:
			verr.Add(field+".score", "required", "score is required")
		case *e.Score < MinScore || *e.Score > MaxScore:
			verr.Add(field+".score", "range", fmt.Sprintf("score must be between %d and %d", MinScore, MaxScore))
		}
		if verr.HasErrors() {
			continue
		}

		key := [2]string{sid, cid}
		if at, ok := index[key]; ok {
			rows[at].Value = *e.Score
			continue
		}
		index[key] = len(rows)
		rows = append(rows, Score{JudgeID: judgeID, SchoolID: sid, CategoryID: cid, Value: *e.Score})
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return rows, nil
}

func checkReferences(tx *gorm.DB, rows []Score) error {
	schoolIDs := map[string]bool{}
	categoryIDs := map[string]bool{}
	for _, r := range rows {
		schoolIDs[r.SchoolID] = true
		categoryIDs[r.CategoryID] = true
	}

	verr := &apperr.ValidationError{}
	if err := missing(tx, school.School{}.TableName(), schoolIDs, func(id string) {
		verr.Add("school_id", "reference", "unknown school "+id)
	}); err != nil {
		return err
	}
	if err := missing(tx, category.Category{}.TableName(), categoryIDs, func(id string) {
		verr.Add("category_id", "reference", "unknown category "+id)
	}); err != nil {
		return err
	}
	return verr.OrNil()
}

func missing(tx *gorm.DB, table string, want map[string]bool, report func(id string)) error {
	ids := make([]string, 0, len(want))
	for id := range want {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var found []string
	if err := tx.Table(table).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return err
	}
	for _, id := range found {
		delete(want, id)
	}
	for _, id := range ids {
		if want[id] {
			report(id)
		}
	}
	return nil
}
