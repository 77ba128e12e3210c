package store

import (
	"errors"

	"culturefest-api/internal/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Write is one row update addressed by table and id.
type Write struct {
	Table  string
	ID     string
	Fields map[string]interface{}
}

// ReadAll loads every row of T in the given order ("" keeps database order).
func ReadAll[T any](db *gorm.DB, order string) ([]T, error) {
	var rows []T
	q := db
	if order != "" {
		q = q.Order(order)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, apperr.Persistence("read all", err)
	}
	return rows, nil
}

// Upsert inserts rows, updating the listed columns when keys collide.
func Upsert[T any](db *gorm.DB, rows []T, keys, update []string) error {
	if len(rows) == 0 {
		return nil
	}
	cols := make([]clause.Column, 0, len(keys))
	for _, k := range keys {
		cols = append(cols, clause.Column{Name: k})
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   cols,
		DoUpdates: clause.AssignmentColumns(update),
	}).Create(&rows).Error
	return apperr.Persistence("upsert", err)
}

// BatchUpdate applies every write inside one transaction. A write whose id
// matches no row rolls the whole batch back with a NotFoundError.
func BatchUpdate(db *gorm.DB, writes []Write) error {
	if len(writes) == 0 {
		return nil
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, w := range writes {
			res := tx.Table(w.Table).Where("id = ?", w.ID).Updates(w.Fields)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperr.NotFound(w.Table, w.ID)
			}
		}
		return nil
	})
	return apperr.Persistence("batch update", err)
}

// First loads one row by id, mapping a miss to NotFoundError.
func First[T any](db *gorm.DB, entity, id string) (*T, error) {
	var row T
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(entity, id)
		}
		return nil, apperr.Persistence("read "+entity, err)
	}
	return &row, nil
}
