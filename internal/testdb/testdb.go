// Package testdb opens throwaway sqlite databases for package tests.
package testdb

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var seq uint64

// New opens a private in-memory database and migrates models into it.
func New(t testing.TB, models ...interface{}) *gorm.DB {
	t.Helper()

	n := atomic.AddUint64(&seq, 1)
	dsn := fmt.Sprintf("file:culturefest_test_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", n)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// Break closes the pool so every later query fails.
func Break(t testing.TB, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	_ = sqlDB.Close()
}
