package database

import (
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"summer-success/tracker/config"
	"summer-success/tracker/internal/model"
)

func openSQLite(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	return &config.DatabaseConfig{
		Driver:     DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "data", "tracker.db"),
	}
}

func TestNewDB_SQLiteInsertsWithForeignKeysOn(t *testing.T) {
	db, err := NewDB(openSQLite(t), zap.NewNop())
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })

	var fkOn int
	if err := db.Raw("PRAGMA foreign_keys").Scan(&fkOn).Error; err != nil || fkOn != 1 {
		t.Fatalf("foreign_keys pragma: on=%d err=%v", fkOn, err)
	}

	child := &model.Child{Name: "Ava"}
	if err := db.Create(child).Error; err != nil {
		t.Fatalf("create child: %v", err)
	}
	five := model.BehaviorDeduction
	minutes := 30
	if err := db.Create(&model.Activity{
		ChildID: child.ChildID, Date: "2025-07-14", Type: model.ActivityEducation,
		Category: "Reading", Description: "book", Duration: &minutes, Completed: true,
	}).Error; err != nil {
		t.Fatalf("create activity: %v", err)
	}
	if err := db.Create(&model.Behavior{
		ChildID: child.ChildID, Date: "2025-07-14", Type: "Lying", Deduction: &five,
	}).Error; err != nil {
		t.Fatalf("create behavior: %v", err)
	}

	var n int64
	db.Model(&model.Activity{}).Where("child_id = ?", child.ChildID).Count(&n)
	if n != 1 {
		t.Errorf("expected 1 activity, got %d", n)
	}
}

func TestNewDB_SQLiteChildrenTableHasNoForeignKeys(t *testing.T) {
	db, err := NewDB(openSQLite(t), zap.NewNop())
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })

	var ddl string
	if err := db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'children'").Scan(&ddl).Error; err != nil {
		t.Fatalf("read schema: %v", err)
	}
	if ddl == "" {
		t.Fatal("children table missing")
	}
	if strings.Contains(strings.ToUpper(ddl), "FOREIGN KEY") {
		t.Errorf("children must not reference other tables: %s", ddl)
	}
}
