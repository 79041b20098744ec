package service

import (
	"task_tracker/internal/domain"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// A single connection keeps every statement on the same in-memory DB
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&domain.User{}, &domain.Task{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

// seedUser registers a user and returns its ID
func seedUser(t *testing.T, db *gorm.DB, username string) uint {
	t.Helper()
	auth := NewAuthService(db)
	if err := auth.Register(username, "password123"); err != nil {
		t.Fatalf("failed to register %s: %v", username, err)
	}
	var user domain.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		t.Fatalf("failed to load %s: %v", username, err)
	}
	return user.ID
}

func userCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&domain.User{}).Count(&n).Error; err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	return n
}

func taskCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&domain.Task{}).Count(&n).Error; err != nil {
		t.Fatalf("failed to count tasks: %v", err)
	}
	return n
}
