package models

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(All()...); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func TestCreateContactSubmission(t *testing.T) {
	db := setupTestDB(t)

	lead := ContactSubmission{
		Reference: "7b0c2f0e-3d1f-4a55-9d36-8f4b8d1f2a10",
		Name:      "Pat Doe",
		Email:     "pat@example.com",
		Project:   "Kitchen remodel",
	}

	if err := db.Create(&lead).Error; err != nil {
		t.Fatalf("Failed to create submission: %v", err)
	}
	if lead.ID == 0 {
		t.Error("ID should be set after creation")
	}

	var got ContactSubmission
	if err := db.First(&got, lead.ID).Error; err != nil {
		t.Fatalf("Failed to load submission: %v", err)
	}
	if got.Status != StatusNew {
		t.Errorf("expected default status %q, got %q", StatusNew, got.Status)
	}
}

func TestReferenceIsUnique(t *testing.T) {
	db := setupTestDB(t)

	first := ContactSubmission{Reference: "same", Name: "A", Email: "a@example.com"}
	second := ContactSubmission{Reference: "same", Name: "B", Email: "b@example.com"}

	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("Failed to create first: %v", err)
	}
	if err := db.Create(&second).Error; err == nil {
		t.Fatal("expected unique constraint violation on reference")
	}
}

func TestSoftDelete(t *testing.T) {
	db := setupTestDB(t)

	lead := ContactSubmission{Reference: "r1", Name: "A", Email: "a@example.com"}
	db.Create(&lead)
	db.Delete(&lead)

	var count int64
	db.Model(&ContactSubmission{}).Count(&count)
	if count != 0 {
		t.Errorf("expected soft-deleted lead to be hidden, got %d", count)
	}

	db.Unscoped().Model(&ContactSubmission{}).Count(&count)
	if count != 1 {
		t.Errorf("expected lead to remain in table, got %d", count)
	}
}
