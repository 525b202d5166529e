package helper

import (
	"os"
	"testing"

	"wedding_manager/database"
	"wedding_manager/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points the package-level connection at a throwaway sqlite file.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "wedding-test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	db, err := gorm.Open(sqlite.Open(tmpFile.Name()), &gorm.Config{})
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.GuestGroup{}, &model.Guest{}, &model.Gift{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	database.DB = db
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		os.Remove(tmpFile.Name())
	})

	return db
}

func createGroup(t *testing.T, db *gorm.DB, name string) model.GuestGroup {
	t.Helper()
	group := model.GuestGroup{Name: name}
	if err := db.Create(&group).Error; err != nil {
		t.Fatalf("failed to create group: %v", err)
	}
	return group
}

func createGuest(t *testing.T, db *gorm.DB, name string, groupId *uint, isChild bool) model.Guest {
	t.Helper()
	guest := model.Guest{Name: name, GroupId: groupId, IsChild: isChild}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("failed to create guest: %v", err)
	}
	return guest
}

func createGift(t *testing.T, db *gorm.DB, title string, price float64, purchased bool) model.Gift {
	t.Helper()
	image := "https://example.com/" + title + ".jpg"
	gift := model.Gift{Title: title, Description: title + " description", Price: price, Image: &image, Purchased: purchased}
	if err := db.Create(&gift).Error; err != nil {
		t.Fatalf("failed to create gift: %v", err)
	}
	return gift
}
