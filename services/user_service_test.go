package services

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/Mamora-sema/Food-diary/config"
	"github.com/Mamora-sema/Food-diary/models"
)

func newTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.MealEntry{},
		&models.DailyGoal{},
		&models.DailyProgress{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	config.DB = db
}

func TestDeleteAccountFreesUsername(t *testing.T) {
	newTestDB(t)

	user, err := RegisterUser("alice", "password", "password")
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if err := DeleteAccount(user.ID, "alice"); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}

	var count int64
	config.DB.Unscoped().Model(&models.User{}).Where("username = ?", "alice").Count(&count)
	if count != 0 {
		t.Fatalf("user row still present after account deletion (count %d)", count)
	}

	if _, err := RegisterUser("alice", "password", "password"); err != nil {
		t.Errorf("re-register after account deletion: %v", err)
	}
}

func TestDeleteAccountRequiresUsernameConfirmation(t *testing.T) {
	newTestDB(t)

	user, err := RegisterUser("bob", "password", "password")
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if err := DeleteAccount(user.ID, "not-bob"); err == nil {
		t.Fatal("account deleted with wrong username confirmation")
	}

	var count int64
	config.DB.Model(&models.User{}).Where("username = ?", "bob").Count(&count)
	if count != 1 {
		t.Fatalf("user row missing after rejected deletion (count %d)", count)
	}
}
