package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/folio-next/internal/models"
)

func setupAdminRepository(t *testing.T) (*GormAdminRepository, *models.Admin) {
	t.Helper()

	dsn := fmt.Sprintf("file:admin_repo_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	repo := NewAdminRepository(db)
	admin := &models.Admin{
		Username:     "owner",
		Email:        "owner@example.com",
		PasswordHash: "hash-v1",
		IsActive:     true,
	}
	if err := repo.Create(admin); err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	return repo, admin
}

func TestGetPrimaryReturnsLowestID(t *testing.T) {
	repo, admin := setupAdminRepository(t)

	second := &models.Admin{
		Username:     "backup",
		Email:        "backup@example.com",
		PasswordHash: "hash-v1",
		IsActive:     true,
	}
	if err := repo.Create(second); err != nil {
		t.Fatalf("create second admin failed: %v", err)
	}

	primary, err := repo.GetPrimary()
	if err != nil {
		t.Fatalf("get primary failed: %v", err)
	}
	if primary == nil || primary.ID != admin.ID {
		t.Fatalf("primary admin want id %d got %+v", admin.ID, primary)
	}
}

func TestGetByEmailMissingReturnsNil(t *testing.T) {
	repo, _ := setupAdminRepository(t)

	got, err := repo.GetByEmail("stranger@example.com")
	if err != nil {
		t.Fatalf("get by email failed: %v", err)
	}
	if got != nil {
		t.Fatalf("unknown email should return nil, got %+v", got)
	}
}

func TestSetResetTokenOverwritesPrevious(t *testing.T) {
	repo, admin := setupAdminRepository(t)

	expiry1 := time.Now().Add(15 * time.Minute).UTC().Truncate(time.Second)
	if err := repo.SetResetToken(admin.ID, "111111", expiry1); err != nil {
		t.Fatalf("set reset token failed: %v", err)
	}

	expiry2 := expiry1.Add(5 * time.Minute)
	if err := repo.SetResetToken(admin.ID, "222222", expiry2); err != nil {
		t.Fatalf("overwrite reset token failed: %v", err)
	}

	stored, err := repo.GetByID(admin.ID)
	if err != nil {
		t.Fatalf("reload admin failed: %v", err)
	}
	if stored.ResetToken == nil || *stored.ResetToken != "222222" {
		t.Fatalf("reset token want 222222 got %v", stored.ResetToken)
	}
	if stored.ResetTokenExpiry == nil || !stored.ResetTokenExpiry.Equal(expiry2) {
		t.Fatalf("reset token expiry want %v got %v", expiry2, stored.ResetTokenExpiry)
	}
}

func TestIncrementResetAttempts(t *testing.T) {
	repo, admin := setupAdminRepository(t)

	if err := repo.SetResetToken(admin.ID, "555555", time.Now().Add(15*time.Minute)); err != nil {
		t.Fatalf("set reset token failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := repo.IncrementResetAttempts(admin.ID); err != nil {
			t.Fatalf("increment attempt %d failed: %v", i+1, err)
		}
	}

	stored, err := repo.GetByID(admin.ID)
	if err != nil {
		t.Fatalf("reload admin failed: %v", err)
	}
	if stored.ResetAttempts != 3 {
		t.Fatalf("reset attempts want 3 got %d", stored.ResetAttempts)
	}

	// 重新签发清零计数
	if err := repo.SetResetToken(admin.ID, "666666", time.Now().Add(15*time.Minute)); err != nil {
		t.Fatalf("reissue reset token failed: %v", err)
	}
	stored, err = repo.GetByID(admin.ID)
	if err != nil {
		t.Fatalf("reload admin failed: %v", err)
	}
	if stored.ResetAttempts != 0 {
		t.Fatalf("reset attempts should be cleared on reissue, got %d", stored.ResetAttempts)
	}
}

func TestCommitPasswordResetClearsToken(t *testing.T) {
	repo, admin := setupAdminRepository(t)

	if err := repo.SetResetToken(admin.ID, "333333", time.Now().Add(15*time.Minute)); err != nil {
		t.Fatalf("set reset token failed: %v", err)
	}
	if err := repo.IncrementResetAttempts(admin.ID); err != nil {
		t.Fatalf("increment attempts failed: %v", err)
	}
	if err := repo.CommitPasswordReset(admin.ID, "hash-v2"); err != nil {
		t.Fatalf("commit password reset failed: %v", err)
	}

	stored, err := repo.GetByID(admin.ID)
	if err != nil {
		t.Fatalf("reload admin failed: %v", err)
	}
	if stored.PasswordHash != "hash-v2" {
		t.Fatalf("password hash want hash-v2 got %s", stored.PasswordHash)
	}
	if stored.ResetToken != nil || stored.ResetTokenExpiry != nil {
		t.Fatalf("reset token should be cleared, got %v / %v", stored.ResetToken, stored.ResetTokenExpiry)
	}
	if stored.ResetAttempts != 0 {
		t.Fatalf("reset attempts should be cleared on commit, got %d", stored.ResetAttempts)
	}
}

func TestClearExpiredResetTokens(t *testing.T) {
	repo, admin := setupAdminRepository(t)

	if err := repo.SetResetToken(admin.ID, "444444", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("set reset token failed: %v", err)
	}

	cleared, err := repo.ClearExpiredResetTokens(time.Now())
	if err != nil {
		t.Fatalf("clear expired tokens failed: %v", err)
	}
	if cleared != 1 {
		t.Fatalf("cleared rows want 1 got %d", cleared)
	}

	stored, err := repo.GetByID(admin.ID)
	if err != nil {
		t.Fatalf("reload admin failed: %v", err)
	}
	if stored.ResetToken != nil {
		t.Fatalf("expired token should be removed, got %v", stored.ResetToken)
	}

	cleared, err = repo.ClearExpiredResetTokens(time.Now())
	if err != nil {
		t.Fatalf("second clear failed: %v", err)
	}
	if cleared != 0 {
		t.Fatalf("second clear should touch nothing, got %d", cleared)
	}
}

func TestUpdateLastLogin(t *testing.T) {
	repo, admin := setupAdminRepository(t)

	at := time.Now().UTC().Truncate(time.Second)
	if err := repo.UpdateLastLogin(admin.ID, at); err != nil {
		t.Fatalf("update last login failed: %v", err)
	}

	stored, err := repo.GetByID(admin.ID)
	if err != nil {
		t.Fatalf("reload admin failed: %v", err)
	}
	if stored.LastLoginAt == nil || !stored.LastLoginAt.Equal(at) {
		t.Fatalf("last login want %v got %v", at, stored.LastLoginAt)
	}
}
