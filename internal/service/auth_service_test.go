package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/folio-next/internal/config"
	"github.com/folio-next/internal/models"
	"github.com/folio-next/internal/repository"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, *gorm.DB, repository.AdminRepository, *models.Admin) {
	t.Helper()

	dsn := fmt.Sprintf("file:auth_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	admin := &models.Admin{
		Username:     "admin",
		Email:        "owner@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	adminRepo := repository.NewAdminRepository(db)
	if err := adminRepo.Create(admin); err != nil {
		t.Fatalf("create admin failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key-0123456789-0123456789"
	cfg.JWT.ExpireHours = 24
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{MinLength: 6}

	return NewAuthService(cfg, adminRepo), db, adminRepo, admin
}

func TestLoginSuccess(t *testing.T) {
	svc, _, adminRepo, admin := setupAuthServiceTest(t)

	loggedIn, token, expiresAt, err := svc.Login("correct-password")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loggedIn.ID != admin.ID {
		t.Fatalf("expected admin %d, got %d", admin.ID, loggedIn.ID)
	}
	if token == "" {
		t.Fatal("expected token")
	}
	if remaining := time.Until(expiresAt); remaining < 23*time.Hour || remaining > 25*time.Hour {
		t.Fatalf("expected roughly 24h validity, got %s", remaining)
	}
	if loggedIn.LastLoginAt == nil {
		t.Fatal("expected last login time to be set")
	}

	stored, err := adminRepo.GetByID(admin.ID)
	if err != nil {
		t.Fatalf("load admin failed: %v", err)
	}
	if stored.LastLoginAt == nil {
		t.Fatal("expected last login persisted")
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.AdminID != admin.ID || claims.Username != admin.Username {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _, _ := setupAuthServiceTest(t)

	if _, _, _, err := svc.Login("wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, db, _, admin := setupAuthServiceTest(t)

	if err := db.Model(&models.Admin{}).
		Where("id = ?", admin.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("disable admin failed: %v", err)
	}

	if _, _, _, err := svc.Login("correct-password"); !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestParseJWTRejectsTampered(t *testing.T) {
	svc, _, _, _ := setupAuthServiceTest(t)

	_, token, _, err := svc.Login("correct-password")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := svc.ParseJWT(token + "x"); err == nil {
		t.Fatal("expected tampered token rejected")
	}
	if _, err := svc.ParseJWT(""); err == nil {
		t.Fatal("expected empty token rejected")
	}
}

func TestChangePassword(t *testing.T) {
	svc, _, adminRepo, admin := setupAuthServiceTest(t)

	if err := svc.ChangePassword(admin.ID, "wrong", "brand-new-password"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
	if err := svc.ChangePassword(admin.ID, "correct-password", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
	if err := svc.ChangePassword(admin.ID, "correct-password", "brand-new-password"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	stored, err := adminRepo.GetByID(admin.ID)
	if err != nil {
		t.Fatalf("load admin failed: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("brand-new-password")); err != nil {
		t.Fatalf("expected password updated, got %v", err)
	}
}
