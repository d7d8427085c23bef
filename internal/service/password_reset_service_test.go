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

type stubResetCodeSender struct {
	sentTo    []string
	sentCodes []string
	failWith  error
}

func (s *stubResetCodeSender) SendResetCode(toEmail, code string, expiresIn time.Duration) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.sentTo = append(s.sentTo, toEmail)
	s.sentCodes = append(s.sentCodes, code)
	return nil
}

func (s *stubResetCodeSender) lastCode() string {
	if len(s.sentCodes) == 0 {
		return ""
	}
	return s.sentCodes[len(s.sentCodes)-1]
}

func setupPasswordResetTest(t *testing.T) (*PasswordResetService, *stubResetCodeSender, repository.AdminRepository, *models.Admin) {
	t.Helper()

	dsn := fmt.Sprintf("file:password_reset_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.DefaultCost)
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
	cfg.Email.ResetCode = config.ResetCodeConfig{
		ExpireMinutes:       15,
		SendIntervalSeconds: 60,
		Length:              6,
		MaxAttempts:         5,
	}
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{MinLength: 6}

	sender := &stubResetCodeSender{}
	svc := NewPasswordResetService(cfg, adminRepo, sender)
	return svc, sender, adminRepo, admin
}

func TestIssueResetCodeSendsSixDigitCode(t *testing.T) {
	svc, sender, adminRepo, admin := setupPasswordResetTest(t)

	if err := svc.IssueResetCode("Owner@Example.com"); err != nil {
		t.Fatalf("issue reset code failed: %v", err)
	}
	if len(sender.sentTo) != 1 || sender.sentTo[0] != "owner@example.com" {
		t.Fatalf("expected one normalized recipient, got %+v", sender.sentTo)
	}
	code := sender.lastCode()
	if len(code) != 6 {
		t.Fatalf("expected 6 digit code, got %q", code)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Fatalf("expected numeric code, got %q", code)
		}
	}

	stored, err := adminRepo.GetByID(admin.ID)
	if err != nil {
		t.Fatalf("load admin failed: %v", err)
	}
	if stored.ResetToken == nil || *stored.ResetToken != code {
		t.Fatalf("expected stored token %q, got %+v", code, stored.ResetToken)
	}
	if stored.ResetTokenExpiry == nil {
		t.Fatal("expected reset token expiry to be set")
	}
}

func TestIssueResetCodeUnknownEmail(t *testing.T) {
	svc, sender, _, _ := setupPasswordResetTest(t)

	if err := svc.IssueResetCode("nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(sender.sentCodes) != 0 {
		t.Fatalf("expected no code sent for unknown email, got %d", len(sender.sentCodes))
	}
}

func TestIssueResetCodeCooldown(t *testing.T) {
	svc, sender, _, _ := setupPasswordResetTest(t)

	now := time.Now()
	svc.nowFunc = func() time.Time { return now }

	if err := svc.IssueResetCode("owner@example.com"); err != nil {
		t.Fatalf("first issue failed: %v", err)
	}
	if err := svc.IssueResetCode("owner@example.com"); !errors.Is(err, ErrResetTooFrequent) {
		t.Fatalf("expected ErrResetTooFrequent, got %v", err)
	}

	now = now.Add(61 * time.Second)
	if err := svc.IssueResetCode("owner@example.com"); err != nil {
		t.Fatalf("issue after cooldown failed: %v", err)
	}
	if len(sender.sentCodes) != 2 {
		t.Fatalf("expected 2 sent codes, got %d", len(sender.sentCodes))
	}
}

func TestReissueInvalidatesOldCode(t *testing.T) {
	svc, sender, _, _ := setupPasswordResetTest(t)

	now := time.Now()
	svc.nowFunc = func() time.Time { return now }

	if err := svc.IssueResetCode("owner@example.com"); err != nil {
		t.Fatalf("first issue failed: %v", err)
	}
	oldCode := sender.lastCode()

	now = now.Add(2 * time.Minute)
	if err := svc.IssueResetCode("owner@example.com"); err != nil {
		t.Fatalf("reissue failed: %v", err)
	}
	newCode := sender.lastCode()

	if oldCode != newCode {
		if err := svc.VerifyResetCode("owner@example.com", oldCode); !errors.Is(err, ErrResetCodeInvalid) {
			t.Fatalf("expected old code invalid after reissue, got %v", err)
		}
	}
	if err := svc.VerifyResetCode("owner@example.com", newCode); err != nil {
		t.Fatalf("expected new code valid, got %v", err)
	}
}

func TestVerifyResetCodeDoesNotConsume(t *testing.T) {
	svc, sender, _, _ := setupPasswordResetTest(t)

	if err := svc.IssueResetCode("owner@example.com"); err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	code := sender.lastCode()

	for i := 0; i < 3; i++ {
		if err := svc.VerifyResetCode("owner@example.com", code); err != nil {
			t.Fatalf("verify attempt %d failed: %v", i+1, err)
		}
	}
}

func TestVerifyResetCodeFailures(t *testing.T) {
	svc, sender, _, _ := setupPasswordResetTest(t)

	now := time.Now()
	svc.nowFunc = func() time.Time { return now }

	if err := svc.IssueResetCode("owner@example.com"); err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	code := sender.lastCode()

	cases := []struct {
		name  string
		email string
		code  string
	}{
		{"wrong code", "owner@example.com", "000000"},
		{"short code", "owner@example.com", "123"},
		{"unknown email", "ghost@example.com", code},
		{"empty code", "owner@example.com", ""},
	}
	for _, tc := range cases {
		if err := svc.VerifyResetCode(tc.email, tc.code); !errors.Is(err, ErrResetCodeInvalid) {
			t.Fatalf("%s: expected ErrResetCodeInvalid, got %v", tc.name, err)
		}
	}

	// 过期后正确验证码同样失效
	now = now.Add(16 * time.Minute)
	if err := svc.VerifyResetCode("owner@example.com", code); !errors.Is(err, ErrResetCodeInvalid) {
		t.Fatalf("expected expired code invalid, got %v", err)
	}
}

func TestCommitPasswordReset(t *testing.T) {
	svc, sender, adminRepo, admin := setupPasswordResetTest(t)

	if err := svc.IssueResetCode("owner@example.com"); err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	code := sender.lastCode()

	if err := svc.CommitPasswordReset("owner@example.com", code, "new-password", "new-password"); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	stored, err := adminRepo.GetByID(admin.ID)
	if err != nil {
		t.Fatalf("load admin failed: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-password")); err != nil {
		t.Fatalf("expected new password to match, got %v", err)
	}
	if stored.ResetToken != nil || stored.ResetTokenExpiry != nil {
		t.Fatalf("expected reset token cleared, got token=%v expiry=%v", stored.ResetToken, stored.ResetTokenExpiry)
	}

	// 提交后验证码不可复用
	if err := svc.VerifyResetCode("owner@example.com", code); !errors.Is(err, ErrResetCodeInvalid) {
		t.Fatalf("expected code consumed after commit, got %v", err)
	}
}

func TestCommitPasswordResetRejections(t *testing.T) {
	svc, sender, adminRepo, admin := setupPasswordResetTest(t)

	if err := svc.IssueResetCode("owner@example.com"); err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	code := sender.lastCode()

	if err := svc.CommitPasswordReset("owner@example.com", code, "new-password", "other"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if err := svc.CommitPasswordReset("owner@example.com", code, "short", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
	if err := svc.CommitPasswordReset("owner@example.com", "999999", "new-password", "new-password"); !errors.Is(err, ErrResetCodeInvalid) {
		t.Fatalf("expected ErrResetCodeInvalid, got %v", err)
	}

	// 全部失败分支都不应改动密码或验证码
	stored, err := adminRepo.GetByID(admin.ID)
	if err != nil {
		t.Fatalf("load admin failed: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("old-password")); err != nil {
		t.Fatalf("expected old password unchanged, got %v", err)
	}
	if stored.ResetToken == nil || *stored.ResetToken != code {
		t.Fatalf("expected reset token untouched, got %+v", stored.ResetToken)
	}
}

func TestSweepExpiredResetTokens(t *testing.T) {
	svc, _, adminRepo, admin := setupPasswordResetTest(t)

	now := time.Now()
	svc.nowFunc = func() time.Time { return now }

	if err := svc.IssueResetCode("owner@example.com"); err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// 未过期不清理
	cleared, err := svc.SweepExpiredResetTokens()
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if cleared != 0 {
		t.Fatalf("expected nothing cleared, got %d", cleared)
	}

	now = now.Add(16 * time.Minute)
	cleared, err = svc.SweepExpiredResetTokens()
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if cleared != 1 {
		t.Fatalf("expected one row cleared, got %d", cleared)
	}

	stored, err := adminRepo.GetByID(admin.ID)
	if err != nil {
		t.Fatalf("load admin failed: %v", err)
	}
	if stored.ResetToken != nil || stored.ResetTokenExpiry != nil {
		t.Fatalf("expected token cleared by sweep, got token=%v expiry=%v", stored.ResetToken, stored.ResetTokenExpiry)
	}
}

func TestIssueResetCodeStoresBeforeSending(t *testing.T) {
	svc, sender, adminRepo, admin := setupPasswordResetTest(t)

	now := time.Now()
	svc.nowFunc = func() time.Time { return now }

	// 投递失败时验证码已落盘，仍然可用
	sender.failWith = ErrEmailRecipientRejected
	if err := svc.IssueResetCode("owner@example.com"); !errors.Is(err, ErrEmailRecipientRejected) {
		t.Fatalf("expected sender error surfaced, got %v", err)
	}

	stored, err := adminRepo.GetByID(admin.ID)
	if err != nil {
		t.Fatalf("load admin failed: %v", err)
	}
	if stored.ResetToken == nil || stored.ResetTokenExpiry == nil {
		t.Fatalf("expected token persisted despite send failure, got token=%v expiry=%v", stored.ResetToken, stored.ResetTokenExpiry)
	}
	if err := svc.VerifyResetCode("owner@example.com", *stored.ResetToken); err != nil {
		t.Fatalf("expected persisted code to verify, got %v", err)
	}

	// 成功的重发覆盖这枚验证码
	now = now.Add(2 * time.Minute)
	sender.failWith = nil
	if err := svc.IssueResetCode("owner@example.com"); err != nil {
		t.Fatalf("reissue failed: %v", err)
	}
	reloaded, err := adminRepo.GetByID(admin.ID)
	if err != nil {
		t.Fatalf("reload admin failed: %v", err)
	}
	if reloaded.ResetToken == nil || *reloaded.ResetToken != sender.lastCode() {
		t.Fatalf("expected stored token to match sent code, got %+v", reloaded.ResetToken)
	}
}

func TestVerifyResetCodeAttemptCap(t *testing.T) {
	svc, sender, adminRepo, admin := setupPasswordResetTest(t)

	now := time.Now()
	svc.nowFunc = func() time.Time { return now }

	if err := svc.IssueResetCode("owner@example.com"); err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	code := sender.lastCode()

	for i := 0; i < 5; i++ {
		if err := svc.VerifyResetCode("owner@example.com", "000000"); !errors.Is(err, ErrResetCodeInvalid) {
			t.Fatalf("wrong attempt %d: expected ErrResetCodeInvalid, got %v", i+1, err)
		}
	}

	// 达到上限后正确验证码也被拒绝
	if err := svc.VerifyResetCode("owner@example.com", code); !errors.Is(err, ErrResetCodeInvalid) {
		t.Fatalf("expected exhausted code rejected, got %v", err)
	}
	if err := svc.CommitPasswordReset("owner@example.com", code, "new-password", "new-password"); !errors.Is(err, ErrResetCodeInvalid) {
		t.Fatalf("expected exhausted code rejected on commit, got %v", err)
	}

	stored, err := adminRepo.GetByID(admin.ID)
	if err != nil {
		t.Fatalf("load admin failed: %v", err)
	}
	if stored.ResetAttempts < 5 {
		t.Fatalf("expected at least 5 recorded attempts, got %d", stored.ResetAttempts)
	}

	// 重新签发清零计数，新验证码可正常使用
	now = now.Add(61 * time.Second)
	if err := svc.IssueResetCode("owner@example.com"); err != nil {
		t.Fatalf("reissue failed: %v", err)
	}
	if err := svc.VerifyResetCode("owner@example.com", sender.lastCode()); err != nil {
		t.Fatalf("expected fresh code valid after reissue, got %v", err)
	}
}
