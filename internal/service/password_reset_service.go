package service

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"github.com/folio-next/internal/config"
	"github.com/folio-next/internal/models"
	"github.com/folio-next/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// ResetCodeSender 重置验证码投递接口
type ResetCodeSender interface {
	SendResetCode(toEmail, code string, expiresIn time.Duration) error
}

// PasswordResetService 密码重置服务
// 验证码直接落在管理员行上，重新签发整体覆盖旧码。
type PasswordResetService struct {
	cfg       *config.Config
	adminRepo repository.AdminRepository
	sender    ResetCodeSender

	// 测试用时钟注入
	nowFunc func() time.Time
}

// NewPasswordResetService 创建密码重置服务
func NewPasswordResetService(cfg *config.Config, adminRepo repository.AdminRepository, sender ResetCodeSender) *PasswordResetService {
	return &PasswordResetService{
		cfg:       cfg,
		adminRepo: adminRepo,
		sender:    sender,
		nowFunc:   time.Now,
	}
}

// IssueResetCode 签发重置验证码并通过邮件投递
// 未注册邮箱返回 ErrNotFound，由 handler 决定对外响应形态。
func (s *PasswordResetService) IssueResetCode(email string) error {
	if s.sender == nil {
		return ErrEmailServiceNotConfigured
	}
	normalized, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	admin, err := s.adminRepo.GetByEmail(normalized)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrNotFound
	}

	now := s.nowFunc()
	validity := s.codeValidity()

	// 最小发送间隔由已存储的过期时间反推签发时间，无需额外字段
	if admin.ResetToken != nil && admin.ResetTokenExpiry != nil {
		issuedAt := admin.ResetTokenExpiry.Add(-validity)
		interval := time.Duration(resolveSendIntervalSeconds(s.cfg.Email.ResetCode)) * time.Second
		if now.Sub(issuedAt) < interval {
			return ErrResetTooFrequent
		}
	}

	code, err := randomNumericCode(resolveCodeLength(s.cfg.Email.ResetCode))
	if err != nil {
		return err
	}

	// 先落盘再投递：投递失败时已存储的验证码保持有效，重试只需重新发信
	expiry := now.Add(validity)
	if err := s.adminRepo.SetResetToken(admin.ID, code, expiry); err != nil {
		return err
	}
	return s.sender.SendResetCode(normalized, code, validity)
}

// VerifyResetCode 校验重置验证码（校验成功不消耗验证码，失败计入尝试次数）
// 所有失败分支统一返回 ErrResetCodeInvalid，不区分原因。
func (s *PasswordResetService) VerifyResetCode(email, code string) error {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	admin, err := s.adminRepo.GetByEmail(normalized)
	if err != nil {
		return err
	}
	return s.checkResetCode(admin, code)
}

// CommitPasswordReset 校验验证码并落盘新密码
// 验证码在此处重新校验一遍，密码写入与验证码清除原子完成。
func (s *PasswordResetService) CommitPasswordReset(email, code, newPassword, confirmPassword string) error {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, newPassword); err != nil {
		return err
	}

	admin, err := s.adminRepo.GetByEmail(normalized)
	if err != nil {
		return err
	}
	if err := s.checkResetCode(admin, code); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.adminRepo.CommitPasswordReset(admin.ID, string(hashedPassword))
}

// SweepExpiredResetTokens 清理已过期的重置验证码
func (s *PasswordResetService) SweepExpiredResetTokens() (int64, error) {
	return s.adminRepo.ClearExpiredResetTokens(s.nowFunc())
}

// checkResetCode 校验一枚重置验证码
// 每枚验证码最多允许 maxAttempts 次失败校验，超过后即使提交正确验证码也拒绝，
// 对外仍然统一返回 ErrResetCodeInvalid。
func (s *PasswordResetService) checkResetCode(admin *models.Admin, code string) error {
	if admin == nil {
		return ErrResetCodeInvalid
	}
	if admin.ResetToken == nil || admin.ResetTokenExpiry == nil {
		return ErrResetCodeInvalid
	}
	if admin.ResetTokenExpiry.Before(s.nowFunc()) {
		return ErrResetCodeInvalid
	}

	maxAttempts := resolveMaxAttempts(s.cfg.Email.ResetCode)
	if maxAttempts > 0 && admin.ResetAttempts >= maxAttempts {
		return ErrResetCodeInvalid
	}

	stored := strings.TrimSpace(*admin.ResetToken)
	provided := strings.TrimSpace(code)
	if stored == "" || len(stored) != len(provided) ||
		subtle.ConstantTimeCompare([]byte(stored), []byte(provided)) != 1 {
		_ = s.adminRepo.IncrementResetAttempts(admin.ID)
		return ErrResetCodeInvalid
	}
	return nil
}

func (s *PasswordResetService) codeValidity() time.Duration {
	return time.Duration(resolveExpireMinutes(s.cfg.Email.ResetCode)) * time.Minute
}

func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return "", ErrInvalidEmail
	}
	return normalized, nil
}

// NormalizeEmail 统一邮箱格式
func NormalizeEmail(email string) (string, error) {
	return normalizeEmail(email)
}

func resolveExpireMinutes(cfg config.ResetCodeConfig) int {
	if cfg.ExpireMinutes <= 0 {
		return 15
	}
	return cfg.ExpireMinutes
}

func resolveSendIntervalSeconds(cfg config.ResetCodeConfig) int {
	if cfg.SendIntervalSeconds <= 0 {
		return 60
	}
	return cfg.SendIntervalSeconds
}

func resolveMaxAttempts(cfg config.ResetCodeConfig) int {
	if cfg.MaxAttempts <= 0 {
		return 5
	}
	return cfg.MaxAttempts
}

func resolveCodeLength(cfg config.ResetCodeConfig) int {
	if cfg.Length < 4 || cfg.Length > 10 {
		return 6
	}
	return cfg.Length
}

func randomNumericCode(length int) (string, error) {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String(), nil
}
