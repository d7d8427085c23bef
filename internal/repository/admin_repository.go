package repository

import (
	"errors"
	"time"

	"github.com/folio-next/internal/models"

	"gorm.io/gorm"
)

// AdminRepository 管理员数据访问接口
type AdminRepository interface {
	GetPrimary() (*models.Admin, error)
	GetByUsername(username string) (*models.Admin, error)
	GetByEmail(email string) (*models.Admin, error)
	GetByID(id uint) (*models.Admin, error)
	Count() (int64, error)
	Create(admin *models.Admin) error
	UpdateLastLogin(id uint, at time.Time) error
	UpdatePassword(id uint, passwordHash string) error
	SetResetToken(id uint, code string, expiry time.Time) error
	IncrementResetAttempts(id uint) error
	CommitPasswordReset(id uint, passwordHash string) error
	ClearExpiredResetTokens(now time.Time) (int64, error)
}

// GormAdminRepository GORM 实现
type GormAdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository 创建管理员仓库
func NewAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

// GetPrimary 获取站点唯一管理员
func (r *GormAdminRepository) GetPrimary() (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Order("id ASC").First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// GetByUsername 根据用户名获取管理员
func (r *GormAdminRepository) GetByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// GetByEmail 根据邮箱获取管理员
func (r *GormAdminRepository) GetByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// GetByID 根据 ID 获取管理员
func (r *GormAdminRepository) GetByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// Count 统计管理员数量
func (r *GormAdminRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create 创建管理员
func (r *GormAdminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

// UpdateLastLogin 更新最后登录时间
func (r *GormAdminRepository) UpdateLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.Admin{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}

// UpdatePassword 更新密码哈希
func (r *GormAdminRepository) UpdatePassword(id uint, passwordHash string) error {
	return r.db.Model(&models.Admin{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

// SetResetToken 写入重置验证码及过期时间
// 重新签发会整体覆盖旧验证码并清零失败计数，保证同一时刻只有最新一枚有效。
func (r *GormAdminRepository) SetResetToken(id uint, code string, expiry time.Time) error {
	return r.db.Model(&models.Admin{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"reset_token":        code,
			"reset_token_expiry": expiry,
			"reset_attempts":     0,
		}).Error
}

// IncrementResetAttempts 增加重置验证码的校验失败次数
func (r *GormAdminRepository) IncrementResetAttempts(id uint) error {
	return r.db.Model(&models.Admin{}).
		Where("id = ?", id).
		UpdateColumn("reset_attempts", gorm.Expr("reset_attempts + 1")).Error
}

// CommitPasswordReset 落盘新密码并清空重置验证码
// 密码写入与验证码清除在同一条 UPDATE 中完成，不存在中间态。
func (r *GormAdminRepository) CommitPasswordReset(id uint, passwordHash string) error {
	return r.db.Model(&models.Admin{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password_hash":      passwordHash,
			"reset_token":        nil,
			"reset_token_expiry": nil,
			"reset_attempts":     0,
		}).Error
}

// ClearExpiredResetTokens 清理已过期的重置验证码
func (r *GormAdminRepository) ClearExpiredResetTokens(now time.Time) (int64, error) {
	result := r.db.Model(&models.Admin{}).
		Where("reset_token IS NOT NULL AND reset_token_expiry < ?", now).
		Updates(map[string]interface{}{
			"reset_token":        nil,
			"reset_token_expiry": nil,
			"reset_attempts":     0,
		})
	return result.RowsAffected, result.Error
}
