package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin 管理员表
// 说明：站点为单管理员模式，重置验证码直接落在管理员行上。
type Admin struct {
	ID               uint           `gorm:"primarykey" json:"id"`                 // 主键
	Username         string         `gorm:"uniqueIndex;not null" json:"username"` // 管理员账号
	Email            string         `gorm:"uniqueIndex;not null" json:"email"`    // 找回密码邮箱
	PasswordHash     string         `gorm:"not null" json:"-"`                    // 密码哈希（不返回给前端）
	ResetToken       *string        `gorm:"type:varchar(16)" json:"-"`            // 当前有效的重置验证码
	ResetTokenExpiry *time.Time     `gorm:"index" json:"-"`                       // 重置验证码过期时间
	ResetAttempts    int            `gorm:"not null;default:0" json:"-"`          // 当前验证码的校验失败次数
	LastLoginAt      *time.Time     `json:"last_login_at"`                        // 最后登录时间
	IsActive         bool           `gorm:"not null;default:true" json:"-"`       // 是否启用
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`              // 创建时间
	UpdatedAt        time.Time      `json:"updated_at"`                           // 更新时间
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`                       // 软删除时间
}

// TableName 指定表名
func (Admin) TableName() string {
	return "admins"
}
