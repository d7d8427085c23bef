package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactMessage 访客联系消息
type ContactMessage struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                           // 主键
	Name      string         `gorm:"type:varchar(100);not null" json:"name"`                         // 访客姓名
	Email     string         `gorm:"type:varchar(255);not null;index" json:"email"`                  // 访客邮箱
	Subject   string         `gorm:"type:varchar(200)" json:"subject"`                               // 主题
	Body      string         `gorm:"type:text;not null" json:"body"`                                 // 正文
	Status    string         `gorm:"type:varchar(20);not null;default:'unread';index" json:"status"` // 状态（unread/read/archived）
	ClientIP  string         `gorm:"type:varchar(64)" json:"client_ip"`                              // 来源IP
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                                        // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                                                     // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                                 // 软删除
}

// TableName 指定表名
func (ContactMessage) TableName() string {
	return "contact_messages"
}
