package models

import (
	"time"

	"gorm.io/gorm"
)

// Experience 工作经历
type Experience struct {
	ID          uint           `gorm:"primarykey" json:"id"`                      // 主键
	Company     string         `gorm:"type:varchar(200);not null" json:"company"` // 公司
	Role        string         `gorm:"type:varchar(200);not null" json:"role"`    // 职位
	Location    string         `gorm:"type:varchar(200)" json:"location"`         // 地点
	StartDate   *time.Time     `gorm:"index" json:"start_date"`                   // 开始时间
	EndDate     *time.Time     `json:"end_date"`                                  // 结束时间（在职为空）
	Description string         `gorm:"type:text" json:"description"`              // 工作内容
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`         // 排序
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                   // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                            // 软删除
}

// TableName 指定表名
func (Experience) TableName() string {
	return "experiences"
}
