package models

import (
	"time"

	"gorm.io/gorm"
)

// Education 教育经历
type Education struct {
	ID          uint           `gorm:"primarykey" json:"id"`                           // 主键
	School      string         `gorm:"type:varchar(200);not null" json:"school"`       // 学校
	Degree      string         `gorm:"type:varchar(100)" json:"degree"`                // 学位
	Field       string         `gorm:"type:varchar(200)" json:"field"`                 // 专业方向
	StartDate   *time.Time     `gorm:"index" json:"start_date"`                        // 开始时间
	EndDate     *time.Time     `json:"end_date"`                                       // 结束时间（在读为空）
	Description string         `gorm:"type:text" json:"description"`                   // 补充说明
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`              // 排序
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                        // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                     // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                 // 软删除
}

// TableName 指定表名
func (Education) TableName() string {
	return "educations"
}
