package models

import (
	"time"

	"gorm.io/gorm"
)

// TechStackItem 技术栈条目
type TechStackItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                             // 主键
	Name      string         `gorm:"type:varchar(100);not null;index" json:"name"`                     // 技术名称
	Category  string         `gorm:"type:varchar(50);not null;default:'other';index" json:"category"` // 分类（language/framework/tool/database/other）
	Icon      string         `gorm:"type:varchar(500)" json:"icon"`                                    // 图标地址
	Level     int            `gorm:"default:0" json:"level"`                                           // 熟练度（0-100）
	IsVisible bool           `gorm:"default:true;index" json:"is_visible"`                             // 是否展示
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`                                // 排序
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                                          // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                                                       // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                                   // 软删除
}

// TableName 指定表名
func (TechStackItem) TableName() string {
	return "tech_stack_items"
}
