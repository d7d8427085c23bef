package models

import (
	"time"

	"gorm.io/gorm"
)

// Project 作品集项目
type Project struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                       // 主键
	Title       string         `gorm:"type:varchar(200);not null;index" json:"title"`              // 项目标题
	Slug        string         `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug"`         // URL 标识
	Summary     string         `gorm:"type:varchar(500)" json:"summary"`                           // 简介
	Description string         `gorm:"type:text" json:"description"`                               // 详细描述
	CoverImage  string         `gorm:"type:varchar(500)" json:"cover_image"`                       // 封面图
	RepoURL     string         `gorm:"type:varchar(500)" json:"repo_url"`                          // 仓库地址
	DemoURL     string         `gorm:"type:varchar(500)" json:"demo_url"`                          // 演示地址
	TechTags    string         `gorm:"type:varchar(500)" json:"tech_tags"`                         // 技术标签（逗号分隔）
	Status      string         `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"` // 状态（draft/published/archived）
	Featured    bool           `gorm:"default:false;index" json:"featured"`                        // 是否置顶展示
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`                          // 排序
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                                 // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                             // 软删除
}

// TableName 指定表名
func (Project) TableName() string {
	return "projects"
}
