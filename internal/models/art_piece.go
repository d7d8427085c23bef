package models

import (
	"time"

	"gorm.io/gorm"
)

// ArtPiece 美术作品
type ArtPiece struct {
	ID          uint           `gorm:"primarykey" json:"id"`                          // 主键
	Title       string         `gorm:"type:varchar(200);not null;index" json:"title"` // 作品标题
	Description string         `gorm:"type:text" json:"description"`                  // 作品说明
	Image       string         `gorm:"type:varchar(500);not null" json:"image"`       // 作品图
	Thumbnail   string         `gorm:"type:varchar(500)" json:"thumbnail"`            // 缩略图
	Medium      string         `gorm:"type:varchar(100)" json:"medium"`               // 创作媒介
	Year        int            `gorm:"index" json:"year"`                             // 创作年份
	IsVisible   bool           `gorm:"default:true;index" json:"is_visible"`          // 是否展示
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`             // 排序
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                       // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                    // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                // 软删除
}

// TableName 指定表名
func (ArtPiece) TableName() string {
	return "art_pieces"
}
