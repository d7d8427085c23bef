package repository

import "time"

// ProjectListFilter 查询项目列表的过滤条件
type ProjectListFilter struct {
	Page          int
	PageSize      int
	Status        string
	Search        string
	OnlyPublished bool
	OnlyFeatured  bool
	OrderBy       string
}

// ArtPieceListFilter 查询美术作品列表的过滤条件
type ArtPieceListFilter struct {
	Page        int
	PageSize    int
	Year        int
	Search      string
	OnlyVisible bool
	OrderBy     string
}

// TechStackListFilter 查询技术栈列表的过滤条件
type TechStackListFilter struct {
	Page        int
	PageSize    int
	Category    string
	OnlyVisible bool
}

// ContactMessageListFilter 查询联系消息列表的过滤条件
type ContactMessageListFilter struct {
	Page        int
	PageSize    int
	Status      string
	Email       string
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// AdminLoginLogListFilter 查询管理员登录日志列表的过滤条件
type AdminLoginLogListFilter struct {
	Page        int
	PageSize    int
	AdminID     uint
	Status      string
	FailReason  string
	ClientIP    string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
