package repository

import (
	"errors"

	"github.com/folio-next/internal/models"

	"gorm.io/gorm"
)

// TechStackRepository 技术栈数据访问接口
type TechStackRepository interface {
	List(filter TechStackListFilter) ([]models.TechStackItem, int64, error)
	GetByID(id string) (*models.TechStackItem, error)
	Create(item *models.TechStackItem) error
	Update(item *models.TechStackItem) error
	Delete(id string) error
}

// GormTechStackRepository GORM 实现
type GormTechStackRepository struct {
	db *gorm.DB
}

// NewTechStackRepository 创建技术栈仓库
func NewTechStackRepository(db *gorm.DB) *GormTechStackRepository {
	return &GormTechStackRepository{db: db}
}

// List 技术栈列表
func (r *GormTechStackRepository) List(filter TechStackListFilter) ([]models.TechStackItem, int64, error) {
	var items []models.TechStackItem
	query := r.db.Model(&models.TechStackItem{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.OnlyVisible {
		query = query.Where("is_visible = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("category ASC, sort_order DESC, id ASC").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID 根据 ID 获取技术栈条目
func (r *GormTechStackRepository) GetByID(id string) (*models.TechStackItem, error) {
	var item models.TechStackItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create 创建技术栈条目
func (r *GormTechStackRepository) Create(item *models.TechStackItem) error {
	return r.db.Create(item).Error
}

// Update 更新技术栈条目
func (r *GormTechStackRepository) Update(item *models.TechStackItem) error {
	return r.db.Save(item).Error
}

// Delete 删除技术栈条目
func (r *GormTechStackRepository) Delete(id string) error {
	return r.db.Delete(&models.TechStackItem{}, id).Error
}
