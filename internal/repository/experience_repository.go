package repository

import (
	"errors"

	"github.com/folio-next/internal/models"

	"gorm.io/gorm"
)

// ExperienceRepository 工作经历数据访问接口
type ExperienceRepository interface {
	List() ([]models.Experience, error)
	GetByID(id string) (*models.Experience, error)
	Create(entry *models.Experience) error
	Update(entry *models.Experience) error
	Delete(id string) error
}

// GormExperienceRepository GORM 实现
type GormExperienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository 创建工作经历仓库
func NewExperienceRepository(db *gorm.DB) *GormExperienceRepository {
	return &GormExperienceRepository{db: db}
}

// List 工作经历列表（按时间倒序）
func (r *GormExperienceRepository) List() ([]models.Experience, error) {
	entries := make([]models.Experience, 0)
	err := r.db.
		Order("sort_order DESC, start_date DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByID 根据 ID 获取工作经历
func (r *GormExperienceRepository) GetByID(id string) (*models.Experience, error) {
	var entry models.Experience
	if err := r.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Create 创建工作经历
func (r *GormExperienceRepository) Create(entry *models.Experience) error {
	return r.db.Create(entry).Error
}

// Update 更新工作经历
func (r *GormExperienceRepository) Update(entry *models.Experience) error {
	return r.db.Save(entry).Error
}

// Delete 删除工作经历
func (r *GormExperienceRepository) Delete(id string) error {
	return r.db.Delete(&models.Experience{}, id).Error
}
