package repository

import (
	"errors"

	"github.com/folio-next/internal/models"

	"gorm.io/gorm"
)

// EducationRepository 教育经历数据访问接口
type EducationRepository interface {
	List() ([]models.Education, error)
	GetByID(id string) (*models.Education, error)
	Create(entry *models.Education) error
	Update(entry *models.Education) error
	Delete(id string) error
}

// GormEducationRepository GORM 实现
type GormEducationRepository struct {
	db *gorm.DB
}

// NewEducationRepository 创建教育经历仓库
func NewEducationRepository(db *gorm.DB) *GormEducationRepository {
	return &GormEducationRepository{db: db}
}

// List 教育经历列表（按时间倒序）
func (r *GormEducationRepository) List() ([]models.Education, error) {
	entries := make([]models.Education, 0)
	err := r.db.
		Order("sort_order DESC, start_date DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByID 根据 ID 获取教育经历
func (r *GormEducationRepository) GetByID(id string) (*models.Education, error) {
	var entry models.Education
	if err := r.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Create 创建教育经历
func (r *GormEducationRepository) Create(entry *models.Education) error {
	return r.db.Create(entry).Error
}

// Update 更新教育经历
func (r *GormEducationRepository) Update(entry *models.Education) error {
	return r.db.Save(entry).Error
}

// Delete 删除教育经历
func (r *GormEducationRepository) Delete(id string) error {
	return r.db.Delete(&models.Education{}, id).Error
}
