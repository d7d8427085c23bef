package repository

import (
	"errors"
	"strings"

	"github.com/folio-next/internal/constants"
	"github.com/folio-next/internal/models"

	"gorm.io/gorm"
)

// ContactMessageRepository 联系消息数据访问接口
type ContactMessageRepository interface {
	List(filter ContactMessageListFilter) ([]models.ContactMessage, int64, error)
	GetByID(id string) (*models.ContactMessage, error)
	Create(message *models.ContactMessage) error
	UpdateStatus(id uint, status string) error
	CountUnread() (int64, error)
	Delete(id string) error
}

// GormContactMessageRepository GORM 实现
type GormContactMessageRepository struct {
	db *gorm.DB
}

// NewContactMessageRepository 创建联系消息仓库
func NewContactMessageRepository(db *gorm.DB) *GormContactMessageRepository {
	return &GormContactMessageRepository{db: db}
}

// List 联系消息列表
func (r *GormContactMessageRepository) List(filter ContactMessageListFilter) ([]models.ContactMessage, int64, error) {
	var messages []models.ContactMessage
	query := r.db.Model(&models.ContactMessage{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR subject LIKE ? OR body LIKE ?", like, like, like)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("id desc").Find(&messages).Error; err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// GetByID 根据 ID 获取联系消息
func (r *GormContactMessageRepository) GetByID(id string) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := r.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

// Create 创建联系消息
func (r *GormContactMessageRepository) Create(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

// UpdateStatus 更新消息状态
func (r *GormContactMessageRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// CountUnread 统计未读消息数量
func (r *GormContactMessageRepository) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactMessage{}).
		Where("status = ?", constants.ContactMessageStatusUnread).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Delete 删除联系消息
func (r *GormContactMessageRepository) Delete(id string) error {
	return r.db.Delete(&models.ContactMessage{}, id).Error
}
