package repository

import (
	"errors"
	"strings"

	"github.com/folio-next/internal/models"

	"gorm.io/gorm"
)

// ArtPieceRepository 美术作品数据访问接口
type ArtPieceRepository interface {
	List(filter ArtPieceListFilter) ([]models.ArtPiece, int64, error)
	GetByID(id string) (*models.ArtPiece, error)
	Create(piece *models.ArtPiece) error
	Update(piece *models.ArtPiece) error
	Delete(id string) error
}

// GormArtPieceRepository GORM 实现
type GormArtPieceRepository struct {
	db *gorm.DB
}

// NewArtPieceRepository 创建美术作品仓库
func NewArtPieceRepository(db *gorm.DB) *GormArtPieceRepository {
	return &GormArtPieceRepository{db: db}
}

// List 美术作品列表
func (r *GormArtPieceRepository) List(filter ArtPieceListFilter) ([]models.ArtPiece, int64, error) {
	var pieces []models.ArtPiece
	query := r.db.Model(&models.ArtPiece{})

	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}
	if filter.OnlyVisible {
		query = query.Where("is_visible = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR medium LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = applyPagination(query, filter.Page, filter.PageSize)

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "sort_order DESC, year DESC, created_at DESC"
	}

	if err := query.Order(orderBy).Find(&pieces).Error; err != nil {
		return nil, 0, err
	}
	return pieces, total, nil
}

// GetByID 根据 ID 获取美术作品
func (r *GormArtPieceRepository) GetByID(id string) (*models.ArtPiece, error) {
	var piece models.ArtPiece
	if err := r.db.First(&piece, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &piece, nil
}

// Create 创建美术作品
func (r *GormArtPieceRepository) Create(piece *models.ArtPiece) error {
	return r.db.Create(piece).Error
}

// Update 更新美术作品
func (r *GormArtPieceRepository) Update(piece *models.ArtPiece) error {
	return r.db.Save(piece).Error
}

// Delete 删除美术作品
func (r *GormArtPieceRepository) Delete(id string) error {
	return r.db.Delete(&models.ArtPiece{}, id).Error
}
