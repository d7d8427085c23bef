package service

import (
	"strings"
	"time"

	"github.com/folio-next/internal/models"
	"github.com/folio-next/internal/repository"
)

// ArtPieceService 美术作品业务服务
type ArtPieceService struct {
	repo repository.ArtPieceRepository
}

// NewArtPieceService 创建美术作品服务
func NewArtPieceService(repo repository.ArtPieceRepository) *ArtPieceService {
	return &ArtPieceService{repo: repo}
}

// ArtPieceInput 创建/更新美术作品输入
type ArtPieceInput struct {
	Title       string
	Description string
	Image       string
	Thumbnail   string
	Medium      string
	Year        int
	IsVisible   *bool
	SortOrder   int
}

// ListAdmin 获取后台美术作品列表
func (s *ArtPieceService) ListAdmin(year int, search string, page, pageSize int) ([]models.ArtPiece, int64, error) {
	filter := repository.ArtPieceListFilter{
		Page:     page,
		PageSize: pageSize,
		Year:     year,
		Search:   strings.TrimSpace(search),
	}
	return s.repo.List(filter)
}

// ListPublic 获取公开美术作品列表
func (s *ArtPieceService) ListPublic(year int, page, pageSize int) ([]models.ArtPiece, int64, error) {
	filter := repository.ArtPieceListFilter{
		Page:        page,
		PageSize:    pageSize,
		Year:        year,
		OnlyVisible: true,
	}
	return s.repo.List(filter)
}

// GetByID 根据 ID 获取美术作品
func (s *ArtPieceService) GetByID(id string) (*models.ArtPiece, error) {
	piece, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if piece == nil {
		return nil, ErrNotFound
	}
	return piece, nil
}

// Create 创建美术作品
func (s *ArtPieceService) Create(input ArtPieceInput) (*models.ArtPiece, error) {
	piece, err := buildArtPieceEntity(input, nil)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(piece); err != nil {
		return nil, err
	}
	return piece, nil
}

// Update 更新美术作品
func (s *ArtPieceService) Update(id string, input ArtPieceInput) (*models.ArtPiece, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	piece, err := buildArtPieceEntity(input, existing)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(piece); err != nil {
		return nil, err
	}
	return piece, nil
}

// Delete 删除美术作品
func (s *ArtPieceService) Delete(id string) error {
	piece, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if piece == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func buildArtPieceEntity(input ArtPieceInput, existing *models.ArtPiece) (*models.ArtPiece, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}
	image := strings.TrimSpace(input.Image)
	if image == "" {
		return nil, ErrInvalidInput
	}
	year := input.Year
	if year != 0 && (year < 1900 || year > time.Now().Year()+1) {
		return nil, ErrInvalidInput
	}

	piece := existing
	if piece == nil {
		piece = &models.ArtPiece{IsVisible: true}
	}
	piece.Title = title
	piece.Description = input.Description
	piece.Image = image
	piece.Thumbnail = strings.TrimSpace(input.Thumbnail)
	piece.Medium = strings.TrimSpace(input.Medium)
	piece.Year = year
	piece.SortOrder = input.SortOrder
	if input.IsVisible != nil {
		piece.IsVisible = *input.IsVisible
	}
	return piece, nil
}
