package service

import (
	"strings"

	"github.com/folio-next/internal/constants"
	"github.com/folio-next/internal/models"
	"github.com/folio-next/internal/repository"
)

// TechStackService 技术栈业务服务
type TechStackService struct {
	repo repository.TechStackRepository
}

// NewTechStackService 创建技术栈服务
func NewTechStackService(repo repository.TechStackRepository) *TechStackService {
	return &TechStackService{repo: repo}
}

// TechStackInput 创建/更新技术栈条目输入
type TechStackInput struct {
	Name      string
	Category  string
	Icon      string
	Level     int
	IsVisible *bool
	SortOrder int
}

// ListAdmin 获取后台技术栈列表
func (s *TechStackService) ListAdmin(category string, page, pageSize int) ([]models.TechStackItem, int64, error) {
	filter := repository.TechStackListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: strings.TrimSpace(category),
	}
	return s.repo.List(filter)
}

// ListPublic 获取公开技术栈列表
func (s *TechStackService) ListPublic(category string) ([]models.TechStackItem, error) {
	filter := repository.TechStackListFilter{
		Category:    strings.TrimSpace(category),
		OnlyVisible: true,
	}
	items, _, err := s.repo.List(filter)
	return items, err
}

// GetByID 根据 ID 获取技术栈条目
func (s *TechStackService) GetByID(id string) (*models.TechStackItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// Create 创建技术栈条目
func (s *TechStackService) Create(input TechStackInput) (*models.TechStackItem, error) {
	item, err := buildTechStackEntity(input, nil)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update 更新技术栈条目
func (s *TechStackService) Update(id string, input TechStackInput) (*models.TechStackItem, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	item, err := buildTechStackEntity(input, existing)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete 删除技术栈条目
func (s *TechStackService) Delete(id string) error {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func buildTechStackEntity(input TechStackInput, existing *models.TechStackItem) (*models.TechStackItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	category := normalizeTechCategory(input.Category)
	if category == "" {
		return nil, ErrInvalidInput
	}
	level := input.Level
	if level < 0 || level > 100 {
		return nil, ErrInvalidInput
	}

	item := existing
	if item == nil {
		item = &models.TechStackItem{IsVisible: true}
	}
	item.Name = name
	item.Category = category
	item.Icon = strings.TrimSpace(input.Icon)
	item.Level = level
	item.SortOrder = input.SortOrder
	if input.IsVisible != nil {
		item.IsVisible = *input.IsVisible
	}
	return item, nil
}

func normalizeTechCategory(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "", constants.TechCategoryOther:
		return constants.TechCategoryOther
	case constants.TechCategoryLanguage:
		return constants.TechCategoryLanguage
	case constants.TechCategoryFramework:
		return constants.TechCategoryFramework
	case constants.TechCategoryTool:
		return constants.TechCategoryTool
	case constants.TechCategoryDatabase:
		return constants.TechCategoryDatabase
	default:
		return ""
	}
}
