package service

import (
	"strings"
	"time"

	"github.com/folio-next/internal/models"
	"github.com/folio-next/internal/repository"
)

// EducationService 教育经历业务服务
type EducationService struct {
	repo repository.EducationRepository
}

// NewEducationService 创建教育经历服务
func NewEducationService(repo repository.EducationRepository) *EducationService {
	return &EducationService{repo: repo}
}

// EducationInput 创建/更新教育经历输入
type EducationInput struct {
	School      string
	Degree      string
	Field       string
	StartDate   *time.Time
	EndDate     *time.Time
	Description string
	SortOrder   int
}

// List 获取教育经历列表
func (s *EducationService) List() ([]models.Education, error) {
	return s.repo.List()
}

// GetByID 根据 ID 获取教育经历
func (s *EducationService) GetByID(id string) (*models.Education, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}
	return entry, nil
}

// Create 创建教育经历
func (s *EducationService) Create(input EducationInput) (*models.Education, error) {
	entry, err := buildEducationEntity(input, nil)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update 更新教育经历
func (s *EducationService) Update(id string, input EducationInput) (*models.Education, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	entry, err := buildEducationEntity(input, existing)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete 删除教育经历
func (s *EducationService) Delete(id string) error {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func buildEducationEntity(input EducationInput, existing *models.Education) (*models.Education, error) {
	school := strings.TrimSpace(input.School)
	if school == "" {
		return nil, ErrInvalidInput
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, ErrInvalidInput
	}

	entry := existing
	if entry == nil {
		entry = &models.Education{}
	}
	entry.School = school
	entry.Degree = strings.TrimSpace(input.Degree)
	entry.Field = strings.TrimSpace(input.Field)
	entry.StartDate = input.StartDate
	entry.EndDate = input.EndDate
	entry.Description = input.Description
	entry.SortOrder = input.SortOrder
	return entry, nil
}
