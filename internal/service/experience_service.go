package service

import (
	"strings"
	"time"

	"github.com/folio-next/internal/models"
	"github.com/folio-next/internal/repository"
)

// ExperienceService 工作经历业务服务
type ExperienceService struct {
	repo repository.ExperienceRepository
}

// NewExperienceService 创建工作经历服务
func NewExperienceService(repo repository.ExperienceRepository) *ExperienceService {
	return &ExperienceService{repo: repo}
}

// ExperienceInput 创建/更新工作经历输入
type ExperienceInput struct {
	Company     string
	Role        string
	Location    string
	StartDate   *time.Time
	EndDate     *time.Time
	Description string
	SortOrder   int
}

// List 获取工作经历列表
func (s *ExperienceService) List() ([]models.Experience, error) {
	return s.repo.List()
}

// GetByID 根据 ID 获取工作经历
func (s *ExperienceService) GetByID(id string) (*models.Experience, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}
	return entry, nil
}

// Create 创建工作经历
func (s *ExperienceService) Create(input ExperienceInput) (*models.Experience, error) {
	entry, err := buildExperienceEntity(input, nil)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update 更新工作经历
func (s *ExperienceService) Update(id string, input ExperienceInput) (*models.Experience, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	entry, err := buildExperienceEntity(input, existing)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete 删除工作经历
func (s *ExperienceService) Delete(id string) error {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func buildExperienceEntity(input ExperienceInput, existing *models.Experience) (*models.Experience, error) {
	company := strings.TrimSpace(input.Company)
	role := strings.TrimSpace(input.Role)
	if company == "" || role == "" {
		return nil, ErrInvalidInput
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, ErrInvalidInput
	}

	entry := existing
	if entry == nil {
		entry = &models.Experience{}
	}
	entry.Company = company
	entry.Role = role
	entry.Location = strings.TrimSpace(input.Location)
	entry.StartDate = input.StartDate
	entry.EndDate = input.EndDate
	entry.Description = input.Description
	entry.SortOrder = input.SortOrder
	return entry, nil
}
