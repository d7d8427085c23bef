package service

import (
	"regexp"
	"strings"

	"github.com/folio-next/internal/constants"
	"github.com/folio-next/internal/models"
	"github.com/folio-next/internal/repository"
)

// ProjectService 项目业务服务
type ProjectService struct {
	repo repository.ProjectRepository
}

// NewProjectService 创建项目服务
func NewProjectService(repo repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// ProjectInput 创建/更新项目输入
type ProjectInput struct {
	Title       string
	Slug        string
	Summary     string
	Description string
	CoverImage  string
	RepoURL     string
	DemoURL     string
	TechTags    []string
	Status      string
	Featured    *bool
	SortOrder   int
}

// ListAdmin 获取后台项目列表
func (s *ProjectService) ListAdmin(status, search string, page, pageSize int) ([]models.Project, int64, error) {
	filter := repository.ProjectListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(status),
		Search:   strings.TrimSpace(search),
	}
	return s.repo.List(filter)
}

// ListPublic 获取公开项目列表（仅已发布）
func (s *ProjectService) ListPublic(featuredOnly bool, page, pageSize int) ([]models.Project, int64, error) {
	filter := repository.ProjectListFilter{
		Page:          page,
		PageSize:      pageSize,
		OnlyPublished: true,
		OnlyFeatured:  featuredOnly,
	}
	return s.repo.List(filter)
}

// GetBySlug 根据 slug 获取已发布项目
func (s *ProjectService) GetBySlug(slug string) (*models.Project, error) {
	project, err := s.repo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if project == nil || project.Status != constants.ProjectStatusPublished {
		return nil, ErrNotFound
	}
	return project, nil
}

// GetByID 根据 ID 获取项目
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}
	return project, nil
}

// Create 创建项目
func (s *ProjectService) Create(input ProjectInput) (*models.Project, error) {
	project, err := s.buildProjectEntity(input, nil)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update 更新项目
func (s *ProjectService) Update(id string, input ProjectInput) (*models.Project, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	project, err := s.buildProjectEntity(input, existing)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete 删除项目
func (s *ProjectService) Delete(id string) error {
	project, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func (s *ProjectService) buildProjectEntity(input ProjectInput, existing *models.Project) (*models.Project, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}

	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	if slug == "" || !slugPattern.MatchString(slug) {
		return nil, ErrInvalidInput
	}
	conflict, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if conflict != nil && (existing == nil || conflict.ID != existing.ID) {
		return nil, ErrSlugExists
	}

	status := normalizeProjectStatus(input.Status)
	if status == "" {
		return nil, ErrInvalidInput
	}

	project := existing
	if project == nil {
		project = &models.Project{}
	}
	project.Title = title
	project.Slug = slug
	project.Summary = strings.TrimSpace(input.Summary)
	project.Description = input.Description
	project.CoverImage = strings.TrimSpace(input.CoverImage)
	project.RepoURL = strings.TrimSpace(input.RepoURL)
	project.DemoURL = strings.TrimSpace(input.DemoURL)
	project.TechTags = normalizeTechTags(input.TechTags)
	project.Status = status
	project.SortOrder = input.SortOrder
	if input.Featured != nil {
		project.Featured = *input.Featured
	}
	return project, nil
}

func normalizeProjectStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "", constants.ProjectStatusDraft:
		return constants.ProjectStatusDraft
	case constants.ProjectStatusPublished:
		return constants.ProjectStatusPublished
	case constants.ProjectStatusArchived:
		return constants.ProjectStatusArchived
	default:
		return ""
	}
}

func normalizeTechTags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return strings.Join(cleaned, ",")
}
