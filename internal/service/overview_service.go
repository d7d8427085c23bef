package service

import (
	"github.com/folio-next/internal/repository"
)

// OverviewService 后台概览统计服务
type OverviewService struct {
	projectRepo repository.ProjectRepository
	artRepo     repository.ArtPieceRepository
	techRepo    repository.TechStackRepository
	contactRepo repository.ContactMessageRepository
}

// NewOverviewService 创建概览服务
func NewOverviewService(
	projectRepo repository.ProjectRepository,
	artRepo repository.ArtPieceRepository,
	techRepo repository.TechStackRepository,
	contactRepo repository.ContactMessageRepository,
) *OverviewService {
	return &OverviewService{
		projectRepo: projectRepo,
		artRepo:     artRepo,
		techRepo:    techRepo,
		contactRepo: contactRepo,
	}
}

// Overview 概览统计数据
type Overview struct {
	ProjectTotal   int64 `json:"project_total"`
	ArtPieceTotal  int64 `json:"art_piece_total"`
	TechStackTotal int64 `json:"tech_stack_total"`
	ContactTotal   int64 `json:"contact_total"`
	ContactUnread  int64 `json:"contact_unread"`
}

// Get 获取概览统计
func (s *OverviewService) Get() (*Overview, error) {
	_, projectTotal, err := s.projectRepo.List(repository.ProjectListFilter{PageSize: 1})
	if err != nil {
		return nil, err
	}
	_, artTotal, err := s.artRepo.List(repository.ArtPieceListFilter{PageSize: 1})
	if err != nil {
		return nil, err
	}
	_, techTotal, err := s.techRepo.List(repository.TechStackListFilter{PageSize: 1})
	if err != nil {
		return nil, err
	}
	_, contactTotal, err := s.contactRepo.List(repository.ContactMessageListFilter{PageSize: 1})
	if err != nil {
		return nil, err
	}
	unread, err := s.contactRepo.CountUnread()
	if err != nil {
		return nil, err
	}

	return &Overview{
		ProjectTotal:   projectTotal,
		ArtPieceTotal:  artTotal,
		TechStackTotal: techTotal,
		ContactTotal:   contactTotal,
		ContactUnread:  unread,
	}, nil
}
