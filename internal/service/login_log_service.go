package service

import (
	"strings"
	"time"

	"github.com/folio-next/internal/constants"
	"github.com/folio-next/internal/models"
	"github.com/folio-next/internal/repository"
)

// LoginLogService 管理员登录日志服务
type LoginLogService struct {
	repo repository.AdminLoginLogRepository
}

// NewLoginLogService 创建登录日志服务
func NewLoginLogService(repo repository.AdminLoginLogRepository) *LoginLogService {
	return &LoginLogService{repo: repo}
}

// RecordLoginInput 登录日志记录输入
type RecordLoginInput struct {
	AdminID    uint
	Status     string
	FailReason string
	ClientIP   string
	UserAgent  string
	RequestID  string
}

// Record 记录登录行为
func (s *LoginLogService) Record(input RecordLoginInput) error {
	if s == nil || s.repo == nil {
		return nil
	}

	status := strings.ToLower(strings.TrimSpace(input.Status))
	if status != constants.LoginLogStatusSuccess {
		status = constants.LoginLogStatusFailed
	}

	failReason := strings.ToLower(strings.TrimSpace(input.FailReason))
	if status == constants.LoginLogStatusSuccess {
		failReason = ""
	} else if failReason == "" {
		failReason = constants.LoginLogFailReasonInternalError
	}

	return s.repo.Create(&models.AdminLoginLog{
		AdminID:    input.AdminID,
		Status:     status,
		FailReason: failReason,
		ClientIP:   strings.TrimSpace(input.ClientIP),
		UserAgent:  strings.TrimSpace(input.UserAgent),
		RequestID:  strings.TrimSpace(input.RequestID),
		CreatedAt:  time.Now(),
	})
}

// List 管理端查询登录日志
func (s *LoginLogService) List(filter repository.AdminLoginLogListFilter) ([]models.AdminLoginLog, int64, error) {
	if s == nil || s.repo == nil {
		return []models.AdminLoginLog{}, 0, nil
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}
	return s.repo.List(filter)
}
