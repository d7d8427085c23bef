package service

import (
	"strings"

	"github.com/folio-next/internal/constants"
	"github.com/folio-next/internal/logger"
	"github.com/folio-next/internal/models"
	"github.com/folio-next/internal/queue"
	"github.com/folio-next/internal/repository"
)

const maxContactBodyLength = 10000

// ContactService 联系消息业务服务
type ContactService struct {
	repo        repository.ContactMessageRepository
	queueClient *queue.Client
}

// NewContactService 创建联系消息服务
func NewContactService(repo repository.ContactMessageRepository, queueClient *queue.Client) *ContactService {
	return &ContactService{
		repo:        repo,
		queueClient: queueClient,
	}
}

// ContactInput 访客提交联系消息输入
type ContactInput struct {
	Name     string
	Email    string
	Subject  string
	Body     string
	ClientIP string
}

// Submit 提交联系消息
// 落库成功后异步推送站长通知，通知失败不影响提交结果。
func (s *ContactService) Submit(input ContactInput) (*models.ContactMessage, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	body := strings.TrimSpace(input.Body)
	if body == "" || len(body) > maxContactBodyLength {
		return nil, ErrInvalidInput
	}

	message := &models.ContactMessage{
		Name:     name,
		Email:    email,
		Subject:  strings.TrimSpace(input.Subject),
		Body:     body,
		Status:   constants.ContactMessageStatusUnread,
		ClientIP: strings.TrimSpace(input.ClientIP),
	}
	if err := s.repo.Create(message); err != nil {
		return nil, err
	}

	if err := s.queueClient.EnqueueContactNotifyEmail(queue.ContactNotifyEmailPayload{MessageID: message.ID}); err != nil {
		logger.Warnw("contact_notify_enqueue_failed", "message_id", message.ID, "error", err)
	}
	return message, nil
}

// ListAdmin 后台查询联系消息列表
func (s *ContactService) ListAdmin(status, search string, page, pageSize int) ([]models.ContactMessage, int64, error) {
	filter := repository.ContactMessageListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(status),
		Search:   strings.TrimSpace(search),
	}
	return s.repo.List(filter)
}

// GetByID 根据 ID 获取联系消息
func (s *ContactService) GetByID(id string) (*models.ContactMessage, error) {
	message, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrNotFound
	}
	return message, nil
}

// UpdateStatus 更新消息状态
func (s *ContactService) UpdateStatus(id string, status string) (*models.ContactMessage, error) {
	normalized := normalizeContactStatus(status)
	if normalized == "" {
		return nil, ErrInvalidInput
	}
	message, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(message.ID, normalized); err != nil {
		return nil, err
	}
	message.Status = normalized
	return message, nil
}

// CountUnread 统计未读消息数量
func (s *ContactService) CountUnread() (int64, error) {
	return s.repo.CountUnread()
}

// Delete 删除联系消息
func (s *ContactService) Delete(id string) error {
	message, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if message == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func normalizeContactStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case constants.ContactMessageStatusUnread:
		return constants.ContactMessageStatusUnread
	case constants.ContactMessageStatusRead:
		return constants.ContactMessageStatusRead
	case constants.ContactMessageStatusArchived:
		return constants.ContactMessageStatusArchived
	default:
		return ""
	}
}
