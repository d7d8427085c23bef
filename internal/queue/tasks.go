package queue

import (
	"encoding/json"

	"github.com/folio-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskContactNotifyEmail 联系消息通知邮件任务
	TaskContactNotifyEmail = constants.TaskContactNotifyEmail
)

// ContactNotifyEmailPayload 联系消息通知任务载荷
type ContactNotifyEmailPayload struct {
	MessageID uint `json:"message_id"`
}

// NewContactNotifyEmailTask 创建联系消息通知任务
func NewContactNotifyEmailTask(payload ContactNotifyEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskContactNotifyEmail, body), nil
}
