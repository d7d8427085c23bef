package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/folio-next/internal/logger"
	"github.com/folio-next/internal/provider"
	"github.com/folio-next/internal/queue"
	"github.com/folio-next/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskContactNotifyEmail, c.handleContactNotifyEmail)
}

func (c *Consumer) handleContactNotifyEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_contact_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ContactNotifyEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_contact_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.MessageID == 0 {
		logger.Debugw("worker_contact_notify_skip_invalid_payload", "message_id", payload.MessageID)
		return nil
	}

	message, err := c.ContactMessageRepo.GetByID(formatUint(payload.MessageID))
	if err != nil {
		logger.Warnw("worker_contact_notify_fetch_failed", "message_id", payload.MessageID, "error", err)
		return err
	}
	if message == nil {
		logger.Debugw("worker_contact_notify_skip_not_found", "message_id", payload.MessageID)
		return nil
	}

	receiver := ""
	if c.Config != nil {
		receiver = strings.TrimSpace(c.Config.Site.ContactEmail)
	}
	if receiver == "" {
		logger.Debugw("worker_contact_notify_skip_empty_receiver", "message_id", message.ID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_contact_notify_skip_email_service_nil", "message_id", message.ID)
		return nil
	}

	input := service.ContactNotificationInput{
		Name:    message.Name,
		Email:   message.Email,
		Subject: message.Subject,
		Body:    message.Body,
	}
	if err := c.EmailService.SendContactNotification(receiver, input); err != nil {
		logger.Warnw("worker_contact_notify_send_failed",
			"message_id", message.ID,
			"receiver_email", receiver,
			"error", err,
		)
		return err
	}
	return nil
}
