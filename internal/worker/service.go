package worker

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/folio-next/internal/config"
	"github.com/folio-next/internal/logger"
	"github.com/folio-next/internal/queue"

	"github.com/hibiken/asynq"
)

const resetTokenSweepInterval = time.Minute

// Service 异步队列服务
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
}

// NewService 创建异步队列服务
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start 启动服务
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.PasswordResetService != nil {
		go s.runResetTokenSweepLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop 停止服务
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

// runResetTokenSweepLoop 周期清理过期的重置验证码
func (s *Service) runResetTokenSweepLoop(ctx context.Context) {
	if s == nil || s.consumer == nil || s.consumer.PasswordResetService == nil {
		return
	}
	runOnce := func() {
		cleared, err := s.consumer.PasswordResetService.SweepExpiredResetTokens()
		if err != nil {
			logger.Warnw("worker_reset_token_sweep_failed", "error", err)
			return
		}
		if cleared > 0 {
			logger.Infow("worker_reset_token_sweep_cleared", "count", cleared)
		}
	}
	runOnce()

	ticker := time.NewTicker(resetTokenSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}

func formatUint(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
