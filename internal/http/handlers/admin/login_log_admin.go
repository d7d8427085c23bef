package admin

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/folio-next/internal/http/handlers/shared"
	"github.com/folio-next/internal/http/response"
	"github.com/folio-next/internal/repository"
)

// ListLoginLogs 登录日志列表
func (h *Handler) ListLoginLogs(c *gin.Context) {
	page, pageSize := shared.NormalizePagination(c)

	filter := repository.AdminLoginLogListFilter{
		Page:       page,
		PageSize:   pageSize,
		Status:     c.Query("status"),
		FailReason: c.Query("fail_reason"),
		ClientIP:   c.Query("client_ip"),
	}
	if from, ok := parseQueryTime(c.Query("created_from")); ok {
		filter.CreatedFrom = from
	}
	if to, ok := parseQueryTime(c.Query("created_to")); ok {
		filter.CreatedTo = to
	}

	logs, total, err := h.LoginLogService.List(filter)
	if err != nil {
		shared.RespondError(c, err)
		return
	}

	response.OKWithPage(c, logs, response.BuildPagination(page, pageSize, total))
}

func parseQueryTime(raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, false
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return &parsed, true
	}
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return &parsed, true
	}
	return nil, false
}
