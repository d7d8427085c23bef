package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pagination 分页信息
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"page_size"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"total_page"`
}

// OK 成功响应，message 与附加字段平铺在同一层级
func OK(c *gin.Context, message string, fields gin.H) {
	c.JSON(http.StatusOK, buildBody(message, fields))
}

// Created 201 响应
func Created(c *gin.Context, message string, fields gin.H) {
	c.JSON(http.StatusCreated, buildBody(message, fields))
}

// OKWithPage 分页成功响应
func OKWithPage(c *gin.Context, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, gin.H{
		"message":    "success",
		"data":       data,
		"pagination": pagination,
	})
}

// Error 错误响应，使用真实 HTTP 状态码
func Error(c *gin.Context, status int, message string) {
	body := gin.H{"message": message}
	if requestID := requestIDFrom(c); requestID != "" {
		body["request_id"] = requestID
	}
	c.JSON(status, body)
}

// BadRequest 400 响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 响应
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound 404 响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// TooManyRequests 429 响应
func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, message)
}

// Internal 500 响应
func Internal(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// BuildPagination 计算分页信息
func BuildPagination(page, pageSize int, total int64) Pagination {
	totalPage := int64(0)
	if pageSize > 0 {
		totalPage = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	return Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	}
}

func buildBody(message string, fields gin.H) gin.H {
	body := gin.H{"message": message}
	for key, value := range fields {
		if key == "message" {
			continue
		}
		body[key] = value
	}
	return body
}

func requestIDFrom(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if value, ok := c.Get("request_id"); ok {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}
