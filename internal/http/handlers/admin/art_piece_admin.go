package admin

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/folio-next/internal/http/handlers/shared"
	"github.com/folio-next/internal/http/response"
	"github.com/folio-next/internal/service"
)

// ArtPieceRequest 美术作品创建/更新请求
type ArtPieceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image" binding:"required"`
	Thumbnail   string `json:"thumbnail"`
	Medium      string `json:"medium"`
	Year        int    `json:"year"`
	IsVisible   *bool  `json:"is_visible"`
	SortOrder   int    `json:"sort_order"`
}

func (r ArtPieceRequest) toInput() service.ArtPieceInput {
	return service.ArtPieceInput{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Thumbnail:   r.Thumbnail,
		Medium:      r.Medium,
		Year:        r.Year,
		IsVisible:   r.IsVisible,
		SortOrder:   r.SortOrder,
	}
}

// ListArtPieces 后台美术作品列表
func (h *Handler) ListArtPieces(c *gin.Context) {
	page, pageSize := shared.NormalizePagination(c)
	year := 0
	if raw := c.Query("year"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			year = parsed
		}
	}

	pieces, total, err := h.ArtPieceService.ListAdmin(year, c.Query("search"), page, pageSize)
	if err != nil {
		shared.RespondError(c, err)
		return
	}

	response.OKWithPage(c, pieces, response.BuildPagination(page, pageSize, total))
}

// GetArtPiece 后台美术作品详情
func (h *Handler) GetArtPiece(c *gin.Context) {
	piece, err := h.ArtPieceService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Art piece not found")
			return
		}
		shared.RespondError(c, err)
		return
	}

	response.OK(c, "success", gin.H{"data": piece})
}

// CreateArtPiece 创建美术作品
func (h *Handler) CreateArtPiece(c *gin.Context) {
	var req ArtPieceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Title and image are required")
		return
	}

	piece, err := h.ArtPieceService.Create(req.toInput())
	if err != nil {
		shared.RespondError(c, err)
		return
	}

	response.Created(c, "Art piece created", gin.H{"data": piece})
}

// UpdateArtPiece 更新美术作品
func (h *Handler) UpdateArtPiece(c *gin.Context) {
	var req ArtPieceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Title and image are required")
		return
	}

	piece, err := h.ArtPieceService.Update(c.Param("id"), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Art piece not found")
			return
		}
		shared.RespondError(c, err)
		return
	}

	response.OK(c, "Art piece updated", gin.H{"data": piece})
}

// DeleteArtPiece 删除美术作品
func (h *Handler) DeleteArtPiece(c *gin.Context) {
	if err := h.ArtPieceService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Art piece not found")
			return
		}
		shared.RespondError(c, err)
		return
	}

	response.OK(c, "Art piece deleted", nil)
}
