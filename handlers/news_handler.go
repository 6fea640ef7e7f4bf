package handlers

import (
	"net/http"
	"strconv"

	"luatvn-backend/repository"

	"github.com/gin-gonic/gin"
)

// NewsHandler handles HTTP requests for crawled legal news.
type NewsHandler struct {
	newsRepo *repository.NewsRepository
}

// NewNewsHandler creates a new news handler.
func NewNewsHandler(newsRepo *repository.NewsRepository) *NewsHandler {
	return &NewsHandler{newsRepo: newsRepo}
}

// ListNews handles GET /api/news.
func (h *NewsHandler) ListNews(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	articles, err := h.newsRepo.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LIST_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": articles})
}
