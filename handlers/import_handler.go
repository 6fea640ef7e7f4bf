package handlers

import (
	"io"
	"net/http"

	"luatvn-backend/parser"
	"luatvn-backend/service"

	"github.com/gin-gonic/gin"
)

// ImportHandler handles document import requests.
type ImportHandler struct {
	importService *service.ImportService
}

// NewImportHandler creates a new import handler.
func NewImportHandler(importService *service.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// ImportTextRequest carries raw legal text plus the metadata record
// for every document field the text itself does not contain.
type ImportTextRequest struct {
	Text     string          `json:"text" binding:"required"`
	Metadata parser.Metadata `json:"metadata" binding:"required"`
}

// ImportText handles POST /api/import/text. A failed parse returns
// 422 with the complete errors and warnings lists so the reviewer
// sees every problem in one pass.
func (h *ImportHandler) ImportText(c *gin.Context) {
	var req ImportTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	result, err := h.importService.ImportText(c.Request.Context(), req.Text, req.Metadata)
	h.respond(c, result, err)
}

// ImportJSON handles POST /api/import/json. The body is the
// pre-structured document itself.
func (h *ImportHandler) ImportJSON(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	result, err := h.importService.ImportJSON(c.Request.Context(), string(body))
	h.respond(c, result, err)
}

func (h *ImportHandler) respond(c *gin.Context, result *service.ImportResult, err error) {
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "IMPORT_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	if !result.Parse.Success {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success":  false,
			"errors":   result.Parse.Errors,
			"warnings": result.Parse.Warnings,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"data":     result.Document,
		"warnings": result.Parse.Warnings,
	})
}
