package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"luatvn-backend/service"
	"luatvn-backend/slug"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles HTTP requests for documents and citation
// URLs.
type DocumentHandler struct {
	documentService *service.DocumentService
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// splitCitationPath turns a gin wildcard value ("/bo-luat-lao-dong/2019/dieu-35")
// into path segments.
func splitCitationPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// ResolveSourceCitation handles GET /luat/*citation. A malformed
// citation is a routing miss, never a server error.
func (h *DocumentHandler) ResolveSourceCitation(c *gin.Context) {
	parsed := slug.ParseSource(splitCitationPath(c.Param("citation")))
	if parsed == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Not a valid citation URL",
			},
		})
		return
	}
	h.resolve(c, parsed)
}

// ResolveReadingURL handles GET /doc/*path — the article-granularity
// reading dialect.
func (h *DocumentHandler) ResolveReadingURL(c *gin.Context) {
	parsed := slug.ParseReading(splitCitationPath(c.Param("path")))
	if parsed == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Not a valid reading URL",
			},
		})
		return
	}
	h.resolve(c, parsed)
}

func (h *DocumentHandler) resolve(c *gin.Context, parsed *slug.Parsed) {
	citation, err := h.documentService.Resolve(c.Request.Context(), parsed)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Document not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    citation,
	})
}

// ListDocuments handles GET /api/documents.
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	var docType, status *string
	if v := c.Query("type"); v != "" {
		docType = &v
	}
	if v := c.Query("status"); v != "" {
		status = &v
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if q := c.Query("q"); q != "" {
		docs, err := h.documentService.SearchDocuments(c.Request.Context(), q, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "SEARCH_FAILED",
					"message": err.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": docs})
		return
	}

	docs, err := h.documentService.ListDocuments(c.Request.Context(), docType, status, limit, offset)
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

	c.JSON(http.StatusOK, gin.H{"success": true, "data": docs})
}

// GetDocument handles GET /api/documents/:id, returning the full tree.
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid document ID format",
			},
		})
		return
	}

	doc, err := h.documentService.GetDocument(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Document not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": doc})
}

// ListRelations handles GET /api/documents/:id/relations.
func (h *DocumentHandler) ListRelations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid document ID format",
			},
		})
		return
	}

	relations, err := h.documentService.ListRelations(c.Request.Context(), id)
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

	c.JSON(http.StatusOK, gin.H{"success": true, "data": relations})
}
