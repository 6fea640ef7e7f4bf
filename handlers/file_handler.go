package handlers

import (
	"io"
	"net/http"

	"luatvn-backend/models"
	"luatvn-backend/repository"
	"luatvn-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FileHandler handles upload and download of original source files
// (PDF/DOCX). Text extraction happens in the upstream pipeline; the
// extracted plain text arrives separately with the import request.
type FileHandler struct {
	fileRepo    *repository.FileRepository
	fileStorage storage.Storage
}

// NewFileHandler creates a new file handler.
func NewFileHandler(fileRepo *repository.FileRepository, fileStorage storage.Storage) *FileHandler {
	return &FileHandler{
		fileRepo:    fileRepo,
		fileStorage: fileStorage,
	}
}

// UploadFile handles POST /api/files/upload (multipart form with a
// "file" field and an optional "document_id").
func (h *FileHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "Missing file field",
			},
		})
		return
	}

	var documentID *uuid.UUID
	if v := c.PostForm("document_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_DOCUMENT_ID",
					"message": "Invalid document_id format",
				},
			})
			return
		}
		documentID = &id
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": err.Error(),
			},
		})
		return
	}
	defer src.Close()

	fileID := uuid.New()
	storagePath, err := h.fileStorage.Upload(c.Request.Context(), fileID, fileHeader.Filename, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	file := &models.SourceFile{
		ID:          fileID,
		DocumentID:  documentID,
		Filename:    fileHeader.Filename,
		MimeType:    fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		StoragePath: storagePath,
	}
	if err := h.fileRepo.Create(c.Request.Context(), file); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    file,
	})
}

// GetFile handles GET /api/files/:id, streaming the stored bytes.
func (h *FileHandler) GetFile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid file ID format",
			},
		})
		return
	}

	file, err := h.fileRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "File not found",
			},
		})
		return
	}

	reader, err := h.fileStorage.Download(c.Request.Context(), file.StoragePath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Stored file missing",
			},
		})
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Header("Content-Type", file.MimeType)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Response already started; nothing sensible to send.
		return
	}
}
