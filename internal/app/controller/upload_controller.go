package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/ikkim/bohoja-backend/internal/errors"
	"github.com/ikkim/bohoja-backend/internal/middleware"
	"github.com/ikkim/bohoja-backend/internal/storage"
)

// UploadPresigner issues pre-signed upload URLs
type UploadPresigner interface {
	PresignUpload(ctx context.Context, folder, filename, contentType string) (*storage.PresignedURLResponse, error)
}

type UploadController struct {
	storage UploadPresigner
}

func NewUploadController(storage UploadPresigner) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

type GeneratePresignedURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Folder      string `json:"folder" binding:"required"` // documents | prescriptions
}

// GeneratePresignedURL generates a presigned URL for uploading a document or prescription photo
// POST /api/v1/upload/presigned-url
func (ctrl *UploadController) GeneratePresignedURL(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req GeneratePresignedURLRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := ctrl.storage.PresignUpload(c.Request.Context(), req.Folder, req.Filename, req.ContentType)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidFolder):
			apperrors.BadRequest(c, apperrors.UploadInvalidFolder, "업로드할 수 없는 위치입니다")
		case errors.Is(err, storage.ErrInvalidContentType):
			apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "PDF 또는 이미지 파일만 업로드할 수 있습니다")
		default:
			log.Error("Failed to generate presigned URL", err, map[string]interface{}{
				"filename":     req.Filename,
				"content_type": req.ContentType,
				"folder":       req.Folder,
			})
			apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "업로드 URL 생성에 실패했습니다")
		}
		return
	}

	log.Info("Presigned URL generated successfully", map[string]interface{}{
		"folder": req.Folder,
		"key":    response.Key,
	})

	c.JSON(http.StatusOK, response)
}
