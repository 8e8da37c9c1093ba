package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"newsportal-backend/internal/domains/media/service"
	"newsportal-backend/internal/shared/response"
	"newsportal-backend/pkg/logger"
)

type MediaHandler struct {
	mediaService service.ServiceInterface
}

func NewMediaHandler(mediaService service.ServiceInterface) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// UploadImage handles POST /admin/media/images (multipart field "file")
func (h *MediaHandler) UploadImage(c *gin.Context) {
	data, filename, ok := readUpload(c)
	if !ok {
		return
	}

	result, err := h.mediaService.UploadImage(c.Request.Context(), filename, data)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, 201, result)
}

// UploadAudio handles POST /admin/media/audio (multipart field "file")
func (h *MediaHandler) UploadAudio(c *gin.Context) {
	data, filename, ok := readUpload(c)
	if !ok {
		return
	}

	contentType := c.GetHeader("Content-Type")

	result, err := h.mediaService.UploadAudio(c.Request.Context(), filename, data, contentType)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, 201, result)
}

// Delete handles DELETE /admin/media?key=...
func (h *MediaHandler) Delete(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		response.BadRequest(c, "key is required")
		return
	}

	if err := h.mediaService.Delete(c.Request.Context(), key); err != nil {
		logger.Error("failed to delete media", err)
		response.InternalServerError(c, "Failed to delete media")
		return
	}

	response.Success(c, 200, gin.H{"deleted": true})
}

func readUpload(c *gin.Context) ([]byte, string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return nil, "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "cannot open uploaded file")
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error("failed to read upload", err)
		response.InternalServerError(c, "Failed to read upload")
		return nil, "", false
	}

	return data, fileHeader.Filename, true
}
