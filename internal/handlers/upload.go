// internal/handlers/upload.go
package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/UmairIqbal92/car-dealer-fork/internal/services"
	"github.com/UmairIqbal92/car-dealer-fork/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{storageService: storageService}
}

// POST /api/uploads/request-url
func (h *UploadHandler) RequestUploadURL(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Size        int64  `json:"size"`
		ContentType string `json:"contentType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		utils.BadRequestResponse(c, "Missing file name")
		return
	}

	ticket, err := h.storageService.RequestUploadURL(req.Name)
	if err != nil {
		if errors.Is(err, services.ErrStorageNotConfigured) {
			utils.InternalErrorResponse(c, "Storage not configured")
			return
		}
		utils.InternalErrorResponse(c, "Failed to generate upload URL")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"uploadURL":  ticket.UploadURL,
		"objectPath": ticket.ObjectPath,
	})
}

// GET /api/objects/*path
func (h *UploadHandler) GetObject(c *gin.Context) {
	objectPath := c.Param("path")

	obj, err := h.storageService.GetObject(objectPath)
	if err != nil {
		if errors.Is(err, services.ErrObjectNotFound) {
			utils.NotFoundResponse(c, "File not found")
			return
		}
		if errors.Is(err, services.ErrStorageNotConfigured) {
			utils.InternalErrorResponse(c, "Storage not configured")
			return
		}
		utils.InternalErrorResponse(c, "Failed to fetch file")
		return
	}
	defer obj.Body.Close()

	c.Header("Content-Type", obj.ContentType)
	c.Header("Cache-Control", "public, max-age=31536000")
	if obj.Size > 0 {
		c.Header("Content-Length", strconv.FormatInt(obj.Size, 10))
	}

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, obj.Body); err != nil {
		logrus.WithError(err).Warn("Object stream interrupted")
	}
}

// POST /api/upload is the local-disk fallback for small deployments.
func (h *UploadHandler) UploadLocal(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "No file provided")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to read file")
		return
	}
	defer file.Close()

	result, err := h.storageService.SaveLocal(file, fileHeader, c.PostForm("folder"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAnImage):
			utils.BadRequestResponse(c, "Only image files allowed")
		case errors.Is(err, services.ErrFileTooLarge):
			utils.BadRequestResponse(c, "File exceeds maximum allowed size")
		default:
			utils.InternalErrorResponse(c, "Failed to upload file")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"url":      result.URL,
		"fileName": result.FileName,
	})
}
