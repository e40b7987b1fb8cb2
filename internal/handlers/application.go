// internal/handlers/application.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/UmairIqbal92/car-dealer-fork/internal/models"
	"github.com/UmairIqbal92/car-dealer-fork/internal/services"
	"github.com/UmairIqbal92/car-dealer-fork/internal/utils"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// POST /api/applications
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req services.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if len(req.BuyerData) == 0 {
		utils.BadRequestResponse(c, "Missing required fields")
		return
	}

	application, err := h.applicationService.Create(&req)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"application": application})
}

// GET /api/applications
func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	applications, err := h.applicationService.List()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"applications": applications})
}

// PUT /api/applications/:id/status
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		utils.BadRequestResponse(c, "Missing required fields")
		return
	}

	application, err := h.applicationService.UpdateStatus(id, models.ApplicationStatus(req.Status))
	if err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			utils.NotFoundResponse(c, "Application not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"application": application})
}
