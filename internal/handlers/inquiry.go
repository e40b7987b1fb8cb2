// internal/handlers/inquiry.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/UmairIqbal92/car-dealer-fork/internal/models"
	"github.com/UmairIqbal92/car-dealer-fork/internal/services"
	"github.com/UmairIqbal92/car-dealer-fork/internal/utils"
)

type InquiryHandler struct {
	inquiryService *services.InquiryService
}

func NewInquiryHandler(inquiryService *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// POST /api/inquiries
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var req services.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if missing := utils.MissingFields(map[string]string{
		"firstName": req.FirstName,
		"lastName":  req.LastName,
		"email":     req.Email,
		"phone":     req.Phone,
	}); len(missing) > 0 {
		utils.BadRequestResponse(c, "Missing required fields")
		return
	}

	inquiry, err := h.inquiryService.Create(&req)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"inquiry": inquiry})
}

// GET /api/inquiries
func (h *InquiryHandler) GetInquiries(c *gin.Context) {
	inquiries, err := h.inquiryService.List()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"inquiries": inquiries})
}

// PUT /api/inquiries/:id/status
func (h *InquiryHandler) UpdateInquiryStatus(c *gin.Context) {
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

	inquiry, err := h.inquiryService.UpdateStatus(id, models.InquiryStatus(req.Status))
	if err != nil {
		if errors.Is(err, services.ErrInquiryNotFound) {
			utils.NotFoundResponse(c, "Inquiry not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"inquiry": inquiry})
}
