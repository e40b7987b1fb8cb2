// internal/handlers/lead.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/UmairIqbal92/car-dealer-fork/internal/services"
	"github.com/UmairIqbal92/car-dealer-fork/internal/utils"
)

// LeadHandler serves the email-only lead forms: general contact, car
// finder, and export query. Nothing is persisted for these.
type LeadHandler struct {
	notificationService *services.NotificationService
}

func NewLeadHandler(notificationService *services.NotificationService) *LeadHandler {
	return &LeadHandler{notificationService: notificationService}
}

// POST /api/contact
func (h *LeadHandler) Contact(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if missing := utils.MissingFields(map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"message": req.Message,
	}); len(missing) > 0 {
		utils.BadRequestResponse(c, "Missing required fields")
		return
	}

	if err := h.notificationService.SendContactEmail(services.ContactEmailData{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}); err != nil {
		utils.InternalErrorResponse(c, "Failed to send message")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Message sent successfully"})
}

// POST /api/car-finder
func (h *LeadHandler) CarFinder(c *gin.Context) {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Make      string `json:"make"`
		Model     string `json:"model"`
		YearMin   string `json:"yearMin"`
		YearMax   string `json:"yearMax"`
		PriceMin  string `json:"priceMin"`
		PriceMax  string `json:"priceMax"`
		Message   string `json:"message"`
	}
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

	if err := h.notificationService.SendCarFinderEmail(services.CarFinderEmailData{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Make:      req.Make,
		Model:     req.Model,
		YearMin:   req.YearMin,
		YearMax:   req.YearMax,
		PriceMin:  req.PriceMin,
		PriceMax:  req.PriceMax,
		Message:   req.Message,
	}); err != nil {
		utils.InternalErrorResponse(c, "Failed to submit request")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Request submitted successfully"})
}

// POST /api/export-query
func (h *LeadHandler) ExportQuery(c *gin.Context) {
	var req struct {
		Brand  string `json:"brand"`
		Model  string `json:"model"`
		Budget string `json:"budget"`
		Miles  string `json:"miles"`
		Email  string `json:"email"`
		Phone  string `json:"phone"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if missing := utils.MissingFields(map[string]string{
		"brand": req.Brand,
		"model": req.Model,
		"miles": req.Miles,
		"email": req.Email,
		"phone": req.Phone,
	}); len(missing) > 0 {
		utils.BadRequestResponse(c, "Missing required fields")
		return
	}

	if err := h.notificationService.SendExportQueryEmail(services.ExportQueryEmailData{
		Brand:  req.Brand,
		Model:  req.Model,
		Budget: req.Budget,
		Miles:  req.Miles,
		Email:  req.Email,
		Phone:  req.Phone,
		Notes:  req.Notes,
	}); err != nil {
		utils.InternalErrorResponse(c, "Failed to send query")
		return
	}

	utils.SuccessResponse(c, gin.H{})
}
