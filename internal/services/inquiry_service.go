// internal/services/inquiry_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/UmairIqbal92/car-dealer-fork/internal/models"
	"github.com/UmairIqbal92/car-dealer-fork/internal/utils"
)

type InquiryService struct {
	db                  *gorm.DB
	vehicleService      *VehicleService
	notificationService *NotificationService
}

var ErrInquiryNotFound = errors.New("inquiry not found")

type CreateInquiryRequest struct {
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Message     string        `json:"message"`
	VehicleID   utils.FlexInt `json:"vehicleId"`
	InquiryType string        `json:"inquiryType"`
}

// InquiryListItem carries the joined vehicle context shown on the admin
// inquiries screen.
type InquiryListItem struct {
	models.Inquiry
	VehicleName string `json:"vehicle_name,omitempty"`
	VehicleYear int    `json:"vehicle_year,omitempty"`
}

func NewInquiryService(db *gorm.DB, vehicleService *VehicleService, notificationService *NotificationService) *InquiryService {
	return &InquiryService{
		db:                  db,
		vehicleService:      vehicleService,
		notificationService: notificationService,
	}
}

// Create persists the inquiry, then forwards the notification email. The
// row is kept even when the send fails.
func (s *InquiryService) Create(req *CreateInquiryRequest) (*models.Inquiry, error) {
	inquiryType := models.InquiryType(req.InquiryType)
	if inquiryType == "" {
		inquiryType = models.InquiryTypeGeneral
	}

	var vehicleID *uint
	if req.VehicleID > 0 {
		id := uint(req.VehicleID)
		vehicleID = &id
	}

	inquiry := &models.Inquiry{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		VehicleID:   vehicleID,
		InquiryType: inquiryType,
		Status:      models.InquiryStatusNew,
	}

	if err := s.db.Create(inquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	var vehicleName string
	if vehicleID != nil {
		vehicleName = s.vehicleService.VehicleLabel(*vehicleID)
	}

	if err := s.notificationService.SendInquiryEmail(InquiryEmailData{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		VehicleName: vehicleName,
		InquiryType: string(inquiryType),
	}); err != nil {
		logrus.WithError(err).Warn("Inquiry saved but notification email failed")
	}

	return inquiry, nil
}

func (s *InquiryService) List() ([]InquiryListItem, error) {
	var items []InquiryListItem
	err := s.db.Model(&models.Inquiry{}).
		Select("inquiries.*, vehicles.name AS vehicle_name, vehicles.year AS vehicle_year").
		Joins("LEFT JOIN vehicles ON inquiries.vehicle_id = vehicles.id").
		Order("inquiries.created_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return items, nil
}

func (s *InquiryService) UpdateStatus(id uint, status models.InquiryStatus) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := s.db.First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&inquiry).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update inquiry: %w", err)
	}

	return &inquiry, nil
}
