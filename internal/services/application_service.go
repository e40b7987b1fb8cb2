// internal/services/application_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/UmairIqbal92/car-dealer-fork/internal/models"
	"github.com/UmairIqbal92/car-dealer-fork/internal/utils"
)

type ApplicationService struct {
	db                  *gorm.DB
	vehicleService      *VehicleService
	notificationService *NotificationService
}

var ErrApplicationNotFound = errors.New("application not found")

type CreateApplicationRequest struct {
	BuyerData   models.JSONB  `json:"buyerData"`
	CoBuyerData models.JSONB  `json:"coBuyerData"`
	VehicleID   utils.FlexInt `json:"vehicleId"`
}

type ApplicationListItem struct {
	models.Application
	VehicleName string `json:"vehicle_name,omitempty"`
	VehicleYear int    `json:"vehicle_year,omitempty"`
}

func NewApplicationService(db *gorm.DB, vehicleService *VehicleService, notificationService *NotificationService) *ApplicationService {
	return &ApplicationService{
		db:                  db,
		vehicleService:      vehicleService,
		notificationService: notificationService,
	}
}

// Create persists the application (co-buyer data stays NULL when absent),
// then sends exactly one notification email. Rows are never rolled back on
// email failure.
func (s *ApplicationService) Create(req *CreateApplicationRequest) (*models.Application, error) {
	var vehicleID *uint
	if req.VehicleID > 0 {
		id := uint(req.VehicleID)
		vehicleID = &id
	}

	application := &models.Application{
		BuyerData:   req.BuyerData,
		CoBuyerData: req.CoBuyerData,
		VehicleID:   vehicleID,
		Status:      models.ApplicationStatusPending,
	}

	if err := s.db.Create(application).Error; err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	var vehicleInfo string
	if vehicleID != nil {
		vehicleInfo = s.vehicleService.VehicleLabel(*vehicleID)
	}

	if err := s.notificationService.SendApplicationEmail(s.emailData(req, vehicleInfo)); err != nil {
		logrus.WithError(err).Warn("Application saved but notification email failed")
	}

	return application, nil
}

func (s *ApplicationService) List() ([]ApplicationListItem, error) {
	var items []ApplicationListItem
	err := s.db.Model(&models.Application{}).
		Select("applications.*, vehicles.name AS vehicle_name, vehicles.year AS vehicle_year").
		Joins("LEFT JOIN vehicles ON applications.vehicle_id = vehicles.id").
		Order("applications.created_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return items, nil
}

func (s *ApplicationService) UpdateStatus(id uint, status models.ApplicationStatus) (*models.Application, error) {
	var application models.Application
	if err := s.db.First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&application).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	return &application, nil
}

func (s *ApplicationService) emailData(req *CreateApplicationRequest, vehicleInfo string) ApplicationEmailData {
	buyer := req.BuyerData
	data := ApplicationEmailData{
		BuyerName:   strings.TrimSpace(jsonString(buyer, "firstName") + " " + jsonString(buyer, "lastName")),
		BuyerEmail:  jsonString(buyer, "email"),
		BuyerPhone:  jsonString(buyer, "cellPhone"),
		VehicleInfo: vehicleInfo,
	}

	address := []string{jsonString(buyer, "streetAddress"), jsonString(buyer, "city"), jsonString(buyer, "state")}
	data.BuyerAddress = strings.TrimSuffix(strings.Join(address, ", "), ", ")
	if zip := jsonString(buyer, "zipCode"); zip != "" {
		data.BuyerAddress += " " + zip
	}

	if req.CoBuyerData != nil {
		data.HasCoBuyer = true
		data.CoBuyerName = strings.TrimSpace(jsonString(req.CoBuyerData, "firstName") + " " + jsonString(req.CoBuyerData, "lastName"))
		data.CoBuyerEmail = jsonString(req.CoBuyerData, "email")
	}

	return data
}

func jsonString(doc models.JSONB, key string) string {
	if doc == nil {
		return ""
	}
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}
