// internal/handlers/lead_capture_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/UmairIqbal92/car-dealer-fork/internal/config"
	"github.com/UmairIqbal92/car-dealer-fork/internal/models"
	"github.com/UmairIqbal92/car-dealer-fork/internal/services"
)

// Covers the public lead-capture surface: inquiries and credit applications
// (persisted), plus the email-only contact, car finder, and export query
// forms. SMTP is left unconfigured so sends are skipped.
type LeadCaptureTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *LeadCaptureTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:leadtest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(db.AutoMigrate(
		&models.Category{}, &models.Vehicle{},
		&models.Inquiry{}, &models.Application{},
	))
	db.Exec("DELETE FROM inquiries")
	db.Exec("DELETE FROM applications")
	db.Exec("DELETE FROM vehicles")
	suite.db = db

	cfg := &config.Config{}
	notificationService := services.NewNotificationService(cfg)
	vehicleService := services.NewVehicleService(db)
	inquiryService := services.NewInquiryService(db, vehicleService, notificationService)
	applicationService := services.NewApplicationService(db, vehicleService, notificationService)

	inquiryHandler := NewInquiryHandler(inquiryService)
	applicationHandler := NewApplicationHandler(applicationService)
	leadHandler := NewLeadHandler(notificationService)

	suite.router = gin.New()
	suite.router.POST("/api/inquiries", inquiryHandler.CreateInquiry)
	suite.router.POST("/api/applications", applicationHandler.CreateApplication)
	suite.router.POST("/api/contact", leadHandler.Contact)
	suite.router.POST("/api/car-finder", leadHandler.CarFinder)
	suite.router.POST("/api/export-query", leadHandler.ExportQuery)
}

func (suite *LeadCaptureTestSuite) post(path string, body map[string]interface{}) *httptest.ResponseRecorder {
	jsonData, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LeadCaptureTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func (suite *LeadCaptureTestSuite) TestCreateInquiry() {
	w := suite.post("/api/inquiries", map[string]interface{}{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@example.com",
		"phone":     "555-0100",
		"message":   "Is this still available?",
	})

	suite.Equal(http.StatusOK, w.Code)
	response := suite.decode(w)
	suite.True(response["success"].(bool))

	var inquiry models.Inquiry
	suite.Require().NoError(suite.db.First(&inquiry).Error)
	suite.Equal("Jane", inquiry.FirstName)
	suite.Equal(models.InquiryStatusNew, inquiry.Status)
	suite.Equal(models.InquiryTypeGeneral, inquiry.InquiryType)
	suite.Nil(inquiry.VehicleID)
}

func (suite *LeadCaptureTestSuite) TestCreateInquiryMissingFields() {
	w := suite.post("/api/inquiries", map[string]interface{}{
		"firstName": "Jane",
		"email":     "jane@example.com",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	response := suite.decode(w)
	suite.False(response["success"].(bool))
	suite.Equal("Missing required fields", response["error"])

	var count int64
	suite.db.Model(&models.Inquiry{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *LeadCaptureTestSuite) TestCreateInquiryWithVehicle() {
	vehicle := models.Vehicle{
		Name: "Toyota Camry SE", Make: "Toyota", Model: "Camry",
		Year: 2020, Price: 18500,
		Features: []string{}, Images: []string{},
		Status: models.VehicleStatusAvailable,
	}
	suite.Require().NoError(suite.db.Create(&vehicle).Error)

	// vehicleId arrives as a string from the form
	w := suite.post("/api/inquiries", map[string]interface{}{
		"firstName":   "John",
		"lastName":    "Smith",
		"email":       "john@example.com",
		"phone":       "555-0101",
		"vehicleId":   "1",
		"inquiryType": "vehicle",
	})

	suite.Equal(http.StatusOK, w.Code)

	var inquiry models.Inquiry
	suite.Require().NoError(suite.db.First(&inquiry).Error)
	suite.Require().NotNil(inquiry.VehicleID)
	suite.Equal(vehicle.ID, *inquiry.VehicleID)
	suite.Equal(models.InquiryTypeVehicle, inquiry.InquiryType)
}

func (suite *LeadCaptureTestSuite) TestCreateApplication() {
	w := suite.post("/api/applications", map[string]interface{}{
		"buyerData": map[string]interface{}{
			"firstName": "Jane",
			"lastName":  "Doe",
			"email":     "jane@example.com",
			"cellPhone": "555-0100",
		},
	})

	suite.Equal(http.StatusOK, w.Code)

	var application models.Application
	suite.Require().NoError(suite.db.First(&application).Error)
	suite.Equal(models.ApplicationStatusPending, application.Status)
	suite.Equal("Jane", application.BuyerData["firstName"])
	suite.Nil(application.CoBuyerData)
}

func (suite *LeadCaptureTestSuite) TestCreateApplicationWithCoBuyer() {
	w := suite.post("/api/applications", map[string]interface{}{
		"buyerData":   map[string]interface{}{"firstName": "Jane", "lastName": "Doe"},
		"coBuyerData": map[string]interface{}{"firstName": "John", "lastName": "Doe"},
	})

	suite.Equal(http.StatusOK, w.Code)

	var application models.Application
	suite.Require().NoError(suite.db.First(&application).Error)
	suite.Equal("John", application.CoBuyerData["firstName"])
}

func (suite *LeadCaptureTestSuite) TestCreateApplicationMissingBuyer() {
	w := suite.post("/api/applications", map[string]interface{}{
		"coBuyerData": map[string]interface{}{"firstName": "John"},
	})

	suite.Equal(http.StatusBadRequest, w.Code)

	var count int64
	suite.db.Model(&models.Application{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *LeadCaptureTestSuite) TestContactForm() {
	w := suite.post("/api/contact", map[string]interface{}{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"message": "Do you ship overseas?",
	})

	suite.Equal(http.StatusOK, w.Code)
	response := suite.decode(w)
	suite.True(response["success"].(bool))
}

func (suite *LeadCaptureTestSuite) TestContactFormMissingMessage() {
	w := suite.post("/api/contact", map[string]interface{}{
		"name":  "Jane Doe",
		"email": "jane@example.com",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LeadCaptureTestSuite) TestCarFinderMissingFields() {
	w := suite.post("/api/car-finder", map[string]interface{}{
		"firstName": "Jane",
		"make":      "Toyota",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LeadCaptureTestSuite) TestExportQuery() {
	w := suite.post("/api/export-query", map[string]interface{}{
		"brand": "Toyota",
		"model": "Land Cruiser",
		"miles": "45000",
		"email": "buyer@example.com",
		"phone": "555-0102",
	})

	suite.Equal(http.StatusOK, w.Code)

	w = suite.post("/api/export-query", map[string]interface{}{
		"brand": "Toyota",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestLeadCaptureSuite(t *testing.T) {
	suite.Run(t, new(LeadCaptureTestSuite))
}
