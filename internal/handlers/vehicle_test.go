// internal/handlers/vehicle_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/UmairIqbal92/car-dealer-fork/internal/models"
	"github.com/UmairIqbal92/car-dealer-fork/internal/services"
)

type VehicleHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *VehicleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:vehiclehandlertest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(db.AutoMigrate(&models.Category{}, &models.Vehicle{}))
	db.Exec("DELETE FROM vehicles")
	db.Exec("DELETE FROM categories")
	suite.db = db

	vehicleHandler := NewVehicleHandler(services.NewVehicleService(db))

	suite.router = gin.New()
	suite.router.GET("/api/vehicles", vehicleHandler.GetVehicles)
	suite.router.GET("/api/vehicles/:id", vehicleHandler.GetVehicle)
	suite.router.POST("/api/vehicles", vehicleHandler.CreateVehicle)
	suite.router.DELETE("/api/vehicles/:id", vehicleHandler.DeleteVehicle)
}

func (suite *VehicleHandlerTestSuite) seedFleet() {
	vehicles := []models.Vehicle{
		{Name: "Toyota Camry SE", Make: "Toyota", Model: "Camry", Year: 2020, Price: 18500,
			BodyType: "Sedan", Features: []string{}, Images: []string{}, Status: models.VehicleStatusAvailable},
		{Name: "Toyota Tundra SR5", Make: "Toyota", Model: "Tundra", Year: 2022, Price: 42000,
			BodyType: "Truck", Features: []string{}, Images: []string{}, Status: models.VehicleStatusAvailable},
		{Name: "Ford F-150 XLT", Make: "Ford", Model: "F-150", Year: 2021, Price: 35000,
			BodyType: "Truck", Features: []string{}, Images: []string{}, Status: models.VehicleStatusSold},
	}
	for i := range vehicles {
		suite.Require().NoError(suite.db.Create(&vehicles[i]).Error)
	}
}

func (suite *VehicleHandlerTestSuite) get(path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return w, response
}

func (suite *VehicleHandlerTestSuite) TestListDefaultsToAvailable() {
	suite.seedFleet()

	w, response := suite.get("/api/vehicles")
	suite.Equal(http.StatusOK, w.Code)
	suite.True(response["success"].(bool))
	suite.Equal(float64(2), response["total"])
	suite.Equal("2", w.Header().Get("X-Total-Count"))
}

func (suite *VehicleHandlerTestSuite) TestListBrandAliasesMake() {
	suite.seedFleet()

	_, response := suite.get("/api/vehicles?brand=toyota")
	suite.Equal(float64(2), response["total"])

	// An explicit make wins over the alias
	_, response = suite.get("/api/vehicles?make=Toyota&brand=Ford")
	suite.Equal(float64(2), response["total"])
}

func (suite *VehicleHandlerTestSuite) TestListFilterCombination() {
	suite.seedFleet()

	_, response := suite.get("/api/vehicles?make=Toyota&priceMax=20000")
	suite.Equal(float64(1), response["total"])

	vehicles := response["vehicles"].([]interface{})
	suite.Require().Len(vehicles, 1)
	suite.Equal("Toyota Camry SE", vehicles[0].(map[string]interface{})["name"])
}

func (suite *VehicleHandlerTestSuite) TestListGarbageBoundsIgnored() {
	suite.seedFleet()

	// Unparseable numeric params coerce to zero, i.e. no bound
	_, response := suite.get("/api/vehicles?priceMax=cheap&yearMin=old")
	suite.Equal(float64(2), response["total"])
}

func (suite *VehicleHandlerTestSuite) TestGetVehicle() {
	suite.seedFleet()

	var vehicle models.Vehicle
	suite.Require().NoError(suite.db.Where("model = ?", "Camry").First(&vehicle).Error)

	w, response := suite.get(fmt.Sprintf("/api/vehicles/%d", vehicle.ID))
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Toyota Camry SE", response["vehicle"].(map[string]interface{})["name"])

	w, _ = suite.get("/api/vehicles/999999")
	suite.Equal(http.StatusNotFound, w.Code)

	w, _ = suite.get("/api/vehicles/not-a-number")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *VehicleHandlerTestSuite) TestCreateVehicleValidation() {
	body, _ := json.Marshal(map[string]interface{}{"year": 2020})
	req, _ := http.NewRequest("POST", "/api/vehicles", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("Validation failed", response["error"])
	suite.NotEmpty(response["details"])
}

func (suite *VehicleHandlerTestSuite) TestCreateVehicleCoercesFormInput() {
	body, _ := json.Marshal(map[string]interface{}{
		"name":     "Honda Civic LX",
		"make":     "Honda",
		"model":    "Civic",
		"year":     "2019",
		"price":    "16000",
		"featured": "true",
	})
	req, _ := http.NewRequest("POST", "/api/vehicles", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)

	var vehicle models.Vehicle
	suite.Require().NoError(suite.db.Where("model = ?", "Civic").First(&vehicle).Error)
	suite.Equal(2019, vehicle.Year)
	suite.Equal(16000.0, vehicle.Price)
	suite.True(vehicle.Featured)
}

func (suite *VehicleHandlerTestSuite) TestDeleteVehicle() {
	suite.seedFleet()

	var vehicle models.Vehicle
	suite.Require().NoError(suite.db.First(&vehicle).Error)

	req, _ := http.NewRequest("DELETE", fmt.Sprintf("/api/vehicles/%d", vehicle.ID), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)

	req, _ = http.NewRequest("DELETE", fmt.Sprintf("/api/vehicles/%d", vehicle.ID), nil)
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestVehicleHandlerSuite(t *testing.T) {
	suite.Run(t, new(VehicleHandlerTestSuite))
}
