// internal/handlers/vehicle.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/UmairIqbal92/car-dealer-fork/internal/models"
	"github.com/UmairIqbal92/car-dealer-fork/internal/services"
	"github.com/UmairIqbal92/car-dealer-fork/internal/utils"
)

type VehicleHandler struct {
	vehicleService *services.VehicleService
}

func NewVehicleHandler(vehicleService *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// GET /api/vehicles
func (h *VehicleHandler) GetVehicles(c *gin.Context) {
	page := utils.GetPaginationParams(c)

	params := services.VehicleSearchParams{
		Status:       models.VehicleStatus(c.Query("status")),
		Make:         c.Query("make"),
		Model:        c.Query("model"),
		BodyType:     c.Query("bodyType"),
		FuelType:     c.Query("fuelType"),
		Transmission: c.Query("transmission"),
		Search:       c.Query("search"),
	}

	// brand is an alias for make used by the public brand pages
	if params.Make == "" {
		params.Make = c.Query("brand")
	}

	if v := c.Query("yearMin"); v != "" {
		params.YearMin = utils.ParseIntDefault(v)
	}
	if v := c.Query("yearMax"); v != "" {
		params.YearMax = utils.ParseIntDefault(v)
	}
	if v := c.Query("priceMin"); v != "" {
		params.PriceMin = utils.ParseFloatDefault(v)
	}
	if v := c.Query("priceMax"); v != "" {
		params.PriceMax = utils.ParseFloatDefault(v)
	}
	if v := c.Query("mileageMax"); v != "" {
		params.MileageMax = utils.ParseIntDefault(v)
	}
	if v := c.Query("categoryId"); v != "" {
		params.CategoryID = uint(utils.ParseIntDefault(v))
	}
	if c.Query("featured") == "true" {
		params.Featured = true
	}

	vehicles, total, err := h.vehicleService.List(params, page)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SetPaginationHeaders(c, utils.CreatePaginationResult(total, page))
	utils.SuccessResponse(c, gin.H{
		"vehicles": vehicles,
		"total":    total,
	})
}

// GET /api/vehicles/:id
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrVehicleNotFound) {
			utils.NotFoundResponse(c, "Vehicle not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"vehicle": vehicle})
}

// POST /api/vehicles
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req services.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	vehicle, err := h.vehicleService.Create(&req)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"vehicle": vehicle})
}

// PUT /api/vehicles/:id
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req services.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	vehicle, err := h.vehicleService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrVehicleNotFound) {
			utils.NotFoundResponse(c, "Vehicle not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"vehicle": vehicle})
}

// DELETE /api/vehicles/:id
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.vehicleService.Delete(id); err != nil {
		if errors.Is(err, services.ErrVehicleNotFound) {
			utils.NotFoundResponse(c, "Vehicle not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{})
}

// GET /api/vehicle-options
func (h *VehicleHandler) GetVehicleOptions(c *gin.Context) {
	options, err := h.vehicleService.Options()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"makes":     options.Makes,
		"models":    options.Models,
		"bodyTypes": options.BodyTypes,
	})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
