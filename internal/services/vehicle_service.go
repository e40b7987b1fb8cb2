// internal/services/vehicle_service.go
package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/UmairIqbal92/car-dealer-fork/internal/models"
	"github.com/UmairIqbal92/car-dealer-fork/internal/utils"
)

type VehicleService struct {
	db *gorm.DB
}

var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleRequest carries vehicle attributes for create and update. Numeric
// and boolean fields tolerate string form input (parse, zero on failure).
type VehicleRequest struct {
	Name         string          `json:"name" validate:"required"`
	Year         utils.FlexInt   `json:"year" validate:"omitempty,gte=1900,lte=2100"`
	Price        utils.FlexFloat `json:"price" validate:"gte=0"`
	Mileage      utils.FlexInt   `json:"mileage" validate:"gte=0"`
	Color        string          `json:"color"`
	BodyType     string          `json:"bodyType"`
	FuelType     string          `json:"fuelType"`
	Transmission string          `json:"transmission"`
	Drivetrain   string          `json:"drivetrain"`
	Engine       string          `json:"engine"`
	VIN          string          `json:"vin"`
	StockNumber  string          `json:"stockNumber"`
	Make         string          `json:"make" validate:"required"`
	Model        string          `json:"model" validate:"required"`
	CategoryID   utils.FlexInt   `json:"categoryId"`
	Description  string          `json:"description"`
	Features     []string        `json:"features"`
	Images       []string        `json:"images"`
	Featured     utils.FlexBool  `json:"featured"`
	Status       string          `json:"status"`
}

// VehicleSearchParams holds the filter chain inputs. Empty strings and zero
// bounds mean "not supplied".
type VehicleSearchParams struct {
	Status       models.VehicleStatus
	Make         string
	Model        string
	BodyType     string
	FuelType     string
	Transmission string
	YearMin      int
	YearMax      int
	PriceMin     float64
	PriceMax     float64
	MileageMax   int
	CategoryID   uint
	Featured     bool
	Search       string
}

type VehicleOptions struct {
	Makes     []string `json:"makes"`
	Models    []string `json:"models"`
	BodyTypes []string `json:"bodyTypes"`
}

func NewVehicleService(db *gorm.DB) *VehicleService {
	return &VehicleService{db: db}
}

// List performs a single bulk read of rows matching the status filter
// (newest first), narrows the set in memory through the predicate chain,
// and slices the requested page. Returns the page and the narrowed total.
func (s *VehicleService) List(params VehicleSearchParams, page utils.PaginationParams) ([]models.Vehicle, int64, error) {
	status := params.Status
	if status == "" {
		status = models.VehicleStatusAvailable
	}

	var vehicles []models.Vehicle
	if err := s.db.Preload("Category").
		Where("status = ?", status).
		Order("created_at DESC, id DESC").
		Find(&vehicles).Error; err != nil {
		return nil, 0, fmt.Errorf("database error: %w", err)
	}

	filtered := ApplyVehicleFilters(vehicles, params)
	total := int64(len(filtered))

	start, end := utils.PageSlice(len(filtered), page)
	return filtered[start:end], total, nil
}

// ApplyVehicleFilters narrows a vehicle slice by every non-empty filter key.
// Filters are conjunctive; only the free-text search terms are disjunctive.
func ApplyVehicleFilters(vehicles []models.Vehicle, params VehicleSearchParams) []models.Vehicle {
	out := vehicles

	if params.Make != "" {
		out = keep(out, func(v models.Vehicle) bool {
			return strings.EqualFold(v.Make, params.Make)
		})
	}
	if params.Model != "" {
		out = keep(out, func(v models.Vehicle) bool {
			return strings.EqualFold(v.Model, params.Model)
		})
	}
	if params.BodyType != "" {
		out = keep(out, func(v models.Vehicle) bool {
			return strings.EqualFold(v.BodyType, params.BodyType)
		})
	}
	if params.FuelType != "" {
		out = keep(out, func(v models.Vehicle) bool {
			return strings.EqualFold(v.FuelType, params.FuelType)
		})
	}
	if params.Transmission != "" {
		out = keep(out, func(v models.Vehicle) bool {
			return strings.EqualFold(v.Transmission, params.Transmission)
		})
	}
	if params.YearMin > 0 {
		out = keep(out, func(v models.Vehicle) bool { return v.Year >= params.YearMin })
	}
	if params.YearMax > 0 {
		out = keep(out, func(v models.Vehicle) bool { return v.Year <= params.YearMax })
	}
	if params.PriceMin > 0 {
		out = keep(out, func(v models.Vehicle) bool { return v.Price >= params.PriceMin })
	}
	if params.PriceMax > 0 {
		out = keep(out, func(v models.Vehicle) bool { return v.Price <= params.PriceMax })
	}
	if params.MileageMax > 0 {
		out = keep(out, func(v models.Vehicle) bool { return v.Mileage <= params.MileageMax })
	}
	if params.CategoryID > 0 {
		out = keep(out, func(v models.Vehicle) bool {
			return v.CategoryID != nil && *v.CategoryID == params.CategoryID
		})
	}
	if params.Featured {
		out = keep(out, func(v models.Vehicle) bool { return v.Featured })
	}
	if params.Search != "" {
		terms := strings.Fields(strings.ToLower(params.Search))
		out = keep(out, func(v models.Vehicle) bool {
			return matchesAnyTerm(v, terms)
		})
	}

	return out
}

// matchesAnyTerm reports whether any search term is a substring of the
// vehicle's concatenated descriptive text (OR semantics across terms).
func matchesAnyTerm(v models.Vehicle, terms []string) bool {
	haystack := strings.ToLower(strings.Join([]string{
		v.Make, v.Model, v.Name, strconv.Itoa(v.Year), v.Color,
		v.BodyType, v.FuelType, v.Transmission, v.Description,
	}, " "))

	for _, term := range terms {
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}

func keep(vehicles []models.Vehicle, pred func(models.Vehicle) bool) []models.Vehicle {
	out := vehicles[:0:0]
	for _, v := range vehicles {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

func (s *VehicleService) Get(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.db.Preload("Category").First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &vehicle, nil
}

func (s *VehicleService) Create(req *VehicleRequest) (*models.Vehicle, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	vehicle := req.toModel()
	if err := s.db.Create(vehicle).Error; err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	s.db.Preload("Category").First(vehicle, vehicle.ID)
	return vehicle, nil
}

// Update rewrites every column from the request and refreshes updated_at;
// there are no partial-patch semantics.
func (s *VehicleService) Update(id uint, req *VehicleRequest) (*models.Vehicle, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var existing models.Vehicle
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	vehicle := req.toModel()
	vehicle.ID = existing.ID
	vehicle.CreatedAt = existing.CreatedAt

	if err := s.db.Model(&existing).Select("*").Omit("id", "created_at").Updates(vehicle).Error; err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	s.db.Preload("Category").First(vehicle, id)
	return vehicle, nil
}

func (s *VehicleService) Delete(id uint) error {
	result := s.db.Delete(&models.Vehicle{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrVehicleNotFound
	}
	return nil
}

// Options returns the distinct non-empty makes, models, and body types of
// available vehicles, for populating the public filter dropdowns.
func (s *VehicleService) Options() (*VehicleOptions, error) {
	options := &VehicleOptions{
		Makes:     []string{},
		Models:    []string{},
		BodyTypes: []string{},
	}

	columns := map[string]*[]string{
		"make":      &options.Makes,
		"model":     &options.Models,
		"body_type": &options.BodyTypes,
	}

	for column, dest := range columns {
		err := s.db.Model(&models.Vehicle{}).
			Where("status = ? AND "+column+" IS NOT NULL AND "+column+" != ''", models.VehicleStatusAvailable).
			Distinct(column).
			Order(column + " ASC").
			Pluck(column, dest).Error
		if err != nil {
			return nil, fmt.Errorf("database error: %w", err)
		}
	}

	return options, nil
}

// VehicleLabel renders the human-readable "<year> <name>" context used in
// lead notification emails. Empty when the id does not resolve.
func (s *VehicleService) VehicleLabel(id uint) string {
	vehicle, err := s.Get(id)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d %s", vehicle.Year, vehicle.Name)
}

func (r *VehicleRequest) toModel() *models.Vehicle {
	status := models.VehicleStatus(r.Status)
	if !status.Valid() {
		status = models.VehicleStatusAvailable
	}

	var categoryID *uint
	if r.CategoryID > 0 {
		id := uint(r.CategoryID)
		categoryID = &id
	}

	features := r.Features
	if features == nil {
		features = []string{}
	}
	images := r.Images
	if images == nil {
		images = []string{}
	}

	return &models.Vehicle{
		Name:         r.Name,
		Year:         int(r.Year),
		Price:        float64(r.Price),
		Mileage:      int(r.Mileage),
		Color:        r.Color,
		BodyType:     r.BodyType,
		FuelType:     r.FuelType,
		Transmission: r.Transmission,
		Drivetrain:   r.Drivetrain,
		Engine:       r.Engine,
		VIN:          r.VIN,
		StockNumber:  r.StockNumber,
		Make:         r.Make,
		Model:        r.Model,
		CategoryID:   categoryID,
		Description:  r.Description,
		Features:     features,
		Images:       images,
		Featured:     bool(r.Featured),
		Status:       status,
	}
}
