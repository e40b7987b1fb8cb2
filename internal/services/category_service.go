// internal/services/category_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/UmairIqbal92/car-dealer-fork/internal/models"
)

type CategoryService struct {
	db *gorm.DB
}

var ErrCategoryNotFound = errors.New("category not found")

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Logo string `json:"logo"`
}

// Brand is a category paired with the number of available vehicles whose
// make matches the category name, case-insensitively. The category foreign
// key is deliberately not consulted here: "brand" is defined by the
// make/name match, while category_id drives the categoryId list filter.
type Brand struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Logo         string `json:"logo"`
	VehicleCount int    `json:"vehicle_count"`
}

const brandLimit = 12

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) Create(req *CategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name: req.Name,
		Slug: models.Slugify(req.Name),
		Logo: req.Logo,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Update(id uint, req *CategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	category.Name = req.Name
	category.Slug = models.Slugify(req.Name)
	category.Logo = req.Logo

	if err := s.db.Model(&category).Updates(map[string]interface{}{
		"name": category.Name,
		"slug": category.Slug,
		"logo": category.Logo,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &category, nil
}

func (s *CategoryService) Delete(id uint) error {
	result := s.db.Delete(&models.Category{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Brands returns the top categories by matching vehicle count, busiest
// first, then name.
func (s *CategoryService) Brands() ([]Brand, error) {
	var brands []Brand
	err := s.db.Model(&models.Category{}).
		Select("categories.id, categories.name, categories.slug, categories.logo, COUNT(vehicles.id) AS vehicle_count").
		Joins("LEFT JOIN vehicles ON LOWER(vehicles.make) = LOWER(categories.name) AND vehicles.status = ?", models.VehicleStatusAvailable).
		Group("categories.id, categories.name, categories.slug, categories.logo").
		Order("vehicle_count DESC, categories.name ASC").
		Limit(brandLimit).
		Scan(&brands).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return brands, nil
}
