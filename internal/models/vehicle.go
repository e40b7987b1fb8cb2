// internal/models/vehicle.go
package models

import (
	"github.com/lib/pq"
)

type Vehicle struct {
	BaseModel
	Name         string         `json:"name" gorm:"size:255;not null"`
	Year         int            `json:"year" gorm:"not null;index"`
	Price        float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	Mileage      int            `json:"mileage" gorm:"default:0"`
	Color        string         `json:"color" gorm:"size:100"`
	BodyType     string         `json:"body_type" gorm:"size:50;index"`
	FuelType     string         `json:"fuel_type" gorm:"size:50"`
	Transmission string         `json:"transmission" gorm:"size:50"`
	Drivetrain   string         `json:"drivetrain" gorm:"size:50"`
	Engine       string         `json:"engine" gorm:"size:100"`
	VIN          string         `json:"vin" gorm:"column:vin;size:50"`
	StockNumber  string         `json:"stock_number" gorm:"size:50"`
	Make         string         `json:"make" gorm:"size:100;not null;index"`
	Model        string         `json:"model" gorm:"size:100;not null"`
	CategoryID   *uint          `json:"category_id" gorm:"index"`
	Description  string         `json:"description" gorm:"type:text"`
	Features     pq.StringArray `json:"features" gorm:"type:text[]"`
	Images       pq.StringArray `json:"images" gorm:"type:text[]"`
	Featured     bool           `json:"featured" gorm:"default:false;index"`
	Status       VehicleStatus  `json:"status" gorm:"type:varchar(20);default:'available';index"`

	// Relationships
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}
