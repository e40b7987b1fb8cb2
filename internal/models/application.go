// internal/models/application.go
package models

import "time"

// Application is a credit application. Buyer and co-buyer details are kept
// as single JSON documents rather than per-field columns; rows are
// append-only except for the status.
type Application struct {
	ID          uint              `json:"id" gorm:"primaryKey"`
	BuyerData   JSONB             `json:"buyer_data" gorm:"type:jsonb;not null"`
	CoBuyerData JSONB             `json:"co_buyer_data" gorm:"type:jsonb"`
	VehicleID   *uint             `json:"vehicle_id" gorm:"index"`
	Status      ApplicationStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	CreatedAt   time.Time         `json:"created_at"`

	// Relationships
	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
}
