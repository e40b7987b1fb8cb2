// internal/models/inquiry.go
package models

import "time"

type Inquiry struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	FirstName   string        `json:"first_name" gorm:"size:100;not null"`
	LastName    string        `json:"last_name" gorm:"size:100;not null"`
	Email       string        `json:"email" gorm:"size:255;not null"`
	Phone       string        `json:"phone" gorm:"size:50;not null"`
	Message     string        `json:"message" gorm:"type:text"`
	VehicleID   *uint         `json:"vehicle_id" gorm:"index"`
	InquiryType InquiryType   `json:"inquiry_type" gorm:"type:varchar(50);default:'general'"`
	Status      InquiryStatus `json:"status" gorm:"type:varchar(20);default:'new';index"`
	CreatedAt   time.Time     `json:"created_at"`

	// Relationships
	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
}
