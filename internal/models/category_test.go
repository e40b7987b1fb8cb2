// internal/models/category_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Toyota", "toyota"},
		{"trims and lowercases", "  Mercedes-Benz ", "mercedes-benz"},
		{"collapses whitespace runs", "Land  Rover", "land-rover"},
		{"strips punctuation", "Rolls Royce & Co.", "rolls-royce--co"},
		{"keeps digits", "Formula 1", "formula-1"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestVehicleStatusValid(t *testing.T) {
	assert.True(t, VehicleStatusAvailable.Valid())
	assert.True(t, VehicleStatusSold.Valid())
	assert.True(t, VehicleStatusPending.Valid())
	assert.False(t, VehicleStatus("scrapped").Valid())
	assert.False(t, VehicleStatus("").Valid())
}
