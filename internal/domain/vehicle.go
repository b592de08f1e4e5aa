package domain

import "time"

type VehicleCategory string

const (
	VehicleCategoryCar   VehicleCategory = "CAR"
	VehicleCategoryVan   VehicleCategory = "VAN"
	VehicleCategorySUV   VehicleCategory = "SUV"
	VehicleCategoryTruck VehicleCategory = "TRUCK"
)

// ValidVehicleCategory reports whether c is one of the known fleet categories.
func ValidVehicleCategory(c VehicleCategory) bool {
	switch c {
	case VehicleCategoryCar, VehicleCategoryVan, VehicleCategorySUV, VehicleCategoryTruck:
		return true
	}
	return false
}

type Vehicle struct {
	ID           int32           `json:"id"`
	Name         string          `json:"name"`
	Category     VehicleCategory `json:"category"`
	LicensePlate string          `json:"license_plate"`
	Color        string          `json:"color"`
	Active       bool            `json:"active"`
	CreatedOn    time.Time       `json:"created_on"`
	UpdatedOn    time.Time       `json:"updated_on"`
}
