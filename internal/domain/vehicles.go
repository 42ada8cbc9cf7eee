package domain

import (
	"context"
)

// Vehicle is a catalog entry for a rentable car. The catalog is read-only
// from this system's perspective; rows are managed by an external
// administrative process.
type Vehicle struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PricePerDay int64  `json:"price_per_day"`
}

type VehiclesResponse struct {
	Vehicles []Vehicle `json:"vehicles"`
}

type VehicleRepository interface {
	// ListVehicles returns the full catalog ordered by id ascending.
	ListVehicles(ctx context.Context) ([]Vehicle, error)
	FetchVehicle(ctx context.Context, id int64) (Vehicle, error)
}
