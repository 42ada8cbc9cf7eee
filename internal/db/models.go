package db

import (
	"time"
)

type VehicleDTO struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	PricePerDay int64  `db:"price_per_day"`
}

type BookingDTO struct {
	ID         int64     `db:"id"`
	VehicleID  int64     `db:"vehicle_id"`
	RentalDays int32     `db:"rental_days"`
	ExtraHours int32     `db:"extra_hours"`
	TotalPrice int64     `db:"total_price"`
	CreatedAt  time.Time `db:"created_at"`
}
