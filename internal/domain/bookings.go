package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookingRequest is the submission payload. TotalPrice is the total the
// client computed from the quote; whether the server verifies it against its
// own computation is a deployment choice.
//
// IdempotencyKey is optional. When a client supplies one and retries the same
// submission, the retry returns the originally created booking instead of
// appending a duplicate row. Submissions without a key are never deduplicated.
type BookingRequest struct {
	VehicleID      int64  `json:"vehicle_id"`
	RentalDays     int    `json:"rental_days"`
	ExtraHours     int    `json:"extra_hours"`
	TotalPrice     int64  `json:"total_price"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// Booking is one row of the booking ledger. Rows are created exactly once per
// successful submission and never mutated or deleted.
type Booking struct {
	ID         int64     `json:"id"`
	VehicleID  int64     `json:"vehicle_id"`
	RentalDays int       `json:"rental_days"`
	ExtraHours int       `json:"extra_hours"`
	TotalPrice int64     `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

type BookingConfirmation struct {
	BookingID int64     `json:"booking_id"`
	CreatedAt time.Time `json:"created_at"`
	Message   string    `json:"message"`
}

func ValidateBookingRequest(value any) []string {
	var errs []string
	switch req := value.(type) {
	case BookingRequest:
		if req.VehicleID <= 0 {
			errs = append(errs, "vehicle_id: must be a positive integer")
		}
		if req.RentalDays < 1 {
			errs = append(errs, "rental_days: must be at least 1")
		}
		if req.ExtraHours < 0 {
			errs = append(errs, "extra_hours: must be non-negative")
		}
		if req.TotalPrice < 0 {
			errs = append(errs, "total_price: must be non-negative")
		}
		if req.IdempotencyKey != "" {
			if _, err := uuid.Parse(req.IdempotencyKey); err != nil {
				errs = append(errs, "idempotency_key: must be a valid UUID")
			}
		}
	default:
		panic("cannot validate unknown type")
	}
	return errs
}

type BookingRepository interface {
	InsertBooking(ctx context.Context, req BookingRequest) (Booking, error)
	FetchBooking(ctx context.Context, id int64) (Booking, error)
	FindBookingByIdempotencyKey(ctx context.Context, key uuid.UUID) (Booking, error)
}
