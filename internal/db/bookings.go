package db

import (
	"context"
	"errors"
	"fmt"

	_ "embed"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rentadrive/rentadrive/internal/domain"
)

func bookingFromDTO(dto BookingDTO) domain.Booking {
	return domain.Booking{
		ID:         dto.ID,
		VehicleID:  dto.VehicleID,
		RentalDays: int(dto.RentalDays),
		ExtraHours: int(dto.ExtraHours),
		TotalPrice: dto.TotalPrice,
		CreatedAt:  dto.CreatedAt,
	}
}

//go:embed queries/insert-booking.sql
var insertBookingQuery string

// InsertBooking appends one row to the booking ledger and returns it with the
// store-assigned id and creation timestamp. A vehicle id the catalog does not
// contain surfaces as ErrVehicleNotFound and writes nothing; a replayed
// idempotency key surfaces as ErrConflict.
func (repo Repository) InsertBooking(ctx context.Context, req domain.BookingRequest) (booking domain.Booking, err error) {
	var key *uuid.UUID
	if req.IdempotencyKey != "" {
		parsed, parseErr := uuid.Parse(req.IdempotencyKey)
		if parseErr != nil {
			err = fmt.Errorf("malformed idempotency key: %w", parseErr)
			return
		}
		key = &parsed
	}

	var dto BookingDTO
	rows, err := repo.Query(ctx, insertBookingQuery, pgx.NamedArgs{
		"vehicle_id":      req.VehicleID,
		"rental_days":     req.RentalDays,
		"extra_hours":     req.ExtraHours,
		"total_price":     req.TotalPrice,
		"idempotency_key": key,
	})
	if err == nil {
		dto, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[BookingDTO])
	}

	var pgErr *pgconn.PgError
	if err != nil && errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			err = ErrVehicleNotFound
			return
		case pgerrcode.UniqueViolation:
			err = ErrConflict
			return
		}
	}
	if err != nil {
		err = fmt.Errorf("failed to insert booking: %w", err)
		return
	}

	booking = bookingFromDTO(dto)
	return
}

//go:embed queries/fetch-booking.sql
var fetchBookingQuery string

func (repo Repository) FetchBooking(ctx context.Context, id int64) (booking domain.Booking, err error) {
	rows, err := repo.Query(ctx, fetchBookingQuery, pgx.NamedArgs{"id": id})
	if err != nil {
		err = fmt.Errorf("failed to execute query: %w", err)
		return
	}

	bookingDTOs, err := pgx.CollectRows(rows, pgx.RowToStructByName[BookingDTO])
	if err != nil {
		err = fmt.Errorf("failed to map row to BookingDTO: %w", err)
		return
	}
	if len(bookingDTOs) == 0 {
		err = ErrNotFound
		return
	}

	booking = bookingFromDTO(bookingDTOs[0])
	return
}

//go:embed queries/find-booking-by-key.sql
var findBookingByKeyQuery string

func (repo Repository) FindBookingByIdempotencyKey(ctx context.Context, key uuid.UUID) (booking domain.Booking, err error) {
	rows, err := repo.Query(ctx, findBookingByKeyQuery, pgx.NamedArgs{"key": key})
	if err != nil {
		err = fmt.Errorf("failed to execute query: %w", err)
		return
	}

	bookingDTOs, err := pgx.CollectRows(rows, pgx.RowToStructByName[BookingDTO])
	if err != nil {
		err = fmt.Errorf("failed to map row to BookingDTO: %w", err)
		return
	}
	if len(bookingDTOs) == 0 {
		err = ErrNotFound
		return
	}

	booking = bookingFromDTO(bookingDTOs[0])
	return
}
