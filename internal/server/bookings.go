package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"

	"github.com/rentadrive/rentadrive/internal/db"
	"github.com/rentadrive/rentadrive/internal/domain"
)

const bookingConfirmedMessage = "booking confirmed"
const bookingReplayedMessage = "booking already confirmed"

func confirmationFor(booking domain.Booking, message string) domain.BookingConfirmation {
	return domain.BookingConfirmation{
		BookingID: booking.ID,
		CreatedAt: booking.CreatedAt,
		Message:   message,
	}
}

// submitBooking appends one row to the booking ledger. A keyed submission runs
// the replay lookup and the insert in a single transaction, so a retry cannot
// slip in between the two and create a duplicate row. Losing the insert race
// to a concurrent submission holding the same key degrades to returning that
// submission's booking.
func submitBooking(ctx context.Context, repo db.Repository, req domain.BookingRequest) (booking domain.Booking, replayed bool, err error) {
	if req.IdempotencyKey == "" {
		booking, err = repo.InsertBooking(ctx, req)
		return
	}

	key := uuid.MustParse(req.IdempotencyKey)
	err = repo.WithinTransaction(ctx, func(tx pgx.Tx) error {
		txRepo := db.NewRepository(tx)
		existing, lookupErr := txRepo.FindBookingByIdempotencyKey(ctx, key)
		if lookupErr == nil {
			booking = existing
			replayed = true
			return nil
		}
		if !errors.Is(lookupErr, db.ErrNotFound) {
			return lookupErr
		}
		inserted, insertErr := txRepo.InsertBooking(ctx, req)
		if insertErr != nil {
			return insertErr
		}
		booking = inserted
		return nil
	})
	if err != nil && errors.Is(err, db.ErrConflict) {
		booking, err = repo.FindBookingByIdempotencyKey(ctx, key)
		replayed = err == nil
	}
	return
}

func NewBookingsRouter(env *Env) *chi.Mux {
	bookingsRouter := chi.NewRouter()
	bookingsRouter.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var req domain.BookingRequest
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			if errors.Is(err, io.EOF) {
				w.WriteHeader(http.StatusBadRequest)
				render.JSON(w, r, domain.ApiError{
					Type:    domain.ApiErrorTypeMissingParam,
					Details: []string{"request body is required"},
				})
				return
			}
			log.WithError(err).Info("malformed booking payload")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, domain.ApiError{
				Type:    domain.ApiErrorTypeBadParam,
				Details: []string{"booking payload is not valid JSON"},
			})
			return
		}
		defer r.Body.Close()

		// Validation failures are rejected before any store call.
		errs := domain.ValidateBookingRequest(req)
		if len(errs) > 0 {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, domain.ApiError{
				Type:    domain.ApiErrorTypeBadParam,
				Details: errs,
			})
			return
		}

		ctx := r.Context()
		conn, err := env.db.Acquire(ctx)
		if err != nil {
			log.WithError(err).Error("failed to acquire db connection")
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, domain.ApiError{Type: domain.ApiErrorTypeUnknown})
			return
		}
		defer conn.Release()
		repo := db.NewRepository(conn)

		if env.verifyTotals {
			vehicle, err := repo.FetchVehicle(ctx, req.VehicleID)
			if err != nil && errors.Is(err, db.ErrNotFound) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				render.JSON(w, r, domain.ApiError{
					Type:    domain.ApiErrorTypeUnknownVehicle,
					Details: []string{"vehicle_id: no such vehicle"},
				})
				return
			}
			if err != nil {
				log.WithError(err).Error("failed to fetch vehicle for total verification")
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, domain.ApiError{Type: domain.ApiErrorTypeUnknown})
				return
			}
			expected := domain.NewQuote(vehicle.ID, vehicle.PricePerDay, req.RentalDays, req.ExtraHours)
			if expected.Total != req.TotalPrice {
				w.WriteHeader(http.StatusBadRequest)
				render.JSON(w, r, domain.ApiError{
					Type:    domain.ApiErrorTypeTotalMismatch,
					Details: []string{"total_price: expected " + strconv.FormatInt(expected.Total, 10)},
				})
				return
			}
		}

		booking, replayed, err := submitBooking(ctx, repo, req)

		if err != nil && errors.Is(err, db.ErrVehicleNotFound) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, domain.ApiError{
				Type:    domain.ApiErrorTypeUnknownVehicle,
				Details: []string{"vehicle_id: no such vehicle"},
			})
			return
		}

		if err != nil {
			log.WithError(err).Error("failed to insert booking")
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, domain.ApiError{Type: domain.ApiErrorTypeUnknown})
			return
		}

		if replayed {
			w.WriteHeader(http.StatusOK)
			render.JSON(w, r, confirmationFor(booking, bookingReplayedMessage))
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, confirmationFor(booking, bookingConfirmedMessage))
	})
	bookingsRouter.Get("/{id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, domain.ApiError{
				Type:    domain.ApiErrorTypeBadParam,
				Details: []string{"id: must be an integer"},
			})
			return
		}

		ctx := r.Context()
		conn, err := env.db.Acquire(ctx)
		if err != nil {
			log.WithError(err).Error("failed to acquire db connection")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		defer conn.Release()
		repo := db.NewRepository(conn)

		booking, err := repo.FetchBooking(ctx, id)
		if err != nil && errors.Is(err, db.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			log.WithError(err).Error("failed to fetch booking")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		render.JSON(w, r, booking)
	})
	return bookingsRouter
}
