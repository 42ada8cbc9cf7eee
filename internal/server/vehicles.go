package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	log "github.com/sirupsen/logrus"

	"github.com/rentadrive/rentadrive/internal/db"
	"github.com/rentadrive/rentadrive/internal/domain"
)

type quoteParams struct {
	RentalDays int
	ExtraHours int
}

// parseQuoteParams reads days/hours from the query string. Both are optional:
// a quote defaults to one rental day and no extra hours.
func parseQuoteParams(r *http.Request) (params quoteParams, errs []string) {
	var err error
	params.RentalDays = 1
	days := r.URL.Query().Get("days")
	if days != "" {
		params.RentalDays, err = strconv.Atoi(days)
		if err != nil || params.RentalDays < 1 {
			errs = append(errs, "days: must be a positive integer")
		}
	}

	params.ExtraHours = 0
	hours := r.URL.Query().Get("hours")
	if hours != "" {
		params.ExtraHours, err = strconv.Atoi(hours)
		if err != nil || params.ExtraHours < 0 {
			errs = append(errs, "hours: must be a non-negative integer")
		}
	}

	return
}

func NewVehiclesRouter(env *Env) *chi.Mux {
	vehiclesRouter := chi.NewRouter()
	vehiclesRouter.Get("/", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		conn, err := env.db.Acquire(ctx)
		if err != nil {
			log.WithError(err).Error("failed to acquire db connection")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		defer conn.Release()
		repo := db.NewRepository(conn)

		vehicles, err := repo.ListVehicles(ctx)
		if err != nil {
			log.WithError(err).Error("failed to list vehicles")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		render.JSON(w, r, domain.VehiclesResponse{Vehicles: vehicles})
	})
	vehiclesRouter.Get("/{id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
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

		vehicle, err := repo.FetchVehicle(ctx, id)
		if err != nil && errors.Is(err, db.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			log.WithError(err).Error("failed to fetch vehicle")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		render.JSON(w, r, vehicle)
	})
	vehiclesRouter.Get("/{id:[0-9]+}/quote", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, domain.ApiError{
				Type:    domain.ApiErrorTypeBadParam,
				Details: []string{"id: must be an integer"},
			})
			return
		}

		params, errs := parseQuoteParams(r)
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
			return
		}
		defer conn.Release()
		repo := db.NewRepository(conn)

		vehicle, err := repo.FetchVehicle(ctx, id)
		if err != nil && errors.Is(err, db.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			log.WithError(err).Error("failed to fetch vehicle")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		quote := domain.NewQuote(vehicle.ID, vehicle.PricePerDay, params.RentalDays, params.ExtraHours)
		w.WriteHeader(http.StatusOK)
		render.JSON(w, r, quote)
	})
	return vehiclesRouter
}
