package server

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentadrive/rentadrive/internal/config"
)

// Env holds the shared dependencies handlers pull from. Handlers acquire a
// pooled connection per request; the pool is the only shared mutable state in
// the process.
type Env struct {
	db           *pgxpool.Pool
	verifyTotals bool
}

func New(db *pgxpool.Pool, cfg config.Config) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.AllowContentType("application/json"))
	router.Use(middleware.Heartbeat("/health"))
	router.Use(middleware.Timeout(15 * time.Second))

	env := &Env{db: db, verifyTotals: cfg.VerifyTotals}
	router.Mount("/vehicles", NewVehiclesRouter(env))
	router.Mount("/bookings", NewBookingsRouter(env))

	return router
}
