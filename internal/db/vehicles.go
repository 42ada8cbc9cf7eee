package db

import (
	"context"
	"fmt"

	_ "embed"

	"github.com/jackc/pgx/v5"
	"github.com/rentadrive/rentadrive/internal/domain"
)

func vehicleFromDTO(dto VehicleDTO) domain.Vehicle {
	return domain.Vehicle{
		ID:          dto.ID,
		Name:        dto.Name,
		PricePerDay: dto.PricePerDay,
	}
}

//go:embed queries/list-vehicles.sql
var listVehiclesQuery string

func (repo Repository) ListVehicles(ctx context.Context) (vehicles []domain.Vehicle, err error) {
	rows, err := repo.Query(ctx, listVehiclesQuery)
	if err != nil {
		err = fmt.Errorf("failed to execute query: %w", err)
		return
	}

	vehicleDTOs, err := pgx.CollectRows(rows, pgx.RowToStructByName[VehicleDTO])
	if err != nil {
		err = fmt.Errorf("failed to map row to VehicleDTO: %w", err)
		return
	}

	vehicles = make([]domain.Vehicle, 0, len(vehicleDTOs))
	for _, dto := range vehicleDTOs {
		vehicles = append(vehicles, vehicleFromDTO(dto))
	}
	return
}

//go:embed queries/fetch-vehicle.sql
var fetchVehicleQuery string

func (repo Repository) FetchVehicle(ctx context.Context, id int64) (vehicle domain.Vehicle, err error) {
	rows, err := repo.Query(ctx, fetchVehicleQuery, pgx.NamedArgs{"id": id})
	if err != nil {
		err = fmt.Errorf("failed to execute query: %w", err)
		return
	}

	vehicleDTOs, err := pgx.CollectRows(rows, pgx.RowToStructByName[VehicleDTO])
	if err != nil {
		err = fmt.Errorf("failed to map row to VehicleDTO: %w", err)
		return
	}
	if len(vehicleDTOs) == 0 {
		err = ErrNotFound
		return
	}

	vehicle = vehicleFromDTO(vehicleDTOs[0])
	return
}
