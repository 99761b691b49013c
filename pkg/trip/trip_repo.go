package trip

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const dateFormat = "2006-01-02"

type TripRepo interface {
	// Store persists a new trip, assigns its id and returns the stored trip.
	Store(ctx context.Context, trip Trip) (Trip, error)
	// GetAll returns all trips sorted by date descending, newest-first on ties.
	GetAll(ctx context.Context) ([]Trip, error)
	// GetByMonth returns the trips of one calendar month, same order as GetAll.
	GetByMonth(ctx context.Context, year int, month time.Month) ([]Trip, error)
	Update(ctx context.Context, trip Trip) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type TripRepoImpl struct {
	db *sql.DB
}

func NewTripRepo(db *sql.DB) *TripRepoImpl {
	return &TripRepoImpl{db: db}
}

const tripColumns = `id, trip_date, amount_received, distance_km, fuel_efficiency_km_l, fuel_price_per_l, fuel_cost, profit, created_at`

func (r TripRepoImpl) Store(ctx context.Context, trip Trip) (Trip, error) {
	query := `INSERT INTO trip (` + tripColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return Trip{}, err
	}
	defer stmt.Close()

	trip.ID = uuid.NewString()
	_, err = stmt.ExecContext(ctx,
		trip.ID,
		trip.Date.Format(dateFormat),
		trip.AmountReceived,
		trip.DistanceKm,
		trip.FuelEfficiencyKmL,
		trip.FuelPricePerL,
		trip.FuelCost,
		trip.Profit,
		trip.CreatedAt.UnixMilli(),
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return Trip{}, err
	}

	return trip, nil
}

func (r TripRepoImpl) GetAll(ctx context.Context) ([]Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trip ORDER BY trip_date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query trips: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	return scanTrips(rows)
}

func (r TripRepoImpl) GetByMonth(ctx context.Context, year int, month time.Month) ([]Trip, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	query := `SELECT ` + tripColumns + ` FROM trip
				WHERE trip_date >= ? AND trip_date <= ?
				ORDER BY trip_date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, monthStart.Format(dateFormat), monthEnd.Format(dateFormat))
	if err != nil {
		err := fmt.Errorf("could not query trips for %d-%02d: %w", year, month, err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	return scanTrips(rows)
}

func (r TripRepoImpl) Update(ctx context.Context, trip Trip) (bool, error) {
	query := `UPDATE trip SET
				trip_date = ?,
				amount_received = ?,
				distance_km = ?,
				fuel_efficiency_km_l = ?,
				fuel_price_per_l = ?,
				fuel_cost = ?,
				profit = ?,
				created_at = ?
			WHERE id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		trip.Date.Format(dateFormat),
		trip.AmountReceived,
		trip.DistanceKm,
		trip.FuelEfficiencyKmL,
		trip.FuelPricePerL,
		trip.FuelCost,
		trip.Profit,
		trip.CreatedAt.UnixMilli(),
		trip.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}

	return rowsAffected == 1, nil
}

func (r TripRepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM trip WHERE id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func scanTrips(rows *sql.Rows) ([]Trip, error) {
	var trips []Trip
	for rows.Next() {
		var trip Trip
		var dateString string
		var createdAtMillis int64
		if err := rows.Scan(
			&trip.ID,
			&dateString,
			&trip.AmountReceived,
			&trip.DistanceKm,
			&trip.FuelEfficiencyKmL,
			&trip.FuelPricePerL,
			&trip.FuelCost,
			&trip.Profit,
			&createdAtMillis,
		); err != nil {
			err := fmt.Errorf("could not scan trip: %w", err)
			log.Error(err)
			return nil, err
		}
		date, err := time.Parse(dateFormat, dateString)
		if err != nil {
			err := fmt.Errorf("could not parse trip date: %w", err)
			log.Error(err)
			return nil, err
		}
		trip.Date = date
		trip.CreatedAt = time.UnixMilli(createdAtMillis)
		trips = append(trips, trip)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return trips, nil
}
