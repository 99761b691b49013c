package trip

import (
	"context"
	"time"

	"github.com/rodalog/rodalog/internal/event_bus"
	"github.com/rodalog/rodalog/internal/utils"
	log "github.com/sirupsen/logrus"
)

type TripService interface {
	// Create validates the raw inputs, computes the derived fields and
	// persists a new trip.
	Create(ctx context.Context, trip Trip) (Trip, error)
	GetAll(ctx context.Context) ([]Trip, error)
	GetByMonth(ctx context.Context, year int, month time.Month) ([]Trip, error)
	// Update re-derives fuel cost and profit from the new raw inputs and
	// refreshes the bookkeeping timestamp. Returns ErrTripNotFound for an
	// unknown id.
	Update(ctx context.Context, trip Trip) (Trip, error)
	// Delete removes a trip. Returns ErrTripNotFound for an unknown id.
	Delete(ctx context.Context, id string) error
}

type TripServiceImpl struct {
	repo  TripRepo
	bus   *event_bus.EventBus
	clock utils.Clock
}

func NewTripService(repo TripRepo, bus *event_bus.EventBus, clock utils.Clock) *TripServiceImpl {
	return &TripServiceImpl{repo: repo, bus: bus, clock: clock}
}

func (s *TripServiceImpl) Create(ctx context.Context, trip Trip) (Trip, error) {
	if err := validate(trip); err != nil {
		return Trip{}, err
	}

	fuelCost, profit, err := ComputeDerived(trip.AmountReceived, trip.DistanceKm, trip.FuelEfficiencyKmL, trip.FuelPricePerL)
	if err != nil {
		return Trip{}, err
	}
	trip.FuelCost = fuelCost
	trip.Profit = profit
	trip.CreatedAt = s.clock.Now()

	stored, err := s.repo.Store(ctx, trip)
	if err != nil {
		return Trip{}, err
	}

	s.publish(ctx, event_bus.TripCreated, stored)
	return stored, nil
}

func (s *TripServiceImpl) GetAll(ctx context.Context) ([]Trip, error) {
	return s.repo.GetAll(ctx)
}

func (s *TripServiceImpl) GetByMonth(ctx context.Context, year int, month time.Month) ([]Trip, error) {
	return s.repo.GetByMonth(ctx, year, month)
}

func (s *TripServiceImpl) Update(ctx context.Context, trip Trip) (Trip, error) {
	if err := validate(trip); err != nil {
		return Trip{}, err
	}

	fuelCost, profit, err := ComputeDerived(trip.AmountReceived, trip.DistanceKm, trip.FuelEfficiencyKmL, trip.FuelPricePerL)
	if err != nil {
		return Trip{}, err
	}
	trip.FuelCost = fuelCost
	trip.Profit = profit
	trip.CreatedAt = s.clock.Now()

	updated, err := s.repo.Update(ctx, trip)
	if err != nil {
		return Trip{}, err
	}
	if !updated {
		log.Warnf("trip not updated, probably because it does not exist (%s)", trip.ID)
		return Trip{}, ErrTripNotFound
	}

	s.publish(ctx, event_bus.TripUpdated, trip)
	return trip, nil
}

func (s *TripServiceImpl) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		log.Warnf("trip not deleted, probably because it does not exist (%s)", id)
		return ErrTripNotFound
	}

	s.publish(ctx, event_bus.TripDeleted, Trip{ID: id})
	return nil
}

// publish notifies subscribers about a lifecycle change. Subscriber failures
// never fail the originating operation.
func (s *TripServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, trip Trip) {
	if s.bus == nil {
		return
	}
	event := event_bus.NewEvent(ctx, eventType, event_bus.TripEvent{
		ID:     trip.ID,
		Date:   trip.Date,
		Profit: trip.Profit,
	})
	if err := s.bus.Publish(event); err != nil {
		log.Warnf("failed to publish %s event: %v", eventType, err)
	}
}
