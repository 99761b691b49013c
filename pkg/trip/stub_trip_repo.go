package trip

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

type StubTripRepo struct {
	data map[string]Trip
}

func NewStubTripRepo() *StubTripRepo {
	return &StubTripRepo{data: map[string]Trip{}}
}

func (s *StubTripRepo) Store(ctx context.Context, trip Trip) (Trip, error) {
	trip.ID = uuid.NewString()
	s.data[trip.ID] = trip
	return trip, nil
}

func (s *StubTripRepo) GetAll(ctx context.Context) ([]Trip, error) {
	trips := make([]Trip, 0, len(s.data))
	for _, trip := range s.data {
		trips = append(trips, trip)
	}
	sortNewestFirst(trips)
	return trips, nil
}

func (s *StubTripRepo) GetByMonth(ctx context.Context, year int, month time.Month) ([]Trip, error) {
	var trips []Trip
	for _, trip := range s.data {
		if trip.Date.Year() == year && trip.Date.Month() == month {
			trips = append(trips, trip)
		}
	}
	sortNewestFirst(trips)
	return trips, nil
}

func (s *StubTripRepo) Update(ctx context.Context, trip Trip) (bool, error) {
	if _, ok := s.data[trip.ID]; !ok {
		return false, nil
	}
	s.data[trip.ID] = trip
	return true, nil
}

func (s *StubTripRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubTripRepo) Cleanup() {
	s.data = map[string]Trip{}
}

func sortNewestFirst(trips []Trip) {
	sort.Slice(trips, func(i, j int) bool {
		if !trips[i].Date.Equal(trips[j].Date) {
			return trips[i].Date.After(trips[j].Date)
		}
		return trips[i].CreatedAt.After(trips[j].CreatedAt)
	})
}
