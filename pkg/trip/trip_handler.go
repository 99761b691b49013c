package trip

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type TripDTO struct {
	ID                string  `json:"id,omitempty"`
	Date              string  `json:"date"`
	AmountReceived    float64 `json:"amountReceived"`
	DistanceKm        float64 `json:"distanceKm"`
	FuelEfficiencyKmL float64 `json:"fuelEfficiencyKmPerLiter"`
	FuelPricePerL     float64 `json:"fuelPricePerLiter"`
	FuelCost          float64 `json:"fuelCost"`
	Profit            float64 `json:"profit"`
	CreatedAt         int64   `json:"createdAt,omitempty"`
}

type TripHandler struct {
	tripService TripService
}

func NewTripHandler(tripService TripService) *TripHandler {
	return &TripHandler{tripService}
}

func (handler *TripHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new trip")
	w.Header().Set("Content-Type", "application/json")

	var tripDTO TripDTO
	if err := json.NewDecoder(r.Body).Decode(&tripDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	trip, err := dtoToTrip(tripDTO)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	createdTrip, err := handler.tripService.Create(r.Context(), trip)
	if err != nil {
		writeTripError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(tripToDTO(createdTrip)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetTrips lists all trips, or one calendar month when both the year and
// month query parameters are present. Order is date descending.
func (handler *TripHandler) GetTrips(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var trips []Trip
	var err error
	yearParam := r.URL.Query().Get("year")
	monthParam := r.URL.Query().Get("month")
	if yearParam != "" || monthParam != "" {
		year, month, paramErr := parseYearMonth(yearParam, monthParam)
		if paramErr != nil {
			http.Error(w, paramErr.Error(), http.StatusBadRequest)
			return
		}
		trips, err = handler.tripService.GetByMonth(r.Context(), year, month)
	} else {
		trips, err = handler.tripService.GetAll(r.Context())
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	tripsDTO := make([]TripDTO, 0, len(trips))
	for _, trip := range trips {
		tripsDTO = append(tripsDTO, tripToDTO(trip))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(tripsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TripHandler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	tripId := vars["tripId"]

	var tripDTO TripDTO
	if err := json.NewDecoder(r.Body).Decode(&tripDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if tripDTO.ID != "" && tripDTO.ID != tripId {
		http.Error(w, "Invalid trip id in request body", http.StatusBadRequest)
		return
	}
	trip, err := dtoToTrip(tripDTO)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	trip.ID = tripId

	updatedTrip, err := handler.tripService.Update(r.Context(), trip)
	if err != nil {
		writeTripError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(tripToDTO(updatedTrip)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TripHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tripId := vars["tripId"]

	if err := handler.tripService.Delete(r.Context(), tripId); err != nil {
		writeTripError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeTripError(w http.ResponseWriter, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNonPositiveEfficiency):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrTripNotFound):
		http.Error(w, "Trip not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func parseYearMonth(yearParam, monthParam string) (int, time.Month, error) {
	year, err := strconv.Atoi(yearParam)
	if err != nil {
		return 0, 0, &ValidationError{Field: "year", Message: "must be a number"}
	}
	month, err := strconv.Atoi(monthParam)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, &ValidationError{Field: "month", Message: "must be a number between 1 and 12"}
	}
	return year, time.Month(month), nil
}

func tripToDTO(trip Trip) TripDTO {
	return TripDTO{
		ID:                trip.ID,
		Date:              trip.Date.Format(dateFormat),
		AmountReceived:    trip.AmountReceived.InexactFloat64(),
		DistanceKm:        trip.DistanceKm.InexactFloat64(),
		FuelEfficiencyKmL: trip.FuelEfficiencyKmL.InexactFloat64(),
		FuelPricePerL:     trip.FuelPricePerL.InexactFloat64(),
		FuelCost:          trip.FuelCost.InexactFloat64(),
		Profit:            trip.Profit.InexactFloat64(),
		CreatedAt:         trip.CreatedAt.UnixMilli(),
	}
}

func dtoToTrip(tripDTO TripDTO) (Trip, error) {
	var date time.Time
	if tripDTO.Date != "" {
		parsed, err := time.Parse(dateFormat, tripDTO.Date)
		if err != nil {
			return Trip{}, &ValidationError{Field: "date", Message: "must be formatted as YYYY-MM-DD"}
		}
		date = parsed
	}

	return Trip{
		ID:                tripDTO.ID,
		Date:              date,
		AmountReceived:    decimal.NewFromFloat(tripDTO.AmountReceived),
		DistanceKm:        decimal.NewFromFloat(tripDTO.DistanceKm),
		FuelEfficiencyKmL: decimal.NewFromFloat(tripDTO.FuelEfficiencyKmL),
		FuelPricePerL:     decimal.NewFromFloat(tripDTO.FuelPricePerL),
	}, nil
}
