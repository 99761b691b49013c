package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
)

type ElectricMultiplierDTO struct {
	Multiplier float64 `json:"multiplier"`
}

type SettingsHandler struct {
	settingsService SettingsService
}

func NewSettingsHandler(settingsService SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService}
}

func (handler *SettingsHandler) GetElectricMultiplier(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	multiplier := handler.settingsService.GetElectricMultiplier(r.Context())

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ElectricMultiplierDTO{Multiplier: multiplier.InexactFloat64()}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *SettingsHandler) SetElectricMultiplier(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto ElectricMultiplierDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stored, err := handler.settingsService.SetElectricMultiplier(r.Context(), decimal.NewFromFloat(dto.Multiplier))
	if err != nil {
		if errors.Is(err, ErrNonPositiveMultiplier) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ElectricMultiplierDTO{Multiplier: stored.InexactFloat64()}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
