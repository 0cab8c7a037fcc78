package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Aryan1212a/TripSync/internal/external"
	"github.com/go-chi/chi/v5"
)

// ExternalHandler exposes the weather and places pass-through endpoints.
type ExternalHandler struct {
	weather *external.WeatherClient
	places  *external.PlacesClient
}

// NewExternalHandler constructs a handler with the provided clients.
func NewExternalHandler(weather *external.WeatherClient, places *external.PlacesClient) *ExternalHandler {
	return &ExternalHandler{weather: weather, places: places}
}

// ExternalRouter registers the external API routes. They are public, as
// in the original system.
func ExternalRouter(r chi.Router, weather *external.WeatherClient, places *external.PlacesClient) {
	handler := NewExternalHandler(weather, places)

	r.Get("/weather/{city}", handler.Weather)
	r.Get("/places/search", handler.SearchPlaces)
	r.Get("/places/details/{xid}", handler.PlaceDetails)
}

func (h *ExternalHandler) Weather(w http.ResponseWriter, r *http.Request) {
	report, err := h.weather.Current(r.Context(), chi.URLParam(r, "city"))
	if err != nil {
		writeExternalError(w, err, "Weather data not found")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ExternalHandler) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		writeError(w, http.StatusBadRequest, "city is required")
		return
	}

	attractions, err := h.places.Search(r.Context(), city)
	if err != nil {
		writeExternalError(w, err, "City not found")
		return
	}
	writeJSON(w, http.StatusOK, attractions)
}

func (h *ExternalHandler) PlaceDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.places.Details(r.Context(), chi.URLParam(r, "xid"))
	if err != nil {
		writeExternalError(w, err, "Place not found")
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func writeExternalError(w http.ResponseWriter, err error, notFound string) {
	switch {
	case errors.Is(err, external.ErrMissingKey):
		writeError(w, http.StatusInternalServerError, "API key missing")
	case errors.Is(err, external.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	default:
		writeError(w, http.StatusBadGateway, "upstream request failed")
	}
}
