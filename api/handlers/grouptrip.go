package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hoplytravel/hoply-api/api"
	"github.com/hoplytravel/hoply-api/config"
	"github.com/hoplytravel/hoply-api/grouptrip"
	"github.com/hoplytravel/hoply-api/models"
)

// GroupTrip exported for testing purposes
type GroupTrip struct {
	Service *grouptrip.Service
	Catalog grouptrip.Catalog
}

// CreateRoomRequest is the body for creating a group trip room
type CreateRoomRequest struct {
	Name string `json:"name"`
}

// JoinRoomRequest is the body for submitting or replacing a vote
type JoinRoomRequest struct {
	Name         string      `json:"name"`
	Destinations []string    `json:"destinations"`
	DateFrom     models.Date `json:"dateFrom"`
	DateTo       models.Date `json:"dateTo"`
}

// CreateRoomHandler creates a new group trip room with a shareable code
func (g GroupTrip) CreateRoomHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	room, err := g.Service.CreateRoom(req.Name)
	if err != nil {
		if grouptrip.IsValidation(err) {
			config.ErrorStatus("invalid room name", http.StatusBadRequest, w, err)
			return
		}
		config.ErrorStatus("failed to create room", http.StatusInternalServerError, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(room)
}

// RoomByCodeHandler returns a room by its shareable code, case-insensitively
func (g GroupTrip) RoomByCodeHandler(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	room, err := g.Service.GetRoom(code)
	if err != nil {
		config.ErrorStatus("room not found", http.StatusNotFound, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(room)
}

// JoinRoomHandler records one participant's vote in a room. Submitting
// again under the same name replaces the earlier vote.
func (g GroupTrip) JoinRoomHandler(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req JoinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	room, err := g.Service.SubmitVote(ctx, code, req.Name, req.Destinations, req.DateFrom, req.DateTo)
	if err != nil {
		switch {
		case grouptrip.IsValidation(err):
			config.ErrorStatus("invalid vote", http.StatusBadRequest, w, err)
		case errors.Is(err, grouptrip.ErrRoomNotFound):
			config.ErrorStatus("room not found", http.StatusNotFound, w, err)
		default:
			config.ErrorStatus("failed to record vote", http.StatusInternalServerError, w, err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(room)
}

// RoomResultsHandler returns the current ranking and date overlap for a
// room. Clients poll this endpoint; it never blocks on writers longer
// than a snapshot copy.
func (g GroupTrip) RoomResultsHandler(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	results, err := g.Service.ComputeResults(code)
	if err != nil {
		config.ErrorStatus("room not found", http.StatusNotFound, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(results)
}

// DestinationsHandler returns the public destination catalog
func (g GroupTrip) DestinationsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	destinations, err := g.Catalog.List(ctx)
	if err != nil {
		config.ErrorStatus("failed to get destinations", http.StatusInternalServerError, w, err)
		return
	}

	if len(destinations) == 0 {
		destinations = []models.Destination{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(destinations)
}
