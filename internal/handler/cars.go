package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"dealerdrive-api/internal/model"
	"dealerdrive-api/internal/repository"
	"dealerdrive-api/pkg/apierror"
	"dealerdrive-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// CarHandler handles car inventory HTTP requests.
type CarHandler struct {
	cars repository.CarRepository
}

// NewCarHandler creates a new car handler.
func NewCarHandler(cars repository.CarRepository) *CarHandler {
	return &CarHandler{cars: cars}
}

// List handles GET /api/cars
func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	cars, err := h.cars.List(r.Context())
	if err != nil {
		log.Printf("Error fetching cars: %v", err)
		response.Error(w, apierror.InternalError("Failed to fetch cars"))
		return
	}
	response.OK(w, cars)
}

// Create handles POST /api/cars
func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var car model.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	created, err := h.cars.Create(r.Context(), car)
	if err != nil {
		log.Printf("Error creating car: %v", err)
		response.Error(w, apierror.InternalError("Failed to create car"))
		return
	}
	response.Created(w, created)
}

// Update handles PUT /api/cars/{id}
func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		// A non-numeric id can never match a record.
		response.Error(w, apierror.NotFound("Car not found"))
		return
	}

	var updates model.CarUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	updated, err := h.cars.Update(r.Context(), id, updates)
	if errors.Is(err, repository.ErrNotFound) {
		response.Error(w, apierror.NotFound("Car not found"))
		return
	}
	if err != nil {
		log.Printf("Error updating car %d: %v", id, err)
		response.Error(w, apierror.InternalError("Failed to update car"))
		return
	}
	response.OK(w, updated)
}

// Delete handles DELETE /api/cars/{id}
func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, apierror.NotFound("Car not found"))
		return
	}

	err = h.cars.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Error(w, apierror.NotFound("Car not found"))
		return
	}
	if err != nil {
		log.Printf("Error deleting car %d: %v", id, err)
		response.Error(w, apierror.InternalError("Failed to delete car"))
		return
	}
	response.Success(w)
}
