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

// EnquiryHandler handles customer enquiry HTTP requests. There is no
// update endpoint; enquiries are immutable once submitted.
type EnquiryHandler struct {
	enquiries repository.EnquiryRepository
}

// NewEnquiryHandler creates a new enquiry handler.
func NewEnquiryHandler(enquiries repository.EnquiryRepository) *EnquiryHandler {
	return &EnquiryHandler{enquiries: enquiries}
}

// List handles GET /api/enquiries
func (h *EnquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	enquiries, err := h.enquiries.List(r.Context())
	if err != nil {
		log.Printf("Error fetching enquiries: %v", err)
		response.Error(w, apierror.InternalError("Failed to fetch enquiries"))
		return
	}
	response.OK(w, enquiries)
}

// Create handles POST /api/enquiries
func (h *EnquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var enquiry model.Enquiry
	if err := json.NewDecoder(r.Body).Decode(&enquiry); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	created, err := h.enquiries.Create(r.Context(), enquiry)
	if err != nil {
		log.Printf("Error creating enquiry: %v", err)
		response.Error(w, apierror.InternalError("Failed to create enquiry"))
		return
	}
	response.Created(w, created)
}

// Delete handles DELETE /api/enquiries/{id}
func (h *EnquiryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, apierror.NotFound("Enquiry not found"))
		return
	}

	err = h.enquiries.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Error(w, apierror.NotFound("Enquiry not found"))
		return
	}
	if err != nil {
		log.Printf("Error deleting enquiry %d: %v", id, err)
		response.Error(w, apierror.InternalError("Failed to delete enquiry"))
		return
	}
	response.Success(w)
}
