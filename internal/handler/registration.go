package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucaskane/eventboard/internal/model"
	"github.com/lucaskane/eventboard/internal/service"
)

// RegistrationHandler holds the HTTP handlers for the registration ledger.
type RegistrationHandler struct {
	svc *service.RegistrationService
}

// NewRegistrationHandler constructs a RegistrationHandler.
func NewRegistrationHandler(svc *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

// Register handles POST /api/registrations
// Payment is mocked: every registration is created confirmed and paid.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	principalID, ok := PrincipalID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req model.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	reg, err := h.svc.Register(r.Context(), principalID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	registrationsCreatedTotal.Inc()
	writeJSON(w, http.StatusCreated, reg)
}

// MyRegistrations handles GET /api/registrations/my-registrations
func (h *RegistrationHandler) MyRegistrations(w http.ResponseWriter, r *http.Request) {
	principalID, ok := PrincipalID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	regs, err := h.svc.ListMyRegistrations(r.Context(), principalID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if regs == nil {
		regs = []model.UserRegistration{}
	}

	writeJSON(w, http.StatusOK, regs)
}

// Attendees handles GET /api/registrations/event/{eventId}/attendees
// Organizer only.
func (h *RegistrationHandler) Attendees(w http.ResponseWriter, r *http.Request) {
	principalID, ok := PrincipalID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	attendees, err := h.svc.ListAttendees(r.Context(), principalID, chi.URLParam(r, "eventId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if attendees == nil {
		attendees = []model.Attendee{}
	}

	writeJSON(w, http.StatusOK, attendees)
}
