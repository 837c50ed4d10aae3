package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucaskane/eventboard/internal/model"
	"github.com/lucaskane/eventboard/internal/service"
)

// EventHandler holds the HTTP handlers for the event catalog.
type EventHandler struct {
	svc *service.EventService
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// CreateEvent handles POST /api/events
// The authenticated caller becomes the event's organizer.
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	principalID, ok := PrincipalID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req model.CreateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	event, err := h.svc.CreateEvent(r.Context(), principalID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Event created",
		"eventId": event.ID,
	})
}

// ListEvents handles GET /api/events?search=&location=
// Public; returns a JSON array ordered by date ascending.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	filter := model.EventFilter{
		Search:   r.URL.Query().Get("search"),
		Location: r.URL.Query().Get("location"),
	}

	events, err := h.svc.ListEvents(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	// Return an empty array rather than null for better client compatibility.
	if events == nil {
		events = []model.Event{}
	}

	writeJSON(w, http.StatusOK, events)
}

// GetEvent handles GET /api/events/{id}
// Public; the response includes the organizer's username.
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.svc.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// DeleteEvent handles DELETE /api/events/{id}
// Only the organizer may delete; anyone else sees the same 404 as a missing
// event.
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	principalID, ok := PrincipalID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.svc.DeleteEvent(r.Context(), principalID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Event deleted"})
}
