package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/vowcraft/vowcraft/internal/guests"
)

type rsvpPayload struct {
	WeddingID uuid.UUID `json:"wedding_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Attending bool      `json:"attending"`
	PlusOnes  int       `json:"plus_ones,omitempty"`
	Message   string    `json:"message,omitempty"`
}

func (api *API) registerGuestRoutes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	mux.HandleFunc("POST "+joinPath(base, "rsvp"), api.handleRSVPSubmit)
	mux.HandleFunc("GET "+joinPath(base, "sites")+"/{id}/guests", api.handleGuestList)
}

func (api *API) handleRSVPSubmit(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.guests == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload rsvpPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	guest, err := api.guests.Submit(r.Context(), guests.SubmitRSVPRequest{
		WeddingID: payload.WeddingID,
		Name:      payload.Name,
		Email:     payload.Email,
		Attending: payload.Attending,
		PlusOnes:  payload.PlusOnes,
		Message:   payload.Message,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, guest)
}

func (api *API) handleGuestList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.guests == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	weddingID, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid wedding id"})
		return
	}
	records, err := api.guests.ListForWedding(r.Context(), weddingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}
