package http

import (
	"net/http"
	"strings"

	"github.com/vowcraft/vowcraft/internal/sites"
)

type redeemPayload struct {
	Code  string `json:"code"`
	Names string `json:"names"`
	Date  string `json:"date,omitempty"`
}

type redeemResponse struct {
	Slug   string `json:"slug"`
	SiteID string `json:"site_id"`
	Status string `json:"status"`
}

func (api *API) registerRedeemRoutes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	root := joinPath(base, "redeem")
	mux.HandleFunc("GET "+root, api.handleRedeemCheck)
	mux.HandleFunc("POST "+root, api.handleRedeem)
}

func (api *API) handleRedeemCheck(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.sites == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	if r == nil || r.URL == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "request missing"})
		return
	}
	code := strings.TrimSpace(r.URL.Query().Get("code"))
	status, err := api.sites.CheckCode(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (api *API) handleRedeem(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.sites == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload redeemPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	site, err := api.sites.Redeem(r.Context(), sites.RedeemRequest{
		Code:  payload.Code,
		Names: payload.Names,
		Date:  payload.Date,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, redeemResponse{
		Slug:   site.Slug,
		SiteID: site.ID.String(),
		Status: site.Status,
	})
}
