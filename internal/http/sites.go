package http

import (
	"net/http"
	"strings"

	"github.com/vowcraft/vowcraft/content"
	"github.com/vowcraft/vowcraft/internal/sites"
)

type siteCreatePayload struct {
	ThemeID   string         `json:"theme_id"`
	NicheSlug string         `json:"niche_slug,omitempty"`
	Preset    map[string]any `json:"preset,omitempty"`
	Names     string         `json:"names"`
	Date      string         `json:"date,omitempty"`
}

type siteContentPayload struct {
	Content content.Document `json:"content"`
}

func (api *API) registerSiteRoutes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	root := joinPath(base, "sites")
	mux.HandleFunc("POST "+root, api.handleSiteCreate)
	mux.HandleFunc("GET "+root, api.handleSiteList)
	mux.HandleFunc("GET "+root+"/{slug}", api.handleSiteGet)
	mux.HandleFunc("POST "+root+"/{id}/content", api.handleSiteSaveContent)
	mux.HandleFunc("POST "+root+"/{id}/publish", api.handleSitePublish)
}

func (api *API) handleSiteCreate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.sites == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload siteCreatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	site, err := api.sites.Create(r.Context(), sites.CreateWebsiteRequest{
		ThemeID:   payload.ThemeID,
		NicheSlug: payload.NicheSlug,
		Preset:    payload.Preset,
		Names:     payload.Names,
		Date:      payload.Date,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, site)
}

func (api *API) handleSiteList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.sites == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	records, err := api.sites.ListByOwner(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (api *API) handleSiteGet(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.sites == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	slug := strings.TrimSpace(r.PathValue("slug"))
	if slug == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "slug required"})
		return
	}
	site, err := api.sites.GetBySlug(r.Context(), slug)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, site)
}

func (api *API) handleSiteSaveContent(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.sites == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	siteID, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid site id"})
		return
	}
	var payload siteContentPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	site, err := api.sites.Save(r.Context(), sites.SaveContentRequest{
		SiteID:  siteID,
		Content: payload.Content,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, site)
}

func (api *API) handleSitePublish(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.sites == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	siteID, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid site id"})
		return
	}
	site, err := api.sites.Publish(r.Context(), siteID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, site)
}
