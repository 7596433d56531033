package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"imagepanel/internal/domain"
	"imagepanel/internal/middleware"
	"imagepanel/internal/panel"
)

type generateRequest struct {
	Prompt string `json:"prompt"`
	Style  string `json:"style"`
	Size   string `json:"size"`
	Count  int    `json:"count"`
}

// PanelGenerate runs the submit lifecycle and responds with the resulting
// panel snapshot. Validation failures that panel state can express (blank
// prompt, backend errors) come back inside the snapshot, not as HTTP errors.
func (a *App) PanelGenerate(w http.ResponseWriter, r *http.Request) {
	p := a.session(w, r)
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Style == "" {
		req.Style = domain.DefaultStyle
	}
	if req.Size == "" {
		req.Size = domain.DefaultSize
	}
	if !domain.ValidStyle(req.Style) {
		a.error(w, http.StatusBadRequest, "bad_request", domain.ErrUnknownStyle.Error())
		return
	}
	if !domain.ValidSize(req.Size) {
		a.error(w, http.StatusBadRequest, "bad_request", domain.ErrUnknownSize.Error())
		return
	}
	locale := middleware.LocaleFromContext(r.Context())
	form := panel.Form{
		Prompt: req.Prompt,
		Style:  req.Style,
		Size:   req.Size,
		Count:  req.Count,
	}
	snap := p.Submit(r.Context(), form, locale)
	a.json(w, http.StatusOK, snap)
}

// PanelCancel aborts the in-flight generation request, if any.
func (a *App) PanelCancel(w http.ResponseWriter, r *http.Request) {
	p := a.session(w, r)
	locale := middleware.LocaleFromContext(r.Context())
	a.json(w, http.StatusOK, p.Cancel(locale))
}

// PanelState returns the current snapshot without mutating anything.
func (a *App) PanelState(w http.ResponseWriter, r *http.Request) {
	p := a.session(w, r)
	a.json(w, http.StatusOK, p.Snapshot())
}

// PanelReset restores the form defaults, leaving results in place.
func (a *App) PanelReset(w http.ResponseWriter, r *http.Request) {
	p := a.session(w, r)
	a.json(w, http.StatusOK, p.ResetForm())
}

// ImageDelete removes one result by id.
func (a *App) ImageDelete(w http.ResponseWriter, r *http.Request) {
	p := a.session(w, r)
	id := chi.URLParam(r, "id")
	if id == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "id required")
		return
	}
	snap, found := p.DeleteResult(id)
	if !found {
		a.error(w, http.StatusNotFound, "not_found", "image not found")
		return
	}
	a.json(w, http.StatusOK, snap)
}

// ImagesClear empties the result history.
func (a *App) ImagesClear(w http.ResponseWriter, r *http.Request) {
	p := a.session(w, r)
	a.json(w, http.StatusOK, p.ClearResults())
}
