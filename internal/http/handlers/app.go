package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"imagepanel/internal/infra"
	"imagepanel/internal/panel"
)

const sessionCookie = "panel_session"

// App is the handler container. It owns the per-session panel store and the
// HTTP client used to fetch image bytes for downloads.
type App struct {
	Config   *infra.Config
	Logger   infra.Logger
	Sessions *panel.Store

	fetcher *http.Client
}

func NewApp(cfg *infra.Config, logger infra.Logger, sessions *panel.Store) *App {
	return &App{
		Config:   cfg,
		Logger:   logger,
		Sessions: sessions,
		fetcher:  &http.Client{Timeout: 30 * time.Second},
	}
}

// session resolves the caller's panel, minting a session cookie on first
// contact.
func (a *App) session(w http.ResponseWriter, r *http.Request) *panel.Panel {
	var sid string
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		sid = c.Value
	}
	if sid == "" {
		sid = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    sid,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return a.Sessions.Get(sid)
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]string{"error": code, "message": message})
}
