package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"imagepanel/internal/http/handlers"
	"imagepanel/internal/middleware"
)

func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()
	r.Use(
		chimw.RealIP,
		chimw.Recoverer,
		middleware.RequestID,
		middleware.Logger(app.Logger),
		middleware.CORS(app.Config.AllowedOrigins),
		middleware.Locale(app.Config.DefaultLocale),
	)

	r.Get("/", app.Index)
	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/panel", func(r chi.Router) {
		r.Get("/", app.PanelState)
		r.Post("/generate", app.PanelGenerate)
		r.Post("/cancel", app.PanelCancel)
		r.Post("/reset", app.PanelReset)
		r.Route("/images", func(r chi.Router) {
			r.Delete("/", app.ImagesClear)
			r.Get("/zip", app.ImagesZip)
			r.Delete("/{id}", app.ImageDelete)
			r.Get("/{id}/download", app.ImageDownload)
		})
	})

	return r
}
