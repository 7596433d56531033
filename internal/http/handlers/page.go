package handlers

import (
	_ "embed"
	"html/template"
	"net/http"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"imagepanel/internal/domain"
	"imagepanel/internal/panel"
)

//go:embed panel.html
var panelHTML string

var panelTmpl = template.Must(template.New("panel").Parse(panelHTML))

type styleOption struct {
	Value string
	Label string
}

type pageData struct {
	Styles   []styleOption
	Sizes    []string
	MaxCount int
	State    panel.Snapshot
}

var styleOptions = buildStyleOptions()

func buildStyleOptions() []styleOption {
	c := cases.Title(language.English)
	opts := make([]styleOption, 0, len(domain.Styles))
	for _, style := range domain.Styles {
		opts = append(opts, styleOption{Value: style, Label: c.String(style)})
	}
	return opts
}

// Index renders the panel page with the session's current state.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	p := a.session(w, r)
	data := pageData{
		Styles:   styleOptions,
		Sizes:    domain.Sizes,
		MaxCount: domain.MaxCount,
		State:    p.Snapshot(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := panelTmpl.Execute(w, data); err != nil {
		a.Logger.Error().Err(err).Msg("failed to render panel page")
	}
}
