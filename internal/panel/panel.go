package panel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"imagepanel/internal/domain"
	"imagepanel/internal/imagegen"
)

// Generator issues one generation call against the backend.
type Generator interface {
	Generate(ctx context.Context, req imagegen.GenerateRequest) ([]imagegen.ImageResult, error)
}

// Form holds the panel's input fields.
type Form struct {
	Prompt string `json:"prompt"`
	Style  string `json:"style"`
	Size   string `json:"size"`
	Count  int    `json:"count"`
}

// DefaultForm returns the form's initial field values.
func DefaultForm() Form {
	return Form{
		Style: domain.DefaultStyle,
		Size:  domain.DefaultSize,
		Count: domain.DefaultCount,
	}
}

// Snapshot is a consistent copy of the panel state for rendering.
type Snapshot struct {
	Form    Form                    `json:"form"`
	Results []domain.GeneratedImage `json:"results"`
	Error   string                  `json:"error,omitempty"`
	Loading bool                    `json:"loading"`
}

// Panel owns one session's state: form fields, the bounded result history,
// the last user-facing notice, and the single in-flight generation request.
// All mutation happens under the mutex; the blocking backend call does not.
type Panel struct {
	mu      sync.Mutex
	client  Generator
	form    Form
	results []domain.GeneratedImage
	lastErr string
	loading bool

	// cancel aborts the current in-flight request; gen identifies it so a
	// superseded request's resolution never mutates state.
	cancel context.CancelFunc
	gen    uint64
}

func New(client Generator) *Panel {
	return &Panel{
		client: client,
		form:   DefaultForm(),
	}
}

// Submit runs the full request lifecycle: validate, cancel any previous
// in-flight request, call the backend, and fold the outcome into the result
// history. It blocks until this request terminates or is superseded.
func (p *Panel) Submit(ctx context.Context, form Form, locale string) Snapshot {
	form.Count = domain.ClampCount(form.Count)

	p.mu.Lock()
	p.form = form
	if strings.TrimSpace(form.Prompt) == "" {
		p.lastErr = notice(locale, noticeEmptyPrompt)
		snap := p.snapshotLocked()
		p.mu.Unlock()
		return snap
	}
	p.lastErr = ""
	p.loading = true
	if p.cancel != nil {
		p.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.gen++
	gen := p.gen
	client := p.client
	req := imagegen.GenerateRequest{
		Prompt: form.Prompt,
		Style:  form.Style,
		Size:   form.Size,
		Num:    form.Count,
	}
	p.mu.Unlock()

	images, err := client.Generate(ctx, req)
	captured := time.Now().UTC()

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		// A newer submit or an explicit cancel took over; drop this outcome.
		return p.snapshotLocked()
	}
	p.loading = false
	p.cancel = nil
	cancel()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			p.lastErr = notice(locale, noticeCancelled)
		} else {
			p.lastErr = err.Error()
		}
		return p.snapshotLocked()
	}
	records := make([]domain.GeneratedImage, 0, len(images))
	for i, img := range images {
		id := img.ID
		if id == "" {
			id = fmt.Sprintf("%d-%d", captured.UnixMilli(), i)
		}
		records = append(records, domain.GeneratedImage{
			ID:        id,
			URL:       img.URL,
			Prompt:    form.Prompt,
			Style:     form.Style,
			Size:      form.Size,
			CreatedAt: captured,
		})
	}
	p.results = append(records, p.results...)
	if len(p.results) > domain.MaxResults {
		p.results = p.results[:domain.MaxResults]
	}
	return p.snapshotLocked()
}

// Cancel aborts the in-flight request, if any. The cancelled notice is a
// soft outcome, not a hard failure; a no-op when nothing is in flight.
func (p *Panel) Cancel(locale string) Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel == nil {
		return p.snapshotLocked()
	}
	p.cancel()
	p.cancel = nil
	p.gen++
	p.loading = false
	p.lastErr = notice(locale, noticeCancelled)
	return p.snapshotLocked()
}

// ClearResults empties the result history.
func (p *Panel) ClearResults() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.results = nil
	return p.snapshotLocked()
}

// DeleteResult removes exactly one entry by id, preserving the order of the
// rest. The second return reports whether the id was present.
func (p *Panel) DeleteResult(id string) (Snapshot, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	found := false
	kept := p.results[:0]
	for _, img := range p.results {
		if img.ID == id {
			found = true
			continue
		}
		kept = append(kept, img)
	}
	p.results = kept
	return p.snapshotLocked(), found
}

// ResetForm restores the input fields to their defaults. Results and any
// displayed notice stay untouched.
func (p *Panel) ResetForm() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = DefaultForm()
	return p.snapshotLocked()
}

// Result looks up one history entry by id.
func (p *Panel) Result(id string) (domain.GeneratedImage, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, img := range p.results {
		if img.ID == id {
			return img, true
		}
	}
	return domain.GeneratedImage{}, false
}

// Results returns a copy of the result history, newest first.
func (p *Panel) Results() []domain.GeneratedImage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.GeneratedImage(nil), p.results...)
}

// Snapshot returns a consistent copy of the current state.
func (p *Panel) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Panel) snapshotLocked() Snapshot {
	return Snapshot{
		Form:    p.form,
		Results: append([]domain.GeneratedImage(nil), p.results...),
		Error:   p.lastErr,
		Loading: p.loading,
	}
}
