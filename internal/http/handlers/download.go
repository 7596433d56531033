package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"imagepanel/internal/domain"
	"imagepanel/pkg/zip"
)

// maxImageBytes bounds how much gets proxied per image.
const maxImageBytes = 32 << 20

// ImageDownload proxies the stored image URL back to the browser as an
// attachment under a generated filename.
func (a *App) ImageDownload(w http.ResponseWriter, r *http.Request) {
	p := a.session(w, r)
	id := chi.URLParam(r, "id")
	if id == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "id required")
		return
	}
	img, ok := p.Result(id)
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "image not found")
		return
	}
	data, mime, err := a.fetchImage(r.Context(), img.URL)
	if err != nil {
		a.error(w, http.StatusBadGateway, "bad_gateway", "failed to fetch image")
		return
	}
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", downloadFilename(img, mime)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ImagesZip bundles every current result into one archive. Individual fetch
// failures drop that entry rather than failing the whole download.
func (a *App) ImagesZip(w http.ResponseWriter, r *http.Request) {
	p := a.session(w, r)
	results := p.Results()
	if len(results) == 0 {
		a.error(w, http.StatusNotFound, "not_found", "no images to archive")
		return
	}
	var images []zip.Image
	for _, img := range results {
		data, mime, err := a.fetchImage(r.Context(), img.URL)
		if err != nil {
			continue
		}
		images = append(images, zip.Image{Filename: downloadFilename(img, mime), Data: data})
	}
	archive := zip.Archive(images)
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", "attachment; filename=images.zip")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

func (a *App) fetchImage(ctx context.Context, url string) ([]byte, string, error) {
	lower := strings.ToLower(strings.TrimSpace(url))
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return nil, "", errors.New("unsupported image url")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := a.fetcher.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch image: http %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, "", err
	}
	mime := resp.Header.Get("Content-Type")
	if mime == "" {
		mime = "application/octet-stream"
	}
	return data, mime, nil
}

// downloadFilename derives a stable attachment name from the record id,
// borrowing the extension from the URL path or the MIME type.
func downloadFilename(img domain.GeneratedImage, mime string) string {
	ext := path.Ext(strings.SplitN(path.Base(img.URL), "?", 2)[0])
	if ext == "" {
		switch {
		case strings.Contains(mime, "jpeg"):
			ext = ".jpg"
		case strings.Contains(mime, "webp"):
			ext = ".webp"
		default:
			ext = ".png"
		}
	}
	return fmt.Sprintf("image-%s%s", img.ID, ext)
}
