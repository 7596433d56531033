package zip

import (
	"archive/zip"
	"bytes"
)

// Image pairs an archive filename with fetched image bytes.
type Image struct {
	Filename string
	Data     []byte
}

// Archive bundles the given images into a zip archive. Entries with no data
// are skipped; a fetch that failed upstream should not break the bundle.
func Archive(images []Image) []byte {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, img := range images {
		if len(img.Data) == 0 {
			continue
		}
		w, err := zw.Create(img.Filename)
		if err != nil {
			continue
		}
		if _, err := w.Write(img.Data); err != nil {
			return nil
		}
	}
	_ = zw.Close()
	return buf.Bytes()
}
