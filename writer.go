package frameextract

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/e7canasta/frame-extract/internal/ppm"
)

// EncodePPM writes the raster to w as binary PPM (P6): the ASCII header
// "P6\n<width> <height>\n255\n" followed by the packed pixel payload.
func EncodePPM(w io.Writer, r *Raster) error {
	if r == nil {
		return fmt.Errorf("frame-extract: nil raster")
	}
	return ppm.Encode(w, r.Width, r.Height, r.Pix)
}

// SavePPM persists the raster as a PPM file at path. A partial file left
// behind by a failed write is removed.
func SavePPM(path string, r *Raster) error {
	if r == nil {
		return fmt.Errorf("frame-extract: nil raster")
	}
	if err := ppm.WriteFile(path, r.Width, r.Height, r.Pix); err != nil {
		return err
	}

	slog.Debug("frame-extract: raster saved",
		"path", path,
		"resolution", fmt.Sprintf("%dx%d", r.Width, r.Height),
		"payload_bytes", len(r.Pix),
	)
	return nil
}
