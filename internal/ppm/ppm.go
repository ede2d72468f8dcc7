// Package ppm serializes packed RGB24 rasters as binary PPM (P6) files.
//
// The on-disk format is fixed: the ASCII header "P6\n<width> <height>\n255\n"
// followed immediately by width*height pixels of 3 bytes each, row-major,
// top row first, rows contiguous. Callers hand in stride-free pixel data;
// the payload is written exactly as given.
package ppm

import (
	"fmt"
	"io"
	"os"
)

// Encode writes one raster to w in P6 format. The pixel slice must hold
// exactly 3*width*height bytes.
func Encode(w io.Writer, width, height int, pix []byte) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("ppm: invalid dimensions %dx%d", width, height)
	}
	if len(pix) != 3*width*height {
		return fmt.Errorf("ppm: payload is %d bytes, want %d for %dx%d", len(pix), 3*width*height, width, height)
	}

	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("ppm: write header: %w", err)
	}
	if _, err := w.Write(pix); err != nil {
		return fmt.Errorf("ppm: write payload: %w", err)
	}
	return nil
}

// WriteFile encodes one raster into a newly created file at path. A partial
// file left behind by a failed write is removed.
func WriteFile(path string, width, height int, pix []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ppm: create %s: %w", path, err)
	}

	if err := Encode(f, width, height, pix); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("ppm: close %s: %w", path, err)
	}
	return nil
}
