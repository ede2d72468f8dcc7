package frameextract_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	frameextract "github.com/e7canasta/frame-extract"
)

// testMediaPath returns the sample video configured for integration runs,
// skipping the test when none is set.
func testMediaPath(t *testing.T) string {
	t.Helper()
	path := os.Getenv("FRAMEEXTRACT_TEST_MEDIA")
	if path == "" {
		t.Skip("Skipping integration test (set FRAMEEXTRACT_TEST_MEDIA to a video file)")
	}
	return path
}

// countPictures walks a fresh source over the whole file.
func countPictures(t *testing.T, path string) int {
	t.Helper()

	src, err := frameextract.NewFileSource(frameextract.Config{Path: path})
	if err != nil {
		t.Fatalf("NewFileSource() failed: %v", err)
	}
	if err := src.Open(); err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer src.Close()

	count := 0
	for {
		pic, err := src.Next()
		if errors.Is(err, io.EOF) {
			return count
		}
		if err != nil {
			t.Fatalf("Next() failed at picture %d: %v", count, err)
		}
		pic.Close()
		count++
	}
}

// nthFresh runs a complete open-select cycle on its own source.
func nthFresh(t *testing.T, path string, n int) (*frameextract.Picture, error) {
	t.Helper()

	src, err := frameextract.NewFileSource(frameextract.Config{Path: path})
	if err != nil {
		t.Fatalf("NewFileSource() failed: %v", err)
	}
	if err := src.Open(); err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer src.Close()

	return frameextract.Nth(src, n)
}

// TestIntegration_DecodeWalk pulls every picture from the sample file and
// checks ordering and counters
func TestIntegration_DecodeWalk(t *testing.T) {
	path := testMediaPath(t)

	src, err := frameextract.NewFileSource(frameextract.Config{Path: path})
	if err != nil {
		t.Fatalf("NewFileSource() failed: %v", err)
	}
	if err := src.Open(); err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer src.Close()

	info := src.Info()
	if info.Codec == "" {
		t.Error("Info().Codec empty after Open")
	}

	count := 0
	for {
		pic, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Next() failed at picture %d: %v", count, err)
		}
		if pic.Seq != uint64(count) {
			t.Errorf("picture %d has Seq=%d, want %d", count, pic.Seq, count)
		}
		if pic.Width <= 0 || pic.Height <= 0 {
			t.Errorf("picture %d has empty dimensions %dx%d", count, pic.Width, pic.Height)
		}
		pic.Close()
		count++
	}

	if count == 0 {
		t.Fatal("sample file produced no pictures")
	}

	stats := src.Stats()
	if stats.Decoded != uint64(count) {
		t.Errorf("Stats().Decoded = %d, want %d", stats.Decoded, count)
	}
	if stats.State != "done" {
		t.Errorf("Stats().State = %q, want %q", stats.State, "done")
	}

	// Exhausted means exhausted: later pulls keep reporting the end
	if _, err := src.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() after exhaustion = %v, want io.EOF", err)
	}

	t.Logf("✅ Decoded %d pictures (%d units read, %d flushed)", count, stats.UnitsRead, stats.Flushed)
}

// TestIntegration_NthBoundary checks the exact off-by-one edge: the last
// valid ordinal succeeds and ordinal==count is not-found
func TestIntegration_NthBoundary(t *testing.T) {
	path := testMediaPath(t)

	count := countPictures(t, path)
	if count == 0 {
		t.Fatal("sample file produced no pictures")
	}

	last, err := nthFresh(t, path, count-1)
	if err != nil {
		t.Fatalf("Nth(%d) on a %d-picture file failed: %v", count-1, count, err)
	}
	last.Close()

	_, err = nthFresh(t, path, count)
	if !errors.Is(err, frameextract.ErrFrameNotFound) {
		t.Fatalf("Nth(%d) on a %d-picture file error = %v, want ErrFrameNotFound", count, count, err)
	}

	t.Logf("✅ Boundary behavior exact at count=%d", count)
}

// TestIntegration_Deterministic extracts the same ordinal twice and expects
// identical bytes
func TestIntegration_Deterministic(t *testing.T) {
	path := testMediaPath(t)

	extract := func() []byte {
		pic, err := nthFresh(t, path, 0)
		if err != nil {
			t.Fatalf("Nth(0) failed: %v", err)
		}
		defer pic.Close()

		raster, err := frameextract.ToRGB(pic)
		if err != nil {
			t.Fatalf("ToRGB() failed: %v", err)
		}

		var buf bytes.Buffer
		if err := frameextract.EncodePPM(&buf, raster); err != nil {
			t.Fatalf("EncodePPM() failed: %v", err)
		}
		return buf.Bytes()
	}

	first := extract()
	second := extract()
	if !bytes.Equal(first, second) {
		t.Error("same ordinal produced different bytes across runs")
	}

	t.Logf("✅ Deterministic output (%d bytes)", len(first))
}

// TestIntegration_EndToEnd runs the full pipeline into a file and validates
// the PPM layout against the reported picture dimensions
func TestIntegration_EndToEnd(t *testing.T) {
	path := testMediaPath(t)

	src, err := frameextract.NewFileSource(frameextract.Config{Path: path})
	if err != nil {
		t.Fatalf("NewFileSource() failed: %v", err)
	}
	if err := src.Open(); err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer src.Close()

	pic, err := frameextract.Nth(src, 0)
	if err != nil {
		t.Fatalf("Nth(0) failed: %v", err)
	}
	defer pic.Close()

	raster, err := frameextract.ToRGB(pic)
	if err != nil {
		t.Fatalf("ToRGB() failed: %v", err)
	}
	if raster.Width != pic.Width || raster.Height != pic.Height {
		t.Errorf("raster %dx%d does not match picture %dx%d", raster.Width, raster.Height, pic.Width, pic.Height)
	}
	if len(raster.Pix) != 3*raster.Width*raster.Height {
		t.Errorf("raster payload = %d bytes, want %d", len(raster.Pix), 3*raster.Width*raster.Height)
	}

	out := filepath.Join(t.TempDir(), "frame0.ppm")
	if err := frameextract.SavePPM(out, raster); err != nil {
		t.Fatalf("SavePPM() failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output back failed: %v", err)
	}

	wantHeader := fmt.Sprintf("P6\n%d %d\n255\n", raster.Width, raster.Height)
	if !bytes.HasPrefix(data, []byte(wantHeader)) {
		t.Errorf("output does not start with header %q", wantHeader)
	}
	if len(data) != len(wantHeader)+len(raster.Pix) {
		t.Errorf("output size = %d bytes, want %d", len(data), len(wantHeader)+len(raster.Pix))
	}

	t.Logf("✅ Extracted %dx%d frame to %s", raster.Width, raster.Height, out)
}
