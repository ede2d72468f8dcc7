package ppm

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEncode_GoldenBytes verifies the exact on-disk layout for a tiny
// raster: header, then payload, nothing else.
func TestEncode_GoldenBytes(t *testing.T) {
	pix := []byte{
		255, 0, 0, 0, 255, 0, // row 0: red, green
		0, 0, 255, 255, 255, 255, // row 1: blue, white
		0, 0, 0, 128, 128, 128, // row 2: black, gray
	}

	var buf bytes.Buffer
	if err := Encode(&buf, 2, 3, pix); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := append([]byte("P6\n2 3\n255\n"), pix...)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("encoded bytes mismatch:\ngot  %v\nwant %v", buf.Bytes(), want)
	}
}

// TestEncode_HeaderDeclaresDimensions verifies the header round-trip
// property: a w x h raster declares "w h" and carries 3*w*h payload bytes.
func TestEncode_HeaderDeclaresDimensions(t *testing.T) {
	testCases := []struct {
		name   string
		width  int
		height int
	}{
		{"single_pixel", 1, 1},
		{"landscape", 4, 2},
		{"portrait", 2, 4},
		{"odd_width", 3, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			pix := make([]byte, 3*tc.width*tc.height)
			if err := Encode(&buf, tc.width, tc.height, pix); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			wantHeader := []byte(fmt.Sprintf("P6\n%d %d\n255\n", tc.width, tc.height))
			if !bytes.HasPrefix(buf.Bytes(), wantHeader) {
				t.Errorf("header mismatch: got %q", buf.Bytes()[:min(len(buf.Bytes()), len(wantHeader))])
			}
			if got := buf.Len() - len(wantHeader); got != 3*tc.width*tc.height {
				t.Errorf("payload length = %d, want %d", got, 3*tc.width*tc.height)
			}
		})
	}
}

// TestEncode_Validation verifies dimension and payload-length checks.
func TestEncode_Validation(t *testing.T) {
	testCases := []struct {
		name   string
		width  int
		height int
		pixLen int
		errMsg string
	}{
		{"zero_width", 0, 4, 0, "invalid dimensions"},
		{"negative_height", 4, -1, 0, "invalid dimensions"},
		{"payload_too_short", 2, 2, 11, "payload is 11 bytes"},
		{"payload_too_long", 2, 2, 13, "payload is 13 bytes"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Encode(&bytes.Buffer{}, tc.width, tc.height, make([]byte, tc.pixLen))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tc.errMsg)
			}
		})
	}
}

// TestWriteFile_RoundTrip verifies that WriteFile persists exactly the
// encoded bytes.
func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ppm")
	pix := []byte{1, 2, 3, 4, 5, 6}

	if err := WriteFile(path, 2, 1, pix); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	want := append([]byte("P6\n2 1\n255\n"), pix...)
	if !bytes.Equal(got, want) {
		t.Errorf("file bytes mismatch: got %v, want %v", got, want)
	}
}

// TestWriteFile_RemovesPartialOnError verifies no partial file survives a
// failed encode.
func TestWriteFile_RemovesPartialOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ppm")

	err := WriteFile(path, 2, 2, []byte{1, 2, 3})
	if err == nil {
		t.Fatal("expected error for short payload, got nil")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("partial file left behind at %s", path)
	}
}

// TestWriteFile_CreateFailure verifies create errors are surfaced.
func TestWriteFile_CreateFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.ppm")

	err := WriteFile(path, 1, 1, []byte{0, 0, 0})
	if err == nil {
		t.Fatal("expected error for unwritable path, got nil")
	}
	if !strings.Contains(err.Error(), "ppm: create") {
		t.Errorf("error %q does not name the create stage", err.Error())
	}
}
