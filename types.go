package frameextract

import (
	"image"
	"time"

	"github.com/e7canasta/frame-extract/internal/libav"
)

// Picture represents a single decoded video picture with metadata.
//
// A Picture owns its decoded pixel data until Close is called. Exactly one
// component owns a Picture at a time; the selector closes every picture it
// discards, and the caller closes the one it keeps.
type Picture struct {
	// Seq is the zero-based decode-order ordinal of this picture
	Seq uint64
	// TraceID is a unique identifier for tracing a picture through logs
	TraceID string
	// Width in pixels
	Width int
	// Height in pixels
	Height int
	// Format is the native pixel format name (e.g. "yuv420p")
	Format string

	av     *libav.Picture
	closed bool
}

// Close releases the picture's decoded pixel data. Safe to call multiple
// times.
func (p *Picture) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if p.av != nil {
		p.av.Close()
		p.av = nil
	}
	return nil
}

// Raster is an interleaved RGB24 image with a Go-owned pixel buffer. Its
// lifetime is independent from the Picture it was converted from.
type Raster struct {
	// Width in pixels
	Width int
	// Height in pixels
	Height int
	// Pix holds exactly 3*Width*Height bytes of interleaved RGB, row-major,
	// top row first, no padding between rows
	Pix []byte
}

// Image converts the raster to a stdlib RGBA image, for callers that want
// to re-encode with image/png or image/jpeg instead of PPM.
//
// Adds an alpha channel with value 255 (fully opaque).
func (r *Raster) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for i := 0; i < r.Width*r.Height; i++ {
		img.Pix[i*4+0] = r.Pix[i*3+0] // R
		img.Pix[i*4+1] = r.Pix[i*3+1] // G
		img.Pix[i*4+2] = r.Pix[i*3+2] // B
		img.Pix[i*4+3] = 255          // A (opaque)
	}
	return img
}

// Config contains configuration for a file-backed frame source.
type Config struct {
	// Path is the input container path (required)
	Path string
}

// SourceInfo describes the video stream selected at open time.
type SourceInfo struct {
	// Path is the input container path
	Path string
	// Codec is the resolved decoder name (e.g. "h264")
	Codec string
	// Width is the stream's declared width in pixels
	Width int
	// Height is the stream's declared height in pixels
	Height int
	// PixelFormat is the native pixel format name
	PixelFormat string
	// StreamIndex is the index of the selected video stream
	StreamIndex int
	// Streams is the total number of streams in the container
	Streams int
	// FrameRate is the stream's average frame rate, 0 if unknown
	FrameRate float64
	// Duration is the container duration, 0 if unknown
	Duration time.Duration
}

// SourceStats contains counters accumulated while walking a source.
type SourceStats struct {
	// UnitsRead is the number of compressed units pulled from the container
	UnitsRead uint64
	// UnitsSkipped is the number of units discarded for belonging to
	// non-video streams
	UnitsSkipped uint64
	// UnitsRejected is the number of video units the decoder refused
	UnitsRejected uint64
	// BytesRead is the total compressed payload read
	BytesRead uint64
	// Decoded is the number of pictures produced, flush included
	Decoded uint64
	// Flushed is the number of pictures drained after end-of-stream
	Flushed uint64
	// State is the source state ("new", "reading", "flushing", "done",
	// "closed")
	State string
}

// sourceState tracks the decode loop phase across Next calls.
type sourceState int

const (
	stateNew sourceState = iota
	stateReading
	stateFlushing
	stateDone
	stateClosed
)

// String returns a human-readable string representation of the state.
func (s sourceState) String() string {
	switch s {
	case stateNew:
		return "new"
	case stateReading:
		return "reading"
	case stateFlushing:
		return "flushing"
	case stateDone:
		return "done"
	case stateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
