package libav

import (
	"github.com/asticode/go-astiav"
)

// Picture is the handle for one decoded video frame. It owns the underlying
// native frame and all its reference buffers until Close is called.
//
// A Picture is produced by Input.ReceivePicture with a freshly allocated
// native frame, so it stays valid after the Input that produced it is closed.
type Picture struct {
	frame *astiav.Frame
}

// Width returns the decoded frame width in pixels.
func (p *Picture) Width() int {
	return p.frame.Width()
}

// Height returns the decoded frame height in pixels.
func (p *Picture) Height() int {
	return p.frame.Height()
}

// FormatName returns the native pixel format name (e.g. "yuv420p").
func (p *Picture) FormatName() string {
	return pixelFormatName(p.frame.PixelFormat())
}

// Close releases the native frame and its reference buffers. Safe to call
// multiple times.
func (p *Picture) Close() {
	if p.frame != nil {
		p.frame.Free()
		p.frame = nil
	}
}

func pixelFormatName(pf astiav.PixelFormat) string {
	if n := pf.Name(); n != "" {
		return n
	}
	return "unknown"
}
