package frameextract

import (
	"log/slog"

	"github.com/e7canasta/frame-extract/internal/libav"
)

// ToRGB converts one decoded picture into an interleaved RGB24 raster of
// identical dimensions, bilinear-resampling chroma where the native format
// is subsampled.
//
// The conversion is stateless: a fresh conversion context is built per call
// and released before returning. Fails with ErrEmptyPicture for a nil or
// already-closed picture, ErrConversionSetup when no context can be built
// for the picture's format/size pair, and ErrBufferAlloc when the
// destination buffer cannot be allocated. The source picture is not
// mutated or consumed; closing it stays the caller's job.
func ToRGB(pic *Picture) (*Raster, error) {
	if pic == nil || pic.av == nil {
		return nil, ErrEmptyPicture
	}

	w, h, pix, err := libav.ConvertRGB(pic.av)
	if err != nil {
		return nil, err
	}

	slog.Debug("frame-extract: picture converted to rgb24",
		"seq", pic.Seq,
		"trace_id", pic.TraceID,
		"source_format", pic.Format,
		"bytes", len(pix),
	)
	return &Raster{Width: w, Height: h, Pix: pix}, nil
}
