package frameextract

import (
	"errors"

	"github.com/e7canasta/frame-extract/internal/libav"
)

// Open and conversion errors - Re-export internal sentinels as stable contract
var (
	ErrContainerOpen    = libav.ErrContainerOpen
	ErrStreamProbe      = libav.ErrStreamProbe
	ErrNoVideoStream    = libav.ErrNoVideoStream
	ErrUnsupportedCodec = libav.ErrUnsupportedCodec
	ErrDecoderInit      = libav.ErrDecoderInit
	ErrConversionSetup  = libav.ErrConversionSetup
	ErrBufferAlloc      = libav.ErrBufferAlloc
)

// Selection and lifecycle errors.
var (
	// ErrFrameNotFound is returned when the requested ordinal exceeds the
	// available picture count. It is the expected outcome for too-large
	// indexes, not an internal failure.
	ErrFrameNotFound = errors.New("frame-extract: frame not found")
	// ErrNegativeIndex is returned for ordinals below zero, before any
	// picture is pulled
	ErrNegativeIndex = errors.New("frame-extract: negative frame index")
	// ErrAlreadyOpen is returned when Open is called on an open source
	ErrAlreadyOpen = errors.New("frame-extract: source already open")
	// ErrNotOpen is returned when Next is called before Open
	ErrNotOpen = errors.New("frame-extract: source not open")
	// ErrSourceClosed is returned when a closed source is used again
	ErrSourceClosed = errors.New("frame-extract: source is closed")
	// ErrEmptyPicture is returned when a picture without pixel data is
	// handed to the converter
	ErrEmptyPicture = errors.New("frame-extract: picture has no pixel data")
)
