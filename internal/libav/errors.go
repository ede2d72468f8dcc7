package libav

import "errors"

// Open-time and conversion-time failures, classified per stage. The facade
// package re-exports these so callers can match them with errors.Is without
// importing this package.
var (
	// ErrContainerOpen is returned when the input path cannot be opened as a
	// supported container
	ErrContainerOpen = errors.New("frame-extract: cannot open container")
	// ErrStreamProbe is returned when stream metadata cannot be determined
	ErrStreamProbe = errors.New("frame-extract: cannot probe stream info")
	// ErrNoVideoStream is returned when the container carries no video stream
	ErrNoVideoStream = errors.New("frame-extract: no video stream in container")
	// ErrUnsupportedCodec is returned when no decoder exists for the video
	// stream's codec
	ErrUnsupportedCodec = errors.New("frame-extract: no decoder for codec")
	// ErrDecoderInit is returned when the decoder context cannot be
	// configured or opened
	ErrDecoderInit = errors.New("frame-extract: cannot initialize decoder")
	// ErrConversionSetup is returned when a pixel conversion context cannot
	// be built or executed for the picture's format and size
	ErrConversionSetup = errors.New("frame-extract: cannot convert pixel format")
	// ErrBufferAlloc is returned when a packet, frame or raster buffer
	// cannot be allocated
	ErrBufferAlloc = errors.New("frame-extract: cannot allocate buffer")
)

// Decode-loop signals. These never cross the facade boundary; the frame
// source translates them into state transitions.
var (
	// ErrNeedsInput means the decoder wants another compressed unit before
	// it can emit a picture
	ErrNeedsInput = errors.New("libav: decoder needs more input")
	// ErrDrained means the decoder has emitted everything it held; only
	// returned after end-of-stream was signalled
	ErrDrained = errors.New("libav: decoder fully drained")
)
