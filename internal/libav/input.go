// Package libav wraps the FFmpeg libav* libraries (through the go-astiav
// binding) behind the small set of demux and decode operations the frame
// source needs. Nothing outside this package touches binding types.
package libav

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/asticode/go-astiav"
)

// Info describes the video stream selected at open time.
type Info struct {
	Codec       string
	Width       int
	Height      int
	PixelFormat string
	StreamIndex int
	Streams     int
	FrameRate   float64
	Duration    time.Duration
}

// Input owns the native state bound to one open container: the demuxer
// handle, the decoder context for the first video stream, and one reusable
// packet buffer. Read and decode calls are only valid between Open and
// Close. Input is not safe for concurrent use.
type Input struct {
	fmtCtx *astiav.FormatContext
	decCtx *astiav.CodecContext
	pkt    *astiav.Packet
	stream int
	info   Info
}

// Open opens the container at path and prepares a decoder for its first
// video stream. The stages run in order: open input, probe stream info,
// scan for a video stream, resolve and open a decoder, allocate the reusable
// packet. Each stage failure is wrapped with its taxonomy sentinel, and
// everything acquired before the failure is released before returning.
func Open(path string) (*Input, error) {
	setupNativeLog()

	in := &Input{stream: -1}

	in.fmtCtx = astiav.AllocFormatContext()
	if in.fmtCtx == nil {
		return nil, fmt.Errorf("%w: cannot allocate format context", ErrContainerOpen)
	}
	if err := in.fmtCtx.OpenInput(path, nil, nil); err != nil {
		in.Close()
		return nil, fmt.Errorf("%w: %w", ErrContainerOpen, err)
	}

	if err := in.fmtCtx.FindStreamInfo(nil); err != nil {
		in.Close()
		return nil, fmt.Errorf("%w: %w", ErrStreamProbe, err)
	}

	var video *astiav.Stream
	for _, s := range in.fmtCtx.Streams() {
		if s.CodecParameters().MediaType() == astiav.MediaTypeVideo {
			video = s
			break
		}
	}
	if video == nil {
		in.Close()
		return nil, ErrNoVideoStream
	}
	in.stream = video.Index()

	params := video.CodecParameters()
	dec := astiav.FindDecoder(params.CodecID())
	if dec == nil {
		in.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCodec, params.CodecID().Name())
	}

	in.decCtx = astiav.AllocCodecContext(dec)
	if in.decCtx == nil {
		in.Close()
		return nil, fmt.Errorf("%w: cannot allocate codec context", ErrDecoderInit)
	}
	if err := params.ToCodecContext(in.decCtx); err != nil {
		in.Close()
		return nil, fmt.Errorf("%w: %w", ErrDecoderInit, err)
	}
	if err := in.decCtx.Open(dec, nil); err != nil {
		in.Close()
		return nil, fmt.Errorf("%w: %w", ErrDecoderInit, err)
	}

	in.pkt = astiav.AllocPacket()
	if in.pkt == nil {
		in.Close()
		return nil, fmt.Errorf("%w: cannot allocate packet", ErrBufferAlloc)
	}

	in.info = Info{
		Codec:       dec.Name(),
		Width:       params.Width(),
		Height:      params.Height(),
		PixelFormat: pixelFormatName(in.decCtx.PixelFormat()),
		StreamIndex: video.Index(),
		Streams:     len(in.fmtCtx.Streams()),
		FrameRate:   rationalFloat(video.AvgFrameRate()),
		Duration:    containerDuration(in.fmtCtx.Duration()),
	}

	return in, nil
}

// Info returns the probe metadata captured at open time.
func (in *Input) Info() Info {
	return in.info
}

// VideoStream returns the resolved video stream index.
func (in *Input) VideoStream() int {
	return in.stream
}

// ReadUnit reads the next compressed unit from the container into the
// reusable packet. Returns io.EOF when the container is exhausted. The unit
// may belong to any stream; callers check UnitStream and either submit or
// drop it.
func (in *Input) ReadUnit() error {
	if err := in.fmtCtx.ReadFrame(in.pkt); err != nil {
		if errors.Is(err, astiav.ErrEof) {
			return io.EOF
		}
		return fmt.Errorf("libav: read unit: %w", err)
	}
	return nil
}

// UnitStream returns the stream index of the currently held unit.
func (in *Input) UnitStream() int {
	return in.pkt.StreamIndex()
}

// UnitSize returns the payload size in bytes of the currently held unit.
func (in *Input) UnitSize() int {
	return in.pkt.Size()
}

// DropUnit discards the currently held unit without submitting it.
func (in *Input) DropUnit() {
	in.pkt.Unref()
}

// SubmitUnit sends the currently held unit to the decoder. The unit is
// released whether or not the decoder accepts it; a rejected unit is gone.
func (in *Input) SubmitUnit() error {
	defer in.pkt.Unref()
	if err := in.decCtx.SendPacket(in.pkt); err != nil {
		return fmt.Errorf("libav: submit unit: %w", err)
	}
	return nil
}

// SubmitEOS signals end-of-stream to the decoder, switching it into drain
// mode. Must be called at most once per Input.
func (in *Input) SubmitEOS() error {
	if err := in.decCtx.SendPacket(nil); err != nil {
		return fmt.Errorf("libav: submit end-of-stream: %w", err)
	}
	return nil
}

// ReceivePicture attempts to pull one decoded picture from the decoder.
// It returns ErrNeedsInput when the decoder wants more compressed units,
// ErrDrained when a flushed decoder has nothing left, and a wrapped native
// error on genuine decode failure. On success the returned Picture owns a
// freshly allocated frame.
func (in *Input) ReceivePicture() (*Picture, error) {
	f := astiav.AllocFrame()
	if f == nil {
		return nil, fmt.Errorf("%w: cannot allocate frame", ErrBufferAlloc)
	}
	if err := in.decCtx.ReceiveFrame(f); err != nil {
		f.Free()
		switch {
		case errors.Is(err, astiav.ErrEagain):
			return nil, ErrNeedsInput
		case errors.Is(err, astiav.ErrEof):
			return nil, ErrDrained
		default:
			return nil, fmt.Errorf("libav: receive picture: %w", err)
		}
	}
	return &Picture{frame: f}, nil
}

// Close releases the packet buffer, the decoder context and the container
// handle, in that order. Each field is independently nil-guarded, so Close
// is idempotent and safe after a partially failed Open.
func (in *Input) Close() error {
	if in.pkt != nil {
		in.pkt.Free()
		in.pkt = nil
	}
	if in.decCtx != nil {
		in.decCtx.Free()
		in.decCtx = nil
	}
	if in.fmtCtx != nil {
		in.fmtCtx.CloseInput()
		in.fmtCtx.Free()
		in.fmtCtx = nil
	}
	return nil
}

// rationalFloat converts a frame-rate rational to a float, guarding the
// zero-denominator rationals some containers report.
func rationalFloat(r astiav.Rational) float64 {
	if r.Den() == 0 {
		return 0
	}
	return float64(r.Num()) / float64(r.Den())
}

// containerDuration converts the container duration from AV_TIME_BASE
// microseconds. Containers with unknown duration report a negative value.
func containerDuration(d int64) time.Duration {
	if d <= 0 {
		return 0
	}
	return time.Duration(d) * time.Microsecond
}
