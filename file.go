package frameextract

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/e7canasta/frame-extract/internal/libav"
)

// FileSource produces decoded video pictures from a container file, in
// decode order. It owns the open container and decoder state and hides the
// packet-read, decode and flush mechanics behind the Source contract.
//
// A FileSource is single-pass: once the sequence ends it cannot be rewound,
// a fresh instance is needed to read the file again. It is not safe for
// concurrent use; the whole pipeline is sequential.
type FileSource struct {
	cfg  Config
	info SourceInfo

	in    *libav.Input
	state sourceState
	seq   uint64
	stats SourceStats
}

// NewFileSource creates a file-backed source with fail-fast validation.
// No container I/O happens until Open.
func NewFileSource(cfg Config) (*FileSource, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("frame-extract: input path is required")
	}

	return &FileSource{
		cfg:   cfg,
		info:  SourceInfo{Path: cfg.Path},
		state: stateNew,
	}, nil
}

// Open opens the container and prepares a decoder for its first video
// stream. It fails with one of the open taxonomy sentinels
// (ErrContainerOpen, ErrStreamProbe, ErrNoVideoStream, ErrUnsupportedCodec,
// ErrDecoderInit); whatever was acquired before the failing stage is
// released before Open returns, so a failed source needs no Close.
func (s *FileSource) Open() error {
	switch s.state {
	case stateClosed:
		return ErrSourceClosed
	case stateReading, stateFlushing, stateDone:
		return ErrAlreadyOpen
	}

	slog.Debug("frame-extract: opening container", "path", s.cfg.Path)

	in, err := libav.Open(s.cfg.Path)
	if err != nil {
		return err
	}
	s.in = in
	s.state = stateReading

	i := in.Info()
	s.info = SourceInfo{
		Path:        s.cfg.Path,
		Codec:       i.Codec,
		Width:       i.Width,
		Height:      i.Height,
		PixelFormat: i.PixelFormat,
		StreamIndex: i.StreamIndex,
		Streams:     i.Streams,
		FrameRate:   i.FrameRate,
		Duration:    i.Duration,
	}

	slog.Info("frame-extract: container opened",
		"path", s.info.Path,
		"codec", s.info.Codec,
		"resolution", fmt.Sprintf("%dx%d", s.info.Width, s.info.Height),
		"pixel_format", s.info.PixelFormat,
		"stream", s.info.StreamIndex,
		"streams", s.info.Streams,
		"fps", s.info.FrameRate,
		"duration", s.info.Duration,
	)
	return nil
}

// Next returns the next decoded picture in decode order, or io.EOF once
// the sequence is exhausted.
//
// Per-unit decode rejections are swallowed: a malformed packet is dropped
// and the walk continues with the next one, so a single bad unit cannot
// abort an extraction. A genuine decode failure ends the sequence early
// (logged, then io.EOF) rather than surfacing as an error. After the
// container runs out of units the decoder is switched into flush mode and
// drained until it reports nothing left, so pictures the codec buffered
// for reordering are still delivered.
func (s *FileSource) Next() (*Picture, error) {
	switch s.state {
	case stateNew:
		return nil, ErrNotOpen
	case stateClosed:
		return nil, ErrSourceClosed
	}

	for s.state == stateReading {
		if err := s.in.ReadUnit(); err != nil {
			if !errors.Is(err, io.EOF) {
				slog.Warn("frame-extract: unit read failed, treating as end of input", "error", err)
			}
			if err := s.in.SubmitEOS(); err != nil {
				slog.Warn("frame-extract: end-of-stream signal failed", "error", err)
				s.state = stateDone
				return nil, io.EOF
			}
			s.state = stateFlushing
			break
		}
		s.stats.UnitsRead++
		s.stats.BytesRead += uint64(s.in.UnitSize())

		if s.in.UnitStream() != s.in.VideoStream() {
			s.in.DropUnit()
			s.stats.UnitsSkipped++
			continue
		}

		if err := s.in.SubmitUnit(); err != nil {
			s.stats.UnitsRejected++
			slog.Debug("frame-extract: unit rejected by decoder", "error", err)
			continue
		}

		pic, err := s.in.ReceivePicture()
		switch {
		case err == nil:
			return s.wrap(pic), nil
		case errors.Is(err, libav.ErrNeedsInput):
			continue
		default:
			slog.Warn("frame-extract: decode failed, ending sequence", "error", err)
			s.state = stateDone
			return nil, io.EOF
		}
	}

	for s.state == stateFlushing {
		pic, err := s.in.ReceivePicture()
		switch {
		case err == nil:
			s.stats.Flushed++
			return s.wrap(pic), nil
		case errors.Is(err, libav.ErrDrained):
			s.state = stateDone
		default:
			slog.Warn("frame-extract: flush retrieval failed, ending sequence", "error", err)
			s.state = stateDone
		}
	}

	return nil, io.EOF
}

// Close releases the decoder and container state in reverse acquisition
// order. Idempotent; pictures already returned by Next stay valid, and
// Stats and Info remain readable after Close.
func (s *FileSource) Close() error {
	if s.state == stateClosed {
		return nil
	}
	opened := s.state != stateNew
	s.state = stateClosed

	if s.in != nil {
		s.in.Close()
		s.in = nil
	}

	if opened {
		slog.Info("frame-extract: source closed",
			"path", s.cfg.Path,
			"units_read", s.stats.UnitsRead,
			"units_skipped", s.stats.UnitsSkipped,
			"units_rejected", s.stats.UnitsRejected,
			"decoded", s.stats.Decoded,
			"flushed", s.stats.Flushed,
		)
	}
	return nil
}

// Info returns the probe metadata captured at open time. Before a
// successful Open only Path is populated.
func (s *FileSource) Info() SourceInfo {
	return s.info
}

// Stats returns a snapshot of the source counters.
func (s *FileSource) Stats() SourceStats {
	st := s.stats
	st.State = s.state.String()
	return st
}

// wrap stamps facade metadata onto a freshly decoded picture.
func (s *FileSource) wrap(pic *libav.Picture) *Picture {
	p := &Picture{
		Seq:     s.seq,
		TraceID: uuid.New().String(),
		Width:   pic.Width(),
		Height:  pic.Height(),
		Format:  pic.FormatName(),
		av:      pic,
	}
	s.seq++
	s.stats.Decoded++

	slog.Debug("frame-extract: picture decoded",
		"seq", p.Seq,
		"trace_id", p.TraceID,
		"resolution", fmt.Sprintf("%dx%d", p.Width, p.Height),
		"state", s.state.String(),
	)
	return p
}
