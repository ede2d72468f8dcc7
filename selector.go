package frameextract

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Nth walks src and returns the picture at the zero-based ordinal n.
//
// The walk pulls n+1 pictures and keeps only the most recent one, closing
// each previous picture before requesting the next, so at most one picture
// is live at any moment regardless of n. If the sequence ends before n+1
// pulls succeed, Nth returns ErrFrameNotFound; this also holds at the
// boundary where n equals the picture count exactly. A negative n is
// rejected with ErrNegativeIndex before anything is pulled. Any other
// source error propagates unchanged.
//
// Ownership of the returned picture moves to the caller. O(n) time, one
// picture held.
func Nth(src Source, n int) (*Picture, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeIndex, n)
	}

	var kept *Picture
	for i := 0; i <= n; i++ {
		if kept != nil {
			kept.Close()
			kept = nil
		}

		pic, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				slog.Debug("frame-extract: sequence exhausted before ordinal",
					"index", n,
					"pictures", i,
				)
				return nil, fmt.Errorf("%w: index %d, sequence ended after %d pictures", ErrFrameNotFound, n, i)
			}
			return nil, err
		}
		kept = pic
	}

	slog.Debug("frame-extract: ordinal selected",
		"index", n,
		"seq", kept.Seq,
		"trace_id", kept.TraceID,
	)
	return kept, nil
}
