package frameextract

// Source defines the contract for pull-based decoded picture sequences
//
// Implementations must guarantee:
//   - Next() yields pictures strictly in decode order
//   - Next() returns io.EOF once the sequence is exhausted, and keeps
//     returning io.EOF on every later call
//   - ownership of each returned Picture moves to the caller, who must
//     Close it exactly once
//   - the sequence is single-pass: there is no rewind or re-read
//   - Close() is idempotent and releases everything the source still owns
type Source interface {
	// Next returns the next decoded picture in decode order.
	//
	// The end of the sequence is reported as (nil, io.EOF); this is the
	// expected terminal outcome, not a failure. Pictures already handed
	// out stay valid after the source ends or is closed.
	//
	// Example:
	//	for {
	//	    pic, err := src.Next()
	//	    if err == io.EOF {
	//	        break
	//	    }
	//	    if err != nil {
	//	        return err
	//	    }
	//	    // Use pic...
	//	    pic.Close()
	//	}
	Next() (*Picture, error)

	// Close releases all resources held by the source. Safe to call
	// multiple times and safe to call while the sequence is unfinished.
	Close() error
}
