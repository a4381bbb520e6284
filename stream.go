package cats

import (
	"io"
	"iter"
)

// WriteIter renders elements from an iterator to w as they arrive.
// Unlike [Cat], no exact-size allocation is possible because the
// element list is not known up front; each element is written the
// moment it is yielded. The first failure stops the drain and is
// returned with the byte count discarded.
func WriteIter(w io.Writer, seq iter.Seq[Show]) (int, error) {
	sink := NewSink(w)
	n := 0
	var werr error
	seq(func(e Show) bool {
		written, err := e.Write(sink)
		if err != nil {
			werr = err
			return false
		}
		n += written
		return true
	})
	if werr != nil {
		return 0, werr
	}
	return n, nil
}

// WriteChan renders elements from a channel to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, ch <-chan Show) (int, error) {
	return WriteIter(w, chanToIter(ch))
}

func chanToIter(ch <-chan Show) iter.Seq[Show] {
	return func(yield func(Show) bool) {
		for e := range ch {
			if !yield(e) {
				return
			}
		}
	}
}
