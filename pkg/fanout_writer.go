package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// FanOutWriter copies every write to all of its writers. A failing writer
// does not stop the others; its error is combined into the returned one.
type FanOutWriter struct {
	writers []io.Writer
}

func NewFanOutWriter(writers ...io.Writer) *FanOutWriter {
	fw := &FanOutWriter{}
	for _, w := range writers {
		if w != nil {
			fw.writers = append(fw.writers, w)
		}
	}
	return fw
}

func (fw *FanOutWriter) Len() int {
	return len(fw.writers)
}

// Write reports len(p) when at least one writer took the whole buffer.
func (fw *FanOutWriter) Write(p []byte) (int, error) {
	var (
		err       error
		delivered bool
	)
	for _, w := range fw.writers {
		n, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		if n == len(p) {
			delivered = true
		}
	}
	if delivered {
		return len(p), err
	}
	return 0, err
}
