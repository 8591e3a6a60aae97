// Package console draws the map, the form and the workouts list as text lines
// and turns typed commands into app calls.
package console

import (
	"fmt"
	"io"
	"sync"
)

// Printer serializes writes of the console sinks to one writer.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}
