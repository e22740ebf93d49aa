package util

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gosuri/uilive"
)

// TerminalPrinter rewrites a status line in place on the terminal at a
// fixed frequency
type TerminalPrinter struct {
	frequency time.Duration
	doneCh    chan struct{}

	writer *uilive.Writer

	mu   sync.Mutex
	line string
}

func NewTerminalPrinter(frequency time.Duration) *TerminalPrinter {
	return &TerminalPrinter{
		frequency: frequency,
		doneCh:    make(chan struct{}),
		writer:    uilive.New(),
	}
}

func (p *TerminalPrinter) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-p.doneCh:
				p.print()
				p.writer.Stop()
				return
			case <-ctx.Done():
				p.writer.Stop()
				return
			case <-time.After(p.frequency):
				p.print()
			}
		}
	}()
}

func (p *TerminalPrinter) Stop() {
	close(p.doneCh)
}

// Set the status line (blocking)
func (p *TerminalPrinter) Set(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.line = line
}

func (p *TerminalPrinter) print() {
	p.mu.Lock()
	line := p.line
	p.mu.Unlock()
	fmt.Fprintln(p.writer, line)
	p.writer.Flush()
}
