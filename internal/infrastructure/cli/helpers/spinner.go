package helpers

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// Spinner displays an animated spinner while waiting on the model.
type Spinner struct {
	frames   []string
	interval time.Duration
	writer   io.Writer

	mu       sync.Mutex
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewSpinner creates a new spinner
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{
		frames:   []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		interval: 80 * time.Millisecond,
		writer:   w,
	}
}

// Start begins the animation. Calling Start on a running spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopChan != nil {
		return
	}
	stop := make(chan struct{})
	s.stopChan = stop

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for idx := 0; ; idx++ {
			fmt.Fprintf(s.writer, "\r%s ", s.frames[idx%len(s.frames)])
			select {
			case <-stop:
				fmt.Fprintf(s.writer, "\r\033[K")
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stop halts the animation and clears the line. Safe to call when not started.
func (s *Spinner) Stop() {
	s.mu.Lock()
	stop := s.stopChan
	s.stopChan = nil
	s.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	s.wg.Wait()
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
