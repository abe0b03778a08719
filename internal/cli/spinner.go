package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// spinner is a lightweight progress indicator for long-running algorithms
// (Bron-Kerbosch in particular). It writes to stderr so results on stdout
// stay clean for piping.
type spinner struct {
	w       io.Writer
	message string
	frames  []string
}

func newSpinner(w io.Writer, message string) *spinner {
	return &spinner{
		w:       w,
		message: message,
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Start begins the animation and returns a stop function. The spinner also
// stops when ctx is cancelled. Stop blocks until the line is cleared, so it
// is safe to print immediately after calling it.
func (s *spinner) Start(ctx context.Context) (stop func()) {
	done := make(chan struct{})
	cleared := make(chan struct{})

	go func() {
		defer close(cleared)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-ctx.Done():
				s.clearLine()
				return
			case <-done:
				s.clearLine()
				return
			case <-ticker.C:
				frame := s.frames[i%len(s.frames)]
				fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
			}
		}
	}()

	var once bool
	return func() {
		if !once {
			once = true
			close(done)
		}
		<-cleared
	}
}

func (s *spinner) clearLine() {
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}
