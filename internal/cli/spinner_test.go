package cli

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"
)

// syncWriter guards a buffer against concurrent writes from the spinner
// goroutine.
type syncWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *syncWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

func TestSpinnerStopClearsLine(t *testing.T) {
	w := &syncWriter{}
	s := newSpinner(w, "Running BK...")

	stop := s.Start(context.Background())
	time.Sleep(200 * time.Millisecond)
	stop()

	out := w.String()
	if out == "" {
		t.Fatal("spinner wrote nothing")
	}
	if out[len(out)-1] != '\r' {
		t.Errorf("spinner should end with a carriage return, got %q", out[len(out)-8:])
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(&syncWriter{}, "working")

	stop := s.Start(context.Background())
	stop()
	stop() // second call must not panic or block
}

func TestSpinnerStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(&syncWriter{}, "working")

	stop := s.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stop blocked after context cancellation")
	}
}
