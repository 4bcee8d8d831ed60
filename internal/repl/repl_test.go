package repl

import (
	"os"
	"syscall"
	"testing"
	"time"
)

func TestWatchSignalsReturnsWhenDone(t *testing.T) {
	sigc := make(chan os.Signal, 1)
	done := make(chan struct{})
	returned := make(chan struct{})
	called := false

	go func() {
		watchSignals(sigc, done, func() { called = true })
		close(returned)
	}()
	close(done)

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatalf("expected the watcher to return once done is closed")
	}
	if called {
		t.Errorf("expected no signal handling after done")
	}
}

func TestWatchSignalsHandlesSignal(t *testing.T) {
	sigc := make(chan os.Signal, 1)
	done := make(chan struct{})
	defer close(done)
	handled := make(chan struct{})

	go watchSignals(sigc, done, func() { close(handled) })
	sigc <- syscall.SIGTERM

	select {
	case <-handled:
	case <-time.After(time.Second):
		t.Fatalf("expected the signal to be handled")
	}
}
