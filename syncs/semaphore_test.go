package syncs

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSemaphore(t *testing.T) {
	s := NewSemaphore(1)
	if err := s.Acquire(t.Context()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()
	if err := s.Acquire(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v", err)
	}

	acquired := make(chan error)
	go func() {
		acquired <- s.Acquire(t.Context())
	}()
	s.Release()
	if err := <-acquired; err != nil {
		t.Fatal(err)
	}
	s.Release()
}
