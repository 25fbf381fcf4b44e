package context

import (
	"context"
	"testing"
	"time"
)

func TestIsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	if IsCanceled(ctx) {
		t.Fatal("fresh context reported as canceled")
	}

	cancel()
	if !IsCanceled(ctx) {
		t.Fatal("canceled context not reported as canceled")
	}
	if IsTimedOut(ctx) {
		t.Fatal("explicit cancel reported as timeout")
	}
}

func TestIsTimedOut(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	<-ctx.Done()
	if !IsTimedOut(ctx) {
		t.Fatal("expired context not reported as timeout")
	}
	if !IsCanceled(ctx) {
		t.Fatal("expired context not reported as canceled")
	}
}
