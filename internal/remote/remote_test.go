package remote

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/sumleap/internal/controller"
)

func testListener(t *testing.T) *Listener {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ctl.sock")
	l, err := Listen(path)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestSendAndReceive(t *testing.T) {
	l := testListener(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	want := controller.Request{
		Kind:    controller.RequestPause,
		ID:      "req-1",
		Message: "dinner time",
	}
	if err := Send(ctx, l.path, want); err != nil {
		t.Fatalf("Send: %v", err)
	}

	select {
	case got := <-l.Requests():
		if got != want {
			t.Errorf("request = %+v, want %+v", got, want)
		}
	case <-ctx.Done():
		t.Fatal("request never arrived")
	}
}

func TestSendRodValue(t *testing.T) {
	l := testListener(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req := controller.Request{Kind: controller.RequestRodValue, ID: "v1", Value: 37}
	if err := Send(ctx, l.path, req); err != nil {
		t.Fatalf("Send: %v", err)
	}
	got := <-l.Requests()
	if got.Value != 37 {
		t.Errorf("value = %d, want 37", got.Value)
	}
}

func TestCloseStopsRequestStream(t *testing.T) {
	l := testListener(t)
	l.Close()

	select {
	case _, ok := <-l.Requests():
		if ok {
			t.Error("unexpected request after close")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("request channel not closed")
	}
}

func TestStaleSocketReplaced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctl.sock")
	l1, err := Listen(path)
	if err != nil {
		t.Fatalf("first Listen: %v", err)
	}
	l1.Close()

	l2, err := Listen(path)
	if err != nil {
		t.Fatalf("second Listen: %v", err)
	}
	l2.Close()
}
