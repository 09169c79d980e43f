package cheer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

type scriptedProvider struct {
	mu    sync.Mutex
	lines []string
	err   error
	calls []Input
}

func (p *scriptedProvider) Cheer(_ context.Context, in Input) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, in)
	if p.err != nil {
		return "", p.err
	}
	if len(p.lines) == 0 {
		return "", fmt.Errorf("no lines scripted")
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

func (p *scriptedProvider) ModelID() string { return "scripted" }

func waitConsume(t *testing.T, s *Service) string {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if line, ok := s.Consume(); ok {
			return line
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("no cheer line arrived")
	return ""
}

func TestServiceDeliversLine(t *testing.T) {
	p := &scriptedProvider{lines: []string{"well done"}}
	s := NewService(p, NewStaticProvider(1))

	s.Request(context.Background(), Input{Moment: MomentPartDone})
	if got := waitConsume(t, s); got != "well done" {
		t.Errorf("line = %q", got)
	}

	// Consumed: nothing left.
	if _, ok := s.Consume(); ok {
		t.Error("consumed line served twice")
	}
}

func TestServiceFallsBack(t *testing.T) {
	p := &scriptedProvider{err: fmt.Errorf("offline")}
	s := NewService(p, NewStaticProvider(1))

	s.Request(context.Background(), Input{Moment: MomentSessionDone})
	line := waitConsume(t, s)
	if line == "" {
		t.Fatal("fallback produced nothing")
	}
	found := false
	for _, l := range staticLines[MomentSessionDone] {
		if l == line {
			found = true
		}
	}
	if !found {
		t.Errorf("line %q not from the session-done pool", line)
	}
}

func TestStaticProviderCoversAllMoments(t *testing.T) {
	p := NewStaticProvider(7)
	for _, m := range []Moment{MomentPartDone, MomentSessionDone, MomentRoughPatch, MomentComeback} {
		line, err := p.Cheer(context.Background(), Input{Moment: m})
		if err != nil || line == "" {
			t.Errorf("moment %s: (%q, %v)", m, line, err)
		}
	}
	// Unknown moments still produce something.
	line, err := p.Cheer(context.Background(), Input{Moment: "unknown"})
	if err != nil || line == "" {
		t.Errorf("unknown moment: (%q, %v)", line, err)
	}
}

func TestAnthropicUserMessage(t *testing.T) {
	msg := buildUserMessage(Input{
		Moment:     MomentPartDone,
		PlayerName: "Mira",
		Answered:   5,
		Correct:    4,
		PartNumber: 1,
		PartCount:  3,
	})
	for _, want := range []string{"part-done", "Mira", "5 problems", "part 1 of 3"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}
