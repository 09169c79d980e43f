package cheer

import (
	"context"
	"math/rand"
)

// StaticProvider serves built-in lines. The offline fallback, and the
// default when no API key is configured.
type StaticProvider struct {
	rng *rand.Rand
}

// NewStaticProvider creates a provider with a seeded line picker.
func NewStaticProvider(seed int64) *StaticProvider {
	return &StaticProvider{rng: rand.New(rand.NewSource(seed))}
}

var staticLines = map[Moment][]string{
	MomentPartDone: {
		"One part down, nicely done.",
		"That part is behind you now.",
		"Strong finish on that part.",
	},
	MomentSessionDone: {
		"Session complete. Great work today.",
		"All done. Your abacus fingers are getting fast.",
		"Finished! See you next practice.",
	},
	MomentRoughPatch: {
		"Tricky one. Take a breath and keep going.",
		"Hard problems make strong solvers.",
		"Slow is fine. You are still moving.",
	},
	MomentComeback: {
		"There it is. Back on track.",
		"Nice recovery on that one.",
	},
}

func (p *StaticProvider) Cheer(_ context.Context, in Input) (string, error) {
	lines := staticLines[in.Moment]
	if len(lines) == 0 {
		lines = staticLines[MomentPartDone]
	}
	return lines[p.rng.Intn(len(lines))], nil
}

func (p *StaticProvider) ModelID() string {
	return "static"
}
