package controller

import (
	"time"

	"github.com/abhisek/sumleap/internal/assist"
	"github.com/abhisek/sumleap/internal/plan"
)

// Phase is the interaction phase governing what the learner can do right
// now. Pause is orthogonal in spirit but modeled as a phase with the
// pre-pause phase retained for resume.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseInputting
	PhaseAwaitingDisambiguation
	PhaseHelpMode
	PhaseSubmitting
	PhaseShowingFeedback
	PhaseTransitioning
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseInputting:
		return "inputting"
	case PhaseAwaitingDisambiguation:
		return "awaitingDisambiguation"
	case PhaseHelpMode:
		return "helpMode"
	case PhaseSubmitting:
		return "submitting"
	case PhaseShowingFeedback:
		return "showingFeedback"
	case PhaseTransitioning:
		return "transitioning"
	case PhasePaused:
		return "paused"
	}
	return "unknown"
}

// AcceptsInput reports whether the learner can type in this phase.
func (p Phase) AcceptsInput() bool {
	switch p {
	case PhaseInputting, PhaseAwaitingDisambiguation, PhaseHelpMode:
		return true
	}
	return false
}

// Verdict is the correctness outcome of a submission.
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictIncorrect Verdict = "incorrect"
)

// Attempt is the live record for the problem on screen. Created when a
// problem is bound; destroyed when the learner advances by any path.
type Attempt struct {
	Problem   plan.Problem
	SlotID    string
	PartIndex int
	SlotIndex int
	Epoch     int

	Answer    string
	StartedAt time.Time
	PausedMs  int64

	// ManualSubmit disables auto-submit-on-correct for this attempt.
	ManualSubmit bool

	// WrongAttempts counts incorrect submissions of this attempt.
	WrongAttempts int

	// UsedHelp is set once help mode is entered for this attempt.
	UsedHelp bool
}

// PauseReason says who or what paused the session.
type PauseReason string

const (
	PauseTeacher     PauseReason = "teacher"
	PauseManual      PauseReason = "manual"
	PauseAutoTimeout PauseReason = "auto-timeout"
)

// PauseInfo is created on any pause transition and cleared on resume.
type PauseInfo struct {
	At      time.Time
	Reason  PauseReason
	Message string // optional teacher message
	Stats   *assist.AutoPauseStats
}

// TransitionTarget is the next problem plus its position, the thing
// advance resolution must produce before the UI can animate forward.
type TransitionTarget struct {
	Problem   plan.Problem
	SlotID    string
	PartIndex int
	SlotIndex int
	Epoch     int
}
