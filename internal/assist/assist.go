package assist

import "time"

// State represents the assistance machine's escalation position.
type State string

const (
	StateIdle         State = "idle"
	StateEncouraging  State = "encouraging"
	StateOfferingHelp State = "offeringHelp"
	StateAutoPaused   State = "autoPaused"
	StateInHelp       State = "inHelp"
)

// EventKind identifies one of the closed set of reducer events.
type EventKind string

const (
	EvTimerEncouragement EventKind = "TIMER_ENCOURAGEMENT"
	EvTimerHelpOffer     EventKind = "TIMER_HELP_OFFER"
	EvTimerAutoPause     EventKind = "TIMER_AUTO_PAUSE"
	EvTimerMoveOnGrace   EventKind = "TIMER_MOVE_ON_GRACE"
	EvDigitTyped         EventKind = "DIGIT_TYPED"
	EvWrongAnswer        EventKind = "WRONG_ANSWER"
	EvHelpEntered        EventKind = "HELP_ENTERED"
	EvHelpTermCompleted  EventKind = "HELP_TERM_COMPLETED"
	EvHelpExited         EventKind = "HELP_EXITED"
	EvResumed            EventKind = "RESUMED"
	EvProblemChanged     EventKind = "PROBLEM_CHANGED"
	EvUpdateThresholds   EventKind = "UPDATE_THRESHOLDS"
	EvDismissSuggestion  EventKind = "DISMISS_WRONG_ANSWER_SUGGESTION"
)

// Event is a single reducer input. Only the fields relevant to the Kind
// are set.
type Event struct {
	Kind       EventKind
	At         time.Time
	TermIndex  int             // HELP_TERM_COMPLETED
	TermCount  int             // HELP_EXITED
	Stats      *AutoPauseStats // TIMER_AUTO_PAUSE
	Thresholds *Thresholds     // UPDATE_THRESHOLDS
}

// Thresholds are the escalation timer values, measured from idle start.
type Thresholds struct {
	EncouragementMs int64
	HelpOfferMs     int64
	AutoPauseMs     int64
}

// AutoPauseStats summarizes the session at the moment of an auto-pause,
// shown to whoever resumes the learner.
type AutoPauseStats struct {
	Attempted        int
	Wrong            int
	MedianResponseMs int64
	StuckMs          int64
}

// LogEntry records one reducer transition. The log is newest-first and
// capped at MaxLogEntries.
type LogEntry struct {
	At    time.Time
	Event EventKind
	From  State
	To    State
	Note  string
}

// MaxLogEntries caps the transition log.
const MaxLogEntries = 30

// Context is the assistance machine's accumulated state for the active
// problem. Reset in full on PROBLEM_CHANGED.
type Context struct {
	WrongAttempts        int
	WrongAnswerThreshold int

	HelpedTerms    map[int]struct{}
	AllTermsHelped bool

	MoveOnAvailable      bool
	MoveOnGraceStartedAt *time.Time
	MoveOnGraceMs        int64

	IdleStartedAt time.Time
	Thresholds    Thresholds

	AutoPauseStats      *AutoPauseStats
	SuggestionDismissed bool

	Log []LogEntry
}

// Snapshot pairs the machine state with its context. Reduce returns the
// identical pointer for unhandled (state, event) pairs so callers can
// detect that nothing changed.
type Snapshot struct {
	State   State
	Context Context
}

// Config seeds a fresh snapshot.
type Config struct {
	Thresholds           Thresholds
	WrongAnswerThreshold int
	MoveOnGraceMs        int64
}

// DefaultConfig returns the stock escalation settings before any pacing
// adjustment.
func DefaultConfig() Config {
	return Config{
		Thresholds: Thresholds{
			EncouragementMs: 20_000,
			HelpOfferMs:     40_000,
			AutoPauseMs:     75_000,
		},
		WrongAnswerThreshold: 3,
		MoveOnGraceMs:        4_000,
	}
}

// NewSnapshot creates an idle machine for a problem starting at now.
func NewSnapshot(cfg Config, now time.Time) *Snapshot {
	return &Snapshot{
		State: StateIdle,
		Context: Context{
			WrongAnswerThreshold: cfg.WrongAnswerThreshold,
			MoveOnGraceMs:        cfg.MoveOnGraceMs,
			HelpedTerms:          map[int]struct{}{},
			IdleStartedAt:        now,
			Thresholds:           cfg.Thresholds,
		},
	}
}

// ShowWrongAnswerSuggestion reports whether the wrong-answer nudge should
// be visible for the given snapshot.
func ShowWrongAnswerSuggestion(s *Snapshot) bool {
	if s.Context.SuggestionDismissed {
		return false
	}
	if s.State == StateInHelp || s.State == StateAutoPaused {
		return false
	}
	return s.Context.WrongAttempts >= s.Context.WrongAnswerThreshold
}
