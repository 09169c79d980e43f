package practice

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sumleap/internal/assist"
	"github.com/abhisek/sumleap/internal/controller"
	"github.com/abhisek/sumleap/internal/plan"
	"github.com/abhisek/sumleap/internal/store"
)

type nullEvents struct {
	mu       sync.Mutex
	results  int
	sessions int
	assists  int
}

func (n *nullEvents) AppendResult(context.Context, string, string, plan.SlotResult) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.results++
	return nil
}

func (n *nullEvents) AppendSession(context.Context, store.SessionEventData) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sessions++
	return nil
}

func (n *nullEvents) AppendAssist(context.Context, store.AssistEventData) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.assists++
	return nil
}

func (n *nullEvents) PlanResults(context.Context, string) ([]plan.SlotResult, error) {
	return nil, nil
}

func (n *nullEvents) RecentSessions(context.Context, int) ([]store.SessionEventData, error) {
	return nil, nil
}

type nullPlans struct{}

func (nullPlans) Save(context.Context, *plan.SessionPlan) error { return nil }
func (nullPlans) Latest(context.Context, string) (*plan.SessionPlan, error) {
	return nil, nil
}
func (nullPlans) Prune(context.Context, int) error { return nil }

func twoSlotPlan() *plan.SessionPlan {
	return &plan.SessionPlan{
		ID:       "plan-1",
		PlayerID: "player-1",
		Parts: []plan.Part{
			{
				Type: plan.PartAbacus, Format: plan.FormatVertical,
				Slots: []plan.Slot{
					{ID: "s0", Problem: plan.NewProblem([]int{2, 3})},
					{ID: "s1", Problem: plan.NewProblem([]int{4, 4})},
				},
			},
		},
	}
}

// readyScreen builds a screen bound to a live recorder over null repos.
func readyScreen(t *testing.T) *PracticeScreen {
	t.Helper()
	s := New(Deps{Events: &nullEvents{}, Plans: nullPlans{}, PlayerID: "player-1"})
	s.resolve = controller.ResolveConfig{
		FeedbackCorrect:   time.Millisecond,
		FeedbackIncorrect: time.Millisecond,
		PollInterval:      time.Millisecond,
		PollBound:         20 * time.Millisecond,
	}
	s.startedAt = time.Now()

	rec := store.NewRecorder(&nullEvents{}, nullPlans{}, twoSlotPlan())
	t.Cleanup(rec.Close)
	_, _ = s.Update(sessionReadyMsg{Plan: rec.Plan(), Recorder: rec})
	return s
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestReadyBindsFirstProblem(t *testing.T) {
	s := readyScreen(t)

	if s.ctrl.Phase() != controller.PhaseInputting {
		t.Fatalf("phase = %s, want inputting", s.ctrl.Phase())
	}
	a := s.ctrl.Attempt()
	if a == nil || a.SlotID != "s0" {
		t.Fatalf("attempt = %+v, want slot s0", a)
	}
	key, cell := s.cell.Load()
	if cell == nil || key == "" {
		t.Error("active cell not published")
	}
}

func TestDigitsAccumulateAndAutoSubmit(t *testing.T) {
	s := readyScreen(t)

	// 2+3: the only digit of the answer is 5; typing it completes the
	// expected width and submits without Enter.
	_, cmd := s.Update(keyPress('5'))
	if s.ctrl.Phase() != controller.PhaseSubmitting {
		t.Fatalf("phase = %s, want submitting", s.ctrl.Phase())
	}
	if cmd == nil {
		t.Fatal("auto submit returned no resolution command")
	}
}

func TestWrongManualSubmitStaysOnProblem(t *testing.T) {
	s := readyScreen(t)

	s.Update(keyPress('9'))
	s.Update(specialKey(tea.KeyEnter))

	if s.ctrl.Phase() != controller.PhaseInputting {
		t.Fatalf("phase = %s, want inputting", s.ctrl.Phase())
	}
	if !s.wrongFlash {
		t.Error("wrong flash not shown")
	}
	a := s.ctrl.Attempt()
	if a.Answer != "" {
		t.Errorf("answer = %q, want cleared", a.Answer)
	}
	if a.WrongAttempts != 1 {
		t.Errorf("wrong attempts = %d, want 1", a.WrongAttempts)
	}
	if a.SlotID != "s0" {
		t.Errorf("slot = %s, want s0 (no advance on a miss)", a.SlotID)
	}
}

func TestThreeWrongAttemptsOfferHelp(t *testing.T) {
	s := readyScreen(t)

	for i := 0; i < 3; i++ {
		s.Update(keyPress('9'))
		s.Update(specialKey(tea.KeyEnter))
	}
	if s.machine.State != assist.StateOfferingHelp {
		t.Fatalf("assist state = %s, want offeringHelp", s.machine.State)
	}

	s.Update(keyPress('h'))
	if s.ctrl.Phase() != controller.PhaseHelpMode {
		t.Fatalf("phase = %s, want helpMode", s.ctrl.Phase())
	}
}

func TestResolutionSlidesToNextSlot(t *testing.T) {
	s := readyScreen(t)

	_, cmd := s.Update(keyPress('5'))
	if cmd == nil {
		t.Fatal("no resolution command")
	}
	msg := cmd()
	res, ok := msg.(resolutionMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want resolutionMsg", msg)
	}
	if res.Res.Intent != controller.IntentSlideNext {
		t.Fatalf("intent = %s, want slide", res.Res.Intent)
	}

	s.Update(res)
	if s.ctrl.Phase() != controller.PhaseTransitioning {
		t.Fatalf("phase = %s, want transitioning", s.ctrl.Phase())
	}

	s.Update(transitionDoneMsg{Seq: s.transSeq})
	if s.ctrl.Phase() != controller.PhaseInputting {
		t.Fatalf("phase = %s, want inputting", s.ctrl.Phase())
	}
	if a := s.ctrl.Attempt(); a.SlotID != "s1" {
		t.Errorf("slot = %s, want s1", a.SlotID)
	}
}

func TestStaleTransitionTimerIgnored(t *testing.T) {
	s := readyScreen(t)
	phase := s.ctrl.Phase()
	s.Update(transitionDoneMsg{Seq: s.transSeq - 1})
	if s.ctrl.Phase() != phase {
		t.Error("stale transition timer changed phase")
	}
}

func TestQuitConfirmFlow(t *testing.T) {
	s := readyScreen(t)

	s.Update(specialKey(tea.KeyEscape))
	if !s.quitConfirm {
		t.Fatal("esc did not open quit confirm")
	}

	s.Update(keyPress('n'))
	if s.quitConfirm {
		t.Fatal("n did not dismiss quit confirm")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("y produced no end command")
	}
	if msg, ok := cmd().(sessionEndMsg); !ok || !msg.early {
		t.Errorf("end msg = %#v, want early session end", cmd())
	}
}

func TestPauseAndResume(t *testing.T) {
	s := readyScreen(t)

	s.Update(keyPress('p'))
	if s.ctrl.Phase() != controller.PhasePaused {
		t.Fatalf("phase = %s, want paused", s.ctrl.Phase())
	}

	// Digits are inert while paused.
	s.Update(keyPress('5'))
	if s.ctrl.Phase() != controller.PhasePaused {
		t.Fatal("digit leaked through pause")
	}

	s.Update(keyPress('p'))
	if s.ctrl.Phase() != controller.PhaseInputting {
		t.Fatalf("phase = %s, want inputting after resume", s.ctrl.Phase())
	}
}

func TestRemotePauseAndResume(t *testing.T) {
	s := readyScreen(t)

	s.Update(remoteRequestMsg{Req: controller.Request{
		Kind: controller.RequestPause, ID: "r1", Message: "water break",
	}})
	if s.ctrl.Phase() != controller.PhasePaused {
		t.Fatalf("phase = %s, want paused", s.ctrl.Phase())
	}
	info := s.ctrl.PauseState()
	if info.Reason != controller.PauseTeacher || info.Message != "water break" {
		t.Errorf("pause info = %+v", info)
	}

	// Redelivery of the same ID is acknowledged but not reapplied.
	s.Update(keyPress('p')) // learner resumes
	s.Update(remoteRequestMsg{Req: controller.Request{
		Kind: controller.RequestPause, ID: "r1",
	}})
	if s.ctrl.Phase() == controller.PhasePaused {
		t.Fatal("duplicate pause request was reapplied")
	}
}

func TestRemoteRodAndBroadcast(t *testing.T) {
	s := readyScreen(t)

	s.Update(remoteRequestMsg{Req: controller.Request{
		Kind: controller.RequestRodValue, ID: "v1", Value: 42,
	}})
	if !s.rodVisible || s.rodValue != 42 {
		t.Errorf("rod = (%d, %v), want (42, visible)", s.rodValue, s.rodVisible)
	}

	s.Update(remoteRequestMsg{Req: controller.Request{
		Kind: controller.RequestBroadcast, ID: "b1", Message: "great focus!",
	}})
	if s.broadcast != "great focus!" {
		t.Errorf("broadcast = %q", s.broadcast)
	}
}

func TestPauseDuringTransitionResumesToNextProblem(t *testing.T) {
	s := readyScreen(t)

	_, cmd := s.Update(keyPress('5'))
	if cmd == nil {
		t.Fatal("no resolution command")
	}
	s.Update(cmd().(resolutionMsg))
	if s.ctrl.Phase() != controller.PhaseTransitioning {
		t.Fatalf("phase = %s, want transitioning", s.ctrl.Phase())
	}
	seq := s.transSeq

	// Teacher pauses mid-slide; the armed transition timer fires into the
	// pause and must not be consumed.
	s.Update(remoteRequestMsg{Req: controller.Request{
		Kind: controller.RequestPause, ID: "p1",
	}})
	if s.ctrl.Phase() != controller.PhasePaused {
		t.Fatalf("phase = %s, want paused", s.ctrl.Phase())
	}
	s.Update(transitionDoneMsg{Seq: seq})
	if s.ctrl.Phase() != controller.PhasePaused {
		t.Fatal("transition timer broke the pause")
	}

	s.Update(keyPress('p'))
	if s.ctrl.Phase() != controller.PhaseInputting {
		t.Fatalf("phase = %s after resume, want inputting", s.ctrl.Phase())
	}
	a := s.ctrl.Attempt()
	if a == nil || a.SlotID != "s1" {
		t.Fatalf("attempt = %+v, want slot s1", a)
	}
	s.Update(keyPress('1'))
	if a.Answer != "1" {
		t.Errorf("answer = %q after resume, want %q", a.Answer, "1")
	}
}

func TestPauseSurvivesInFlightResolution(t *testing.T) {
	s := readyScreen(t)

	_, cmd := s.Update(keyPress('5'))
	if cmd == nil {
		t.Fatal("no resolution command")
	}

	// Pause lands while the resolver is still running.
	s.Update(remoteRequestMsg{Req: controller.Request{
		Kind: controller.RequestPause, ID: "p1", Message: "hold on",
	}})
	s.Update(cmd().(resolutionMsg))

	if s.ctrl.Phase() != controller.PhasePaused {
		t.Fatalf("phase = %s, want paused (resolution must not cancel a pause)", s.ctrl.Phase())
	}
	if s.ctrl.PauseState() == nil {
		t.Fatal("pause state dropped by the resolution")
	}

	// Resume applies the deferred resolution and the slide proceeds.
	s.Update(keyPress('p'))
	if s.ctrl.Phase() != controller.PhaseTransitioning {
		t.Fatalf("phase = %s after resume, want transitioning", s.ctrl.Phase())
	}
	s.Update(transitionDoneMsg{Seq: s.transSeq})
	if a := s.ctrl.Attempt(); a == nil || a.SlotID != "s1" {
		t.Fatalf("attempt = %+v, want slot s1", a)
	}
}

func TestWrongSubmitClearsDisambiguation(t *testing.T) {
	s := readyScreen(t)

	// 2 is the first running total of 2+3; typing it arms disambiguation.
	s.Update(keyPress('2'))
	if s.ctrl.Phase() != controller.PhaseAwaitingDisambiguation {
		t.Fatalf("phase = %s, want awaitingDisambiguation", s.ctrl.Phase())
	}
	seq := s.disambigSeq

	s.Update(specialKey(tea.KeyEnter)) // wrong submit of the partial sum
	if s.ctrl.Phase() != controller.PhaseInputting {
		t.Fatalf("phase = %s, want inputting after a miss", s.ctrl.Phase())
	}
	if s.ctrl.DisambiguationTerm() != 0 {
		t.Errorf("disambiguation term = %d, want cleared", s.ctrl.DisambiguationTerm())
	}

	// The timer armed for the stale partial sum must not enter help.
	s.Update(disambigTimerMsg{Seq: seq})
	if s.ctrl.Phase() == controller.PhaseHelpMode {
		t.Fatal("stale disambiguation timer entered help")
	}
}

type hookLog struct {
	pauses      []controller.PauseReason
	resumes     int
	transitions [][2]int
	completes   []int
	endedEarly  int
	completed   int
}

func (h *hookLog) OnPause(info controller.PauseInfo) {
	h.pauses = append(h.pauses, info.Reason)
}
func (h *hookLog) OnResume()                     { h.resumes++ }
func (h *hookLog) OnEndEarly(plan.HealthSummary) { h.endedEarly++ }
func (h *hookLog) OnComplete(plan.HealthSummary) { h.completed++ }
func (h *hookLog) OnPartTransition(from, to int) {
	h.transitions = append(h.transitions, [2]int{from, to})
}
func (h *hookLog) OnPartTransitionComplete(part int) {
	h.completes = append(h.completes, part)
}

func TestSessionHooksFire(t *testing.T) {
	hooks := &hookLog{}
	s := New(Deps{Events: &nullEvents{}, Plans: nullPlans{}, PlayerID: "player-1", Hooks: hooks})
	s.resolve = controller.ResolveConfig{
		FeedbackCorrect:   time.Millisecond,
		FeedbackIncorrect: time.Millisecond,
		PollInterval:      time.Millisecond,
		PollBound:         20 * time.Millisecond,
	}
	s.startedAt = time.Now()

	p := &plan.SessionPlan{
		ID:       "plan-2",
		PlayerID: "player-1",
		Parts: []plan.Part{
			{
				Type: plan.PartAbacus, Format: plan.FormatVertical,
				Slots: []plan.Slot{{ID: "a0", Problem: plan.NewProblem([]int{2, 3})}},
			},
			{
				Type: plan.PartAbacus, Format: plan.FormatVertical,
				Slots: []plan.Slot{{ID: "b0", Problem: plan.NewProblem([]int{4, 4})}},
			},
		},
	}
	rec := store.NewRecorder(&nullEvents{}, nullPlans{}, p)
	t.Cleanup(rec.Close)
	s.Update(sessionReadyMsg{Plan: rec.Plan(), Recorder: rec})

	s.Update(keyPress('p'))
	s.Update(keyPress('p'))
	if len(hooks.pauses) != 1 || hooks.pauses[0] != controller.PauseManual {
		t.Errorf("pauses = %v, want one manual pause", hooks.pauses)
	}
	if hooks.resumes != 1 {
		t.Errorf("resumes = %d, want 1", hooks.resumes)
	}

	// Finishing the only slot of part 0 crosses into part 1.
	_, cmd := s.Update(keyPress('5'))
	if cmd == nil {
		t.Fatal("no resolution command")
	}
	s.Update(cmd().(resolutionMsg))
	if len(hooks.transitions) != 1 || hooks.transitions[0] != [2]int{0, 1} {
		t.Fatalf("part transitions = %v, want [[0 1]]", hooks.transitions)
	}
	if len(hooks.completes) != 1 || hooks.completes[0] != 1 {
		t.Fatalf("part transition completes = %v, want [1]", hooks.completes)
	}

	s.Update(sessionEndMsg{early: false})
	if hooks.completed != 1 || hooks.endedEarly != 0 {
		t.Errorf("completion hooks = (%d, %d), want (1, 0)", hooks.completed, hooks.endedEarly)
	}
}

func TestRedoKeyAfterAnswer(t *testing.T) {
	s := readyScreen(t)

	// Answer the first slot wrong via move-on style manual record: use a
	// full wrong submit through the resolver so a result lands in the plan.
	s.Update(keyPress('9'))
	s.Update(specialKey(tea.KeyEnter)) // wrong, stays
	s.Update(specialKey(tea.KeyBackspace))
	_, cmd := s.Update(keyPress('5')) // correct, auto submits
	if cmd == nil {
		t.Fatal("no resolution command")
	}
	s.Update(cmd().(resolutionMsg))
	s.Update(transitionDoneMsg{Seq: s.transSeq})
	// Let the recorder apply the enqueued result.
	time.Sleep(20 * time.Millisecond)
	s.plan = s.recorder.Plan()

	s.Update(keyPress('r'))
	redo := s.ctrl.Redo()
	if redo == nil || !redo.Active {
		t.Fatal("r did not start a redo")
	}
	if redo.OriginalSlotIndex != 0 {
		t.Errorf("redo slot = %d, want 0", redo.OriginalSlotIndex)
	}
}

func TestViewRendersPhases(t *testing.T) {
	s := readyScreen(t)

	if v := s.View(80, 24); v == "" {
		t.Error("inputting view empty")
	}
	s.Update(keyPress('p'))
	if v := s.View(80, 24); v == "" {
		t.Error("paused view empty")
	}
	s.Update(keyPress('p'))
	s.Update(specialKey(tea.KeyEscape))
	if v := s.View(80, 24); v == "" {
		t.Error("quit confirm view empty")
	}
}
