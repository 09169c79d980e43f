package practice

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sumleap/internal/assist"
	"github.com/abhisek/sumleap/internal/cheer"
	"github.com/abhisek/sumleap/internal/controller"
	"github.com/abhisek/sumleap/internal/pacing"
	"github.com/abhisek/sumleap/internal/plan"
	"github.com/abhisek/sumleap/internal/problemgen"
	"github.com/abhisek/sumleap/internal/router"
	"github.com/abhisek/sumleap/internal/screen"
	"github.com/abhisek/sumleap/internal/screens/summary"
	"github.com/abhisek/sumleap/internal/store"
	"github.com/abhisek/sumleap/internal/ui/layout"
	"github.com/abhisek/sumleap/internal/ui/theme"
)

const (
	disambigTimeout = 4 * time.Second
	transitionHold  = 350 * time.Millisecond
	wrongFlashHold  = 900 * time.Millisecond
	cheerPollEvery  = 250 * time.Millisecond
)

// Deps are the collaborators injected by the app.
type Deps struct {
	Generator problemgen.Generator
	Events    store.EventRepo
	Plans     store.PlanRepo
	Cheer     *cheer.Service
	PlayerID  string
	Remote    <-chan controller.Request
	Hooks     controller.SessionHooks
}

// PracticeScreen hosts one practice session: it owns the interaction
// controller, the assistance machine, and the advance-resolution wiring.
type PracticeScreen struct {
	deps Deps

	recorder *store.Recorder
	plan     *plan.SessionPlan
	cell     *controller.ActiveCell
	ctrl     *controller.Controller
	gateway  *controller.Gateway
	machine  *assist.Snapshot
	resolve  controller.ResolveConfig
	spin     spinner.Model
	hooks    controller.SessionHooks

	// timer guards
	assistSeq   int
	disambigSeq int
	transSeq    int
	flashSeq    int

	startedAt   time.Time
	quitConfirm bool
	wrongFlash  bool
	cheerLine   string
	broadcast   string
	rodValue    int
	rodVisible  bool
	errMsg      string
	ended       bool

	// pendingRes holds a resolution that landed while paused; applied on
	// resume so a pause never cancels itself.
	pendingRes *controller.Resolution

	// gatewayCmds collects commands produced by synchronous gateway
	// actions; the remote request handler drains them.
	gatewayCmds []tea.Cmd

	planNotify chan struct{}
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen.
func New(deps Deps) *PracticeScreen {
	s := &PracticeScreen{
		deps:       deps,
		cell:       &controller.ActiveCell{},
		ctrl:       controller.New(nil),
		machine:    assist.NewSnapshot(assist.DefaultConfig(), time.Now()),
		resolve:    controller.DefaultResolveConfig(),
		hooks:      deps.Hooks,
		planNotify: make(chan struct{}, 1),
	}
	if s.hooks == nil {
		s.hooks = controller.NopSessionHooks{}
	}
	s.spin = spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
	)
	s.gateway = controller.NewGateway(s)
	return s
}

func (s *PracticeScreen) Title() string { return "Practice" }

func (s *PracticeScreen) Init() tea.Cmd {
	s.startedAt = time.Now()
	cmds := []tea.Cmd{s.initSession(), cheerPollCmd(), s.spin.Tick}
	if s.deps.Remote != nil {
		cmds = append(cmds, s.listenRemote())
	}
	return tea.Batch(cmds...)
}

// initSession resumes an unfinished plan or builds a fresh one, then
// starts the recorder.
func (s *PracticeScreen) initSession() tea.Cmd {
	deps := s.deps
	notify := s.planNotify
	return func() tea.Msg {
		ctx := context.Background()

		p, err := deps.Plans.Latest(ctx, deps.PlayerID)
		if err != nil {
			return sessionReadyMsg{Err: err}
		}
		if p == nil {
			p, err = plan.BuildPlan(ctx, deps.Generator, plan.DefaultPlanConfig(deps.PlayerID))
			if err != nil {
				return sessionReadyMsg{Err: err}
			}
		}

		rec := store.NewRecorder(deps.Events, deps.Plans, p)
		rec.OnPlanChanged = func() {
			select {
			case notify <- struct{}{}:
			default:
			}
		}
		_ = rec.LogSession(ctx, store.ActionStart, "", "", 0)
		return sessionReadyMsg{Plan: rec.Plan(), Recorder: rec}
	}
}

// listenPlanChanges forwards recorder notifications onto the host loop.
func (s *PracticeScreen) listenPlanChanges() tea.Cmd {
	ch := s.planNotify
	return func() tea.Msg {
		<-ch
		return planChangedMsg{}
	}
}

// listenRemote waits for one external request and redelivers itself.
func (s *PracticeScreen) listenRemote() tea.Cmd {
	ch := s.deps.Remote
	return func() tea.Msg {
		req, ok := <-ch
		if !ok {
			return nil
		}
		return remoteRequestMsg{Req: req}
	}
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.ctrl.Phase() {
	case controller.PhasePaused:
		return []layout.KeyHint{{Key: "P", Description: "Resume"}}
	case controller.PhaseHelpMode:
		hints := []layout.KeyHint{
			{Key: "Enter", Description: "Next step"},
			{Key: "Esc", Description: "Back to problem"},
		}
		if s.machine.Context.MoveOnAvailable {
			hints = append(hints, layout.KeyHint{Key: "M", Description: "Move on"})
		}
		return hints
	default:
		hints := []layout.KeyHint{
			{Key: "0-9", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
		}
		if s.machine.State == assist.StateOfferingHelp || assist.ShowWrongAnswerSuggestion(s.machine) {
			hints = append(hints, layout.KeyHint{Key: "H", Description: "Help"})
		}
		hints = append(hints,
			layout.KeyHint{Key: "P", Description: "Pause"},
			layout.KeyHint{Key: "Esc", Description: "Quit"},
		)
		return hints
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return s.handleReady(msg)
	case assistTimerMsg:
		return s.handleAssistTimer(msg)
	case disambigTimerMsg:
		return s.handleDisambigTimer(msg)
	case resolutionMsg:
		return s.handleResolution(msg.Res)
	case transitionDoneMsg:
		return s.handleTransitionDone(msg)
	case wrongFlashDoneMsg:
		if msg.Seq == s.flashSeq {
			s.wrongFlash = false
		}
		return s, nil
	case planChangedMsg:
		return s.handlePlanChanged()
	case cheerPollMsg:
		if s.deps.Cheer != nil {
			if line, ok := s.deps.Cheer.Consume(); ok {
				s.cheerLine = line
			}
		}
		if s.ended {
			return s, nil
		}
		return s, cheerPollCmd()
	case remoteRequestMsg:
		s.gateway.Offer(s.ctrl.Phase(), msg.Req)
		// A remote resume restarts the idle clock; re-arm unconditionally.
		cmds := append(s.takeGatewayCmds(), s.listenRemote(), s.scheduleAssist())
		return s, tea.Batch(cmds...)
	case sessionEndMsg:
		return s.handleEnd(msg.early)
	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PracticeScreen) handleReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.plan = msg.Plan
	s.recorder = msg.Recorder

	if t := currentTarget(s.plan); t != nil {
		s.cell.Publish(s.plan.ActiveKey(), *t)
		s.ctrl.BindAttempt(*t, s.plan.CurrentPart().Type == plan.PartLinear)
		return s, tea.Batch(s.problemChanged(), s.listenPlanChanges())
	}
	return s, endCmd(false)
}

// problemChanged resets the assistance machine for a fresh problem and
// refreshes thresholds from pacing.
func (s *PracticeScreen) problemChanged() tea.Cmd {
	now := time.Now()
	th := pacing.Thresholds(s.plan.Results)
	s.reduce(assist.Event{Kind: assist.EvProblemChanged, At: now})
	s.reduce(assist.Event{Kind: assist.EvUpdateThresholds, At: now, Thresholds: &th})
	return s.scheduleAssist()
}

// reduce applies one assistance event and logs real transitions.
func (s *PracticeScreen) reduce(ev assist.Event) {
	prev := s.machine
	s.machine = assist.Reduce(s.machine, ev)
	if s.machine == prev || prev.State == s.machine.State {
		return
	}
	if s.recorder == nil {
		return
	}
	slotID := ""
	if a := s.ctrl.Attempt(); a != nil {
		slotID = a.SlotID
	}
	rec, from, to := s.recorder, string(prev.State), string(s.machine.State)
	kind := string(ev.Kind)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = rec.LogAssist(ctx, slotID, from, to, kind)
	}()
}

// scheduleAssist arms the next assistance timer for the current state.
func (s *PracticeScreen) scheduleAssist() tea.Cmd {
	s.assistSeq++
	seq := s.assistSeq
	_, wait, ok := assist.NextTimer(s.machine, time.Now())
	if !ok {
		return nil
	}
	if wait < 0 {
		wait = 0
	}
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return assistTimerMsg{Seq: seq}
	})
}

func (s *PracticeScreen) handleAssistTimer(msg assistTimerMsg) (screen.Screen, tea.Cmd) {
	if msg.Seq != s.assistSeq || s.ctrl.Phase() == controller.PhasePaused {
		return s, nil
	}
	now := time.Now()
	ev, wait, ok := assist.NextTimer(s.machine, now)
	if !ok {
		return s, nil
	}
	if wait > 0 {
		// Rescheduled meanwhile; re-arm for the remainder.
		return s, s.scheduleAssist()
	}

	if ev.Kind == assist.EvTimerAutoPause {
		stats := pacing.AutoPauseStats(s.plan.Results, s.machine.Context.IdleStartedAt, now)
		ev.Stats = stats
		s.reduce(ev)
		info := controller.PauseInfo{
			At:     now,
			Reason: controller.PauseAutoTimeout,
			Stats:  stats,
		}
		if s.ctrl.BeginPause(info) {
			s.logLifecycle(store.ActionPause, string(controller.PauseAutoTimeout), "")
			s.hooks.OnPause(info)
		}
		return s, nil
	}

	s.reduce(ev)
	return s, s.scheduleAssist()
}

func (s *PracticeScreen) handleDisambigTimer(msg disambigTimerMsg) (screen.Screen, tea.Cmd) {
	if msg.Seq != s.disambigSeq {
		return s, nil
	}
	if s.ctrl.Phase() != controller.PhaseAwaitingDisambiguation {
		return s, nil
	}
	if s.ctrl.AutoEnterHelp() {
		s.reduce(assist.Event{
			Kind:      assist.EvHelpEntered,
			At:        time.Now(),
			TermIndex: s.ctrl.HelpTerm(),
			TermCount: len(s.ctrl.Attempt().Problem.Terms),
		})
		return s, s.scheduleAssist()
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, popCmd()
	}
	if s.plan == nil {
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, endCmd(true)
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	switch s.ctrl.Phase() {
	case controller.PhasePaused:
		if key == "p" || key == "P" || key == "enter" {
			return s, s.resume(false)
		}
		return s, nil

	case controller.PhaseHelpMode:
		return s.handleHelpKey(key)

	case controller.PhaseInputting, controller.PhaseAwaitingDisambiguation:
		return s.handleInputKey(key)
	}
	// Submitting, feedback, transitioning, loading: keys are inert.
	if key == "esc" {
		s.quitConfirm = true
	}
	return s, nil
}

func (s *PracticeScreen) handleInputKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc":
		if s.ctrl.Redo() != nil {
			if _, ok := s.ctrl.CancelRedo(); ok {
				return s.rebind(-1)
			}
		}
		s.quitConfirm = true
		return s, nil
	case "p", "P":
		return s, s.pause(controller.PauseManual, "")
	case "h", "H":
		if s.machine.State == assist.StateOfferingHelp || assist.ShowWrongAnswerSuggestion(s.machine) {
			return s.enterHelp(0)
		}
		return s, nil
	case "x", "X":
		if assist.ShowWrongAnswerSuggestion(s.machine) {
			s.reduce(assist.Event{Kind: assist.EvDismissSuggestion, At: time.Now()})
		}
		return s, nil
	case "r", "R":
		return s.startRedo()
	case "backspace":
		if s.ctrl.HandleBackspace() {
			return s.afterDigit()
		}
		return s, nil
	case "enter":
		return s.submit(true)
	}

	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		if s.ctrl.HandleDigit(rune(key[0])) {
			return s.afterDigit()
		}
	}
	return s, nil
}

// afterDigit runs the shared post-input bookkeeping: idle clock reset,
// disambiguation timer, auto-submit check.
func (s *PracticeScreen) afterDigit() (screen.Screen, tea.Cmd) {
	s.reduce(assist.Event{Kind: assist.EvDigitTyped, At: time.Now()})

	if s.ctrl.ShouldAutoSubmit() {
		return s.submit(false)
	}

	cmds := []tea.Cmd{s.scheduleAssist()}
	if s.ctrl.Phase() == controller.PhaseAwaitingDisambiguation {
		s.disambigSeq++
		seq := s.disambigSeq
		cmds = append(cmds, tea.Tick(disambigTimeout, func(time.Time) tea.Msg {
			return disambigTimerMsg{Seq: seq}
		}))
	}
	return s, tea.Batch(cmds...)
}

func (s *PracticeScreen) handleHelpKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "enter", " ":
		if done, ok := s.ctrl.CompleteHelpTerm(); ok {
			a := s.ctrl.Attempt()
			s.reduce(assist.Event{
				Kind:      assist.EvHelpTermCompleted,
				At:        time.Now(),
				TermIndex: done,
				TermCount: len(a.Problem.Terms),
			})
		}
		return s, nil
	case "esc":
		return s.exitHelp(false)
	case "m", "M":
		if s.machine.Context.MoveOnAvailable {
			return s.exitHelp(true)
		}
		return s, nil
	case "p", "P":
		return s, s.pause(controller.PauseManual, "")
	}
	return s, nil
}

func (s *PracticeScreen) enterHelp(term int) (screen.Screen, tea.Cmd) {
	if !s.ctrl.EnterHelpMode(term) {
		return s, nil
	}
	s.reduce(assist.Event{
		Kind:      assist.EvHelpEntered,
		At:        time.Now(),
		TermIndex: term,
		TermCount: len(s.ctrl.Attempt().Problem.Terms),
	})
	return s, s.scheduleAssist()
}

func (s *PracticeScreen) exitHelp(moveOn bool) (screen.Screen, tea.Cmd) {
	a := s.ctrl.Attempt()
	if !s.ctrl.ExitHelpMode(moveOn) {
		return s, nil
	}
	s.reduce(assist.Event{
		Kind:      assist.EvHelpExited,
		At:        time.Now(),
		TermCount: len(a.Problem.Terms),
	})
	if s.ctrl.MoveOnSignal() {
		return s.moveOn()
	}
	return s, s.scheduleAssist()
}

// submit runs the full submission protocol for the pending answer.
// manual is true for an explicit Enter press, which may be wrong; the
// auto-submit path is correct by construction.
func (s *PracticeScreen) submit(manual bool) (screen.Screen, tea.Cmd) {
	if manual && !s.ctrl.AnswerMatches() {
		return s.wrongAttempt()
	}

	sub := s.ctrl.StartSubmit(s.plan)
	if sub == nil {
		return s, nil
	}
	return s.dispatch(sub)
}

// wrongAttempt handles an incorrect manual submission: the problem stays,
// the counter climbs, the machine may escalate.
func (s *PracticeScreen) wrongAttempt() (screen.Screen, tea.Cmd) {
	a := s.ctrl.Attempt()
	if a == nil || a.Answer == "" {
		return s, nil
	}
	s.ctrl.RecordWrongAttempt()
	s.ctrl.ClearAnswer()
	s.wrongFlash = true
	s.flashSeq++
	seq := s.flashSeq
	s.reduce(assist.Event{Kind: assist.EvWrongAnswer, At: time.Now()})
	return s, tea.Batch(
		s.scheduleAssist(),
		tea.Tick(wrongFlashHold, func(time.Time) tea.Msg {
			return wrongFlashDoneMsg{Seq: seq}
		}),
	)
}

// moveOn submits the current problem as a recorded miss.
func (s *PracticeScreen) moveOn() (screen.Screen, tea.Cmd) {
	sub := s.ctrl.StartMoveOn(s.plan)
	if sub == nil {
		return s, nil
	}
	return s.dispatch(sub)
}

// dispatch completes the submit transition and runs resolution off-loop.
func (s *PracticeScreen) dispatch(sub *controller.Submission) (screen.Screen, tea.Cmd) {
	s.ctrl.CompleteSubmit(sub.Verdict)
	resolver := &controller.Resolver{
		Cfg:      s.resolve,
		Cell:     s.cell,
		Recorder: s.recorder,
	}
	return s, func() tea.Msg {
		return resolutionMsg{Res: resolver.Run(context.Background(), sub)}
	}
}

func (s *PracticeScreen) handleResolution(res controller.Resolution) (screen.Screen, tea.Cmd) {
	if s.ctrl.Phase() == controller.PhasePaused {
		// A pause outlives an in-flight resolution; apply it on resume.
		s.pendingRes = &res
		return s, nil
	}

	if res.Mode == controller.ModeRedo {
		s.ctrl.FinishRedo()
	}

	prevPart := -1
	if out := s.ctrl.Outgoing(); out != nil {
		prevPart = out.PartIndex
	}

	// Refresh the local plan copy; the recorder applied the result.
	s.plan = s.recorder.Plan()
	if t := currentTarget(s.plan); t != nil {
		s.cell.Publish(s.plan.ActiveKey(), *t)
	}

	switch res.Intent {
	case controller.IntentSlideNext:
		if s.ctrl.StartTransition(*res.Target) {
			if prevPart >= 0 && res.Target.PartIndex != prevPart {
				s.hooks.OnPartTransition(prevPart, res.Target.PartIndex)
			}
			s.transSeq++
			seq := s.transSeq
			return s, tea.Tick(transitionHold, func(time.Time) tea.Msg {
				return transitionDoneMsg{Seq: seq}
			})
		}
		s.ctrl.ClearToLoading()
		return s.rebind(prevPart)

	case controller.IntentStateHandoff:
		s.ctrl.ClearToLoading()
		return s, endCmd(false)

	default: // clear-to-loading
		s.ctrl.ClearToLoading()
		return s.rebind(prevPart)
	}
}

func (s *PracticeScreen) handleTransitionDone(msg transitionDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Seq != s.transSeq {
		return s, nil
	}
	if s.ctrl.Phase() == controller.PhasePaused {
		// Resume lands the pending transition itself.
		return s, nil
	}
	return s.completeTransition()
}

// completeTransition lands the armed transition target, binding the next
// attempt and notifying hooks of a completed part crossing.
func (s *PracticeScreen) completeTransition() (screen.Screen, tea.Cmd) {
	manual := false
	if t := s.ctrl.Target(); t != nil && t.PartIndex < len(s.plan.Parts) {
		manual = s.plan.Parts[t.PartIndex].Type == plan.PartLinear
	}
	prevPart := -1
	if out := s.ctrl.Outgoing(); out != nil {
		prevPart = out.PartIndex
	}
	if !s.ctrl.CompleteTransition(manual) {
		return s, nil
	}
	s.transSeq++ // any pending transition tick is now stale
	if a := s.ctrl.Attempt(); a != nil && prevPart >= 0 && a.PartIndex != prevPart {
		s.hooks.OnPartTransitionComplete(a.PartIndex)
	}
	return s, s.problemChanged()
}

// rebind re-derives the attempt from the authoritative plan after a
// clear-to-loading, or ends the session when the plan is done. prevPart
// is the part the learner just left, or -1 when unknown.
func (s *PracticeScreen) rebind(prevPart int) (screen.Screen, tea.Cmd) {
	if s.plan.Completed {
		return s, endCmd(false)
	}
	t := currentTarget(s.plan)
	if t == nil {
		return s, endCmd(false)
	}
	s.ctrl.BindAttempt(*t, s.plan.Parts[t.PartIndex].Type == plan.PartLinear)

	cmds := []tea.Cmd{s.problemChanged()}
	if prevPart >= 0 && t.PartIndex != prevPart {
		s.hooks.OnPartTransition(prevPart, t.PartIndex)
		s.hooks.OnPartTransitionComplete(t.PartIndex)
		if s.deps.Cheer != nil {
			h := s.plan.Health()
			s.deps.Cheer.Request(context.Background(), cheer.Input{
				Moment:     cheer.MomentPartDone,
				Answered:   h.Attempted,
				Correct:    h.Correct,
				PartNumber: t.PartIndex,
				PartCount:  len(s.plan.Parts),
			})
		}
	}
	return s, tea.Batch(cmds...)
}

func (s *PracticeScreen) handlePlanChanged() (screen.Screen, tea.Cmd) {
	if s.recorder == nil {
		return s, nil
	}
	s.plan = s.recorder.Plan()
	if t := currentTarget(s.plan); t != nil {
		s.cell.Publish(s.plan.ActiveKey(), *t)
	}
	if s.ctrl.Phase() == controller.PhaseLoading {
		scr, cmd := s.rebind(-1)
		return scr, tea.Batch(cmd, s.listenPlanChanges())
	}
	return s, s.listenPlanChanges()
}

func (s *PracticeScreen) startRedo() (screen.Screen, tea.Cmd) {
	part, slot, ok := lastAnswered(s.plan)
	if !ok {
		return s, nil
	}
	if !s.ctrl.StartRedo(s.plan, part, slot) {
		return s, nil
	}
	return s, s.problemChanged()
}

func (s *PracticeScreen) pause(reason controller.PauseReason, message string) tea.Cmd {
	info := controller.PauseInfo{At: time.Now(), Reason: reason, Message: message}
	if !s.ctrl.BeginPause(info) {
		return nil
	}
	s.logLifecycle(store.ActionPause, string(reason), message)
	s.hooks.OnPause(info)
	return nil
}

func (s *PracticeScreen) resume(external bool) tea.Cmd {
	d, ok := s.ctrl.Resume()
	if !ok {
		return nil
	}
	s.machine = assist.ShiftIdle(s.machine, d)
	s.reduce(assist.Event{Kind: assist.EvResumed, At: time.Now()})
	reason := ""
	if external {
		reason = string(controller.PauseTeacher)
	}
	s.logLifecycle(store.ActionResume, reason, "")
	s.hooks.OnResume()

	if s.pendingRes != nil {
		res := *s.pendingRes
		s.pendingRes = nil
		_, cmd := s.handleResolution(res)
		return tea.Batch(cmd, s.scheduleAssist())
	}
	if s.ctrl.Phase() == controller.PhaseTransitioning {
		// The animation hold elapsed during the pause; land the target now.
		_, cmd := s.completeTransition()
		return tea.Batch(cmd, s.scheduleAssist())
	}
	return s.scheduleAssist()
}

// takeGatewayCmds drains commands produced by synchronous gateway actions.
func (s *PracticeScreen) takeGatewayCmds() []tea.Cmd {
	cmds := s.gatewayCmds
	s.gatewayCmds = nil
	return cmds
}

func (s *PracticeScreen) logLifecycle(action store.SessionAction, reason, message string) {
	if s.recorder == nil {
		return
	}
	rec := s.recorder
	secs := int(time.Since(s.startedAt).Seconds())
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = rec.LogSession(ctx, action, reason, message, secs)
	}()
}

func (s *PracticeScreen) handleEnd(early bool) (screen.Screen, tea.Cmd) {
	if s.ended {
		return s, nil
	}
	s.ended = true

	action := store.ActionComplete
	if early {
		action = store.ActionEndEarly
	}
	h := s.plan.Health()
	secs := int(time.Since(s.startedAt).Seconds())
	if early {
		s.hooks.OnEndEarly(h)
	} else {
		s.hooks.OnComplete(h)
	}
	if s.recorder != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = s.recorder.LogSession(ctx, action, "", "", secs)
		cancel()
		s.recorder.Close()
	}
	if s.deps.Cheer != nil && !early {
		s.deps.Cheer.Request(context.Background(), cheer.Input{
			Moment:   cheer.MomentSessionDone,
			Answered: h.Attempted,
			Correct:  h.Correct,
		})
	}

	sum := summary.New(h, s.plan.PartHealths(), secs, early, s.deps.Cheer)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: sum}
	}
}

// Gateway actions: external requests land here, already deduplicated.

func (s *PracticeScreen) ExternalPause(message string) {
	if cmd := s.pause(controller.PauseTeacher, message); cmd != nil {
		s.gatewayCmds = append(s.gatewayCmds, cmd)
	}
}

func (s *PracticeScreen) ExternalResume() {
	if cmd := s.resume(true); cmd != nil {
		s.gatewayCmds = append(s.gatewayCmds, cmd)
	}
}

func (s *PracticeScreen) SetRodValue(v int) {
	s.rodValue = v
	s.rodVisible = true
}

func (s *PracticeScreen) SetRodVisible(visible bool) {
	s.rodVisible = visible
}

func (s *PracticeScreen) Broadcast(message string) {
	s.broadcast = message
}

// helpers

func currentTarget(p *plan.SessionPlan) *controller.TransitionTarget {
	slot := p.CurrentSlot()
	if slot == nil {
		return nil
	}
	return &controller.TransitionTarget{
		Problem:   slot.Problem,
		SlotID:    slot.ID,
		PartIndex: p.PartIndex,
		SlotIndex: p.SlotIndex,
		Epoch:     p.Epoch(),
	}
}

// lastAnswered finds the most recently answered canonical slot.
func lastAnswered(p *plan.SessionPlan) (part, slot int, ok bool) {
	for i := len(p.Results) - 1; i >= 0; i-- {
		r := p.Results[i]
		if !r.IsRetry {
			return r.PartIndex, r.SlotIndex, true
		}
	}
	return 0, 0, false
}

func cheerPollCmd() tea.Cmd {
	return tea.Tick(cheerPollEvery, func(t time.Time) tea.Msg {
		return cheerPollMsg(t)
	})
}

func endCmd(early bool) tea.Cmd {
	return func() tea.Msg { return sessionEndMsg{early: early} }
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}
