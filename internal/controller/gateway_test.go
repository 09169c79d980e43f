package controller

import "testing"

type recordedAction struct {
	name    string
	message string
	value   int
	visible bool
}

type fakeActions struct {
	log []recordedAction
}

func (f *fakeActions) ExternalPause(msg string) {
	f.log = append(f.log, recordedAction{name: "pause", message: msg})
}

func (f *fakeActions) ExternalResume() {
	f.log = append(f.log, recordedAction{name: "resume"})
}

func (f *fakeActions) SetRodValue(v int) {
	f.log = append(f.log, recordedAction{name: "rod-value", value: v})
}

func (f *fakeActions) SetRodVisible(visible bool) {
	f.log = append(f.log, recordedAction{name: "rod-visible", visible: visible})
}

func (f *fakeActions) Broadcast(msg string) {
	f.log = append(f.log, recordedAction{name: "broadcast", message: msg})
}

func TestGatewayAppliesEachIDOnce(t *testing.T) {
	acts := &fakeActions{}
	g := NewGateway(acts)

	req := Request{Kind: RequestPause, ID: "req-1", Message: "snack break"}
	if !g.Offer(PhaseInputting, req) {
		t.Fatal("first delivery not applied")
	}
	if g.Offer(PhaseInputting, req) {
		t.Error("duplicate delivery applied")
	}
	if g.Offer(PhasePaused, req) {
		t.Error("duplicate delivery applied even in a new phase")
	}
	if len(acts.log) != 1 {
		t.Fatalf("actions fired %d times, want 1", len(acts.log))
	}
	if acts.log[0].message != "snack break" {
		t.Errorf("pause message = %q", acts.log[0].message)
	}
}

func TestGatewayPhaseIgnoredStillConsumesID(t *testing.T) {
	acts := &fakeActions{}
	g := NewGateway(acts)

	// Resume while not paused: ignored, but the ID is spent so a retry of
	// the same request stays silent.
	req := Request{Kind: RequestResume, ID: "req-2"}
	if g.Offer(PhaseInputting, req) {
		t.Error("resume applied while not paused")
	}
	if g.Offer(PhasePaused, req) {
		t.Error("spent ID applied on retry")
	}
	if len(acts.log) != 0 {
		t.Errorf("actions fired %d times, want 0", len(acts.log))
	}
}

func TestGatewayGuardIsPerKind(t *testing.T) {
	acts := &fakeActions{}
	g := NewGateway(acts)

	// The same ID on different kinds is two distinct requests.
	g.Offer(PhaseInputting, Request{Kind: RequestRodValue, ID: "x", Value: 7})
	g.Offer(PhaseInputting, Request{Kind: RequestRodVisible, ID: "x", Visible: true})
	if len(acts.log) != 2 {
		t.Fatalf("actions fired %d times, want 2", len(acts.log))
	}
	if acts.log[0].value != 7 || !acts.log[1].visible {
		t.Errorf("payloads = %+v", acts.log)
	}
}

func TestGatewayClearResetsGuard(t *testing.T) {
	acts := &fakeActions{}
	g := NewGateway(acts)

	req := Request{Kind: RequestBroadcast, ID: "b-1", Message: "well done"}
	g.Offer(PhaseInputting, req)
	g.Clear(RequestBroadcast)
	if !g.Offer(PhaseInputting, req) {
		t.Error("cleared kind refused a reused ID")
	}
	if len(acts.log) != 2 {
		t.Errorf("actions fired %d times, want 2", len(acts.log))
	}
}

func TestGatewayRodValueIgnoredWhilePaused(t *testing.T) {
	acts := &fakeActions{}
	g := NewGateway(acts)

	if g.Offer(PhasePaused, Request{Kind: RequestRodValue, ID: "v-1", Value: 3}) {
		t.Error("rod value applied while paused")
	}
	if len(acts.log) != 0 {
		t.Errorf("actions fired %d times, want 0", len(acts.log))
	}
}

func TestGatewayRodControlNeedsInputPhase(t *testing.T) {
	acts := &fakeActions{}
	g := NewGateway(acts)

	for _, phase := range []Phase{PhaseSubmitting, PhaseShowingFeedback, PhaseTransitioning, PhaseLoading} {
		if g.Offer(phase, Request{Kind: RequestRodValue, Value: 9}) {
			t.Errorf("rod value applied during %s", phase)
		}
		if g.Offer(phase, Request{Kind: RequestRodVisible, Visible: true}) {
			t.Errorf("rod visibility applied during %s", phase)
		}
	}
	if len(acts.log) != 0 {
		t.Fatalf("actions fired %d times, want 0", len(acts.log))
	}

	if !g.Offer(PhaseHelpMode, Request{Kind: RequestRodValue, Value: 9}) {
		t.Error("rod value refused during help mode")
	}
}
