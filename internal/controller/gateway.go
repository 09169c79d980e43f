package controller

// RequestKind classifies one-shot external requests arriving from outside
// the host loop (a companion teacher surface, in practice).
type RequestKind string

const (
	RequestPause      RequestKind = "pause"
	RequestResume     RequestKind = "resume"
	RequestRodValue   RequestKind = "rod-value"
	RequestRodVisible RequestKind = "rod-visible"
	RequestBroadcast  RequestKind = "broadcast"
)

// Request is a single external command. ID is the sender's idempotency
// token; a given ID is applied at most once per gateway lifetime, but
// every delivery is acknowledged.
type Request struct {
	Kind    RequestKind
	ID      string
	Value   int    // rod-value payload
	Visible bool   // rod-visible payload
	Message string // pause / broadcast payload
}

// GatewayActions is what the gateway is allowed to do to the session.
// The host loop implements it; every method runs on the host loop.
type GatewayActions interface {
	ExternalPause(message string)
	ExternalResume()
	SetRodValue(v int)
	SetRodVisible(visible bool)
	Broadcast(message string)
}

// Gateway applies external requests exactly once each. Not goroutine-safe
// on its own; the host loop funnels requests through it one at a time.
type Gateway struct {
	Actions GatewayActions

	seen map[RequestKind]string
}

// NewGateway returns a gateway dispatching to actions.
func NewGateway(actions GatewayActions) *Gateway {
	return &Gateway{Actions: actions, seen: make(map[RequestKind]string)}
}

// Offer delivers one request. The bool reports whether the request was
// applied; duplicates and phase-ignored requests return false but still
// count as acknowledged, so the sender never retries them.
func (g *Gateway) Offer(phase Phase, req Request) bool {
	if g.seen[req.Kind] == req.ID && req.ID != "" {
		return false
	}
	g.seen[req.Kind] = req.ID

	switch req.Kind {
	case RequestPause:
		if phase == PhasePaused {
			return false
		}
		g.Actions.ExternalPause(req.Message)
	case RequestResume:
		if phase != PhasePaused {
			return false
		}
		g.Actions.ExternalResume()
	case RequestRodValue:
		if !phase.AcceptsInput() {
			return false
		}
		g.Actions.SetRodValue(req.Value)
	case RequestRodVisible:
		if !phase.AcceptsInput() {
			return false
		}
		g.Actions.SetRodVisible(req.Visible)
	case RequestBroadcast:
		g.Actions.Broadcast(req.Message)
	default:
		return false
	}
	return true
}

// Clear resets the duplicate guard for one kind, letting the sender reuse
// an ID after it explicitly withdraws the prior request.
func (g *Gateway) Clear(kind RequestKind) {
	delete(g.seen, kind)
}
