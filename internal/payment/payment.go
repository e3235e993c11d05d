// Package payment implements the simulated checkout: a strictly linear
// per-purchase state machine with fixed delays and no real settlement. No
// purchase outcome is persisted and no course access is ever granted.
package payment

import (
	"errors"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/barohub/barohub/internal/catalog"
)

// Phase is the state of a checkout session.
type Phase int

const (
	// Idle shows the gateway picker.
	Idle Phase = iota
	// Processing is the fixed-duration wait after a gateway was chosen.
	// The sheet cannot be closed in this phase.
	Processing
	// Success is held briefly before the session auto-clears.
	Success
)

// String returns the phase label used in logs and tests.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Processing:
		return "processing"
	case Success:
		return "success"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Timings of the simulation. The processing wait cannot be cancelled once
// started; the success hold ends with the session clearing itself.
const (
	ProcessingDelay = 2000 * time.Millisecond
	SuccessHold     = 1500 * time.Millisecond
)

// Gateway is a named simulated payment provider. Nothing behind it settles
// anything.
type Gateway struct {
	ID      string
	Name    string
	Network string
}

// Gateways is the fixed provider set offered in the picker.
var Gateways = []Gateway{
	{ID: "waafi", Name: "WaafiPay", Network: "Hormuud"},
	{ID: "edahab", Name: "e-Dahab Plus", Network: "Somtel"},
}

// GatewayByID resolves a gateway from the fixed set.
func GatewayByID(id string) (Gateway, bool) {
	for _, g := range Gateways {
		if g.ID == id {
			return g, true
		}
	}
	return Gateway{}, false
}

var (
	// ErrBadTransition is returned for any out-of-order phase change.
	ErrBadTransition = errors.New("payment: invalid phase transition")
	// ErrUnknownGateway is returned when Choose is given an id outside
	// the fixed set.
	ErrUnknownGateway = errors.New("payment: unknown gateway")
)

// Session is one purchase attempt. It is created in Idle, advances only
// forward, and carries the course being paid for so a Success phase can
// never exist without one.
type Session struct {
	Course    catalog.Course
	Phase     Phase
	Gateway   Gateway
	Reference string
}

// Begin opens a checkout session for course in the Idle phase.
func Begin(course catalog.Course) *Session {
	return &Session{Course: course, Phase: Idle}
}

// Choose records the selected gateway and moves Idle -> Processing, minting
// the reference token shown on the receipt.
func (s *Session) Choose(gatewayID string) error {
	if s.Phase != Idle {
		return fmt.Errorf("%w: choose in %s", ErrBadTransition, s.Phase)
	}
	gw, ok := GatewayByID(gatewayID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGateway, gatewayID)
	}
	s.Gateway = gw
	s.Reference = newReference()
	s.Phase = Processing
	return nil
}

// Complete moves Processing -> Success. The caller invokes it when the
// processing delay elapses; there is no failure outcome.
func (s *Session) Complete() error {
	if s.Phase != Processing {
		return fmt.Errorf("%w: complete in %s", ErrBadTransition, s.Phase)
	}
	s.Phase = Success
	return nil
}

// CanClose reports whether the sheet may be dismissed. Cancel is blocked
// mid-flight only.
func (s *Session) CanClose() bool {
	return s.Phase != Processing
}

func newReference() string {
	id, err := gonanoid.New()
	if err != nil {
		// Entropy exhaustion is not survivable in any useful way here;
		// fall back to a timestamp token so checkout still completes.
		return fmt.Sprintf("pay-%d", time.Now().UnixNano())
	}
	return "pay-" + id
}
