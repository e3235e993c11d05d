package payment

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/barohub/barohub/internal/catalog"
)

func TestSession_LinearFlow(t *testing.T) {
	s := Begin(catalog.Course{ID: "c1", Title: "T", Price: 99})
	if s.Phase != Idle {
		t.Fatalf("new session phase = %s, want idle", s.Phase)
	}
	if !s.CanClose() {
		t.Fatal("idle session must be closable")
	}

	if err := s.Choose("waafi"); err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if s.Phase != Processing {
		t.Fatalf("phase = %s, want processing", s.Phase)
	}
	if s.Gateway.Name != "WaafiPay" || s.Gateway.Network != "Hormuud" {
		t.Fatalf("gateway = %#v, want WaafiPay/Hormuud", s.Gateway)
	}
	if !strings.HasPrefix(s.Reference, "pay-") {
		t.Fatalf("reference = %q, want pay- prefix", s.Reference)
	}
	if s.CanClose() {
		t.Fatal("processing session must refuse to close")
	}

	if err := s.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if s.Phase != Success {
		t.Fatalf("phase = %s, want success", s.Phase)
	}
	if !s.CanClose() {
		t.Fatal("success session must be closable")
	}
}

func TestSession_RejectsOutOfOrderTransitions(t *testing.T) {
	s := Begin(catalog.Course{ID: "c1"})

	if err := s.Complete(); !errors.Is(err, ErrBadTransition) {
		t.Fatalf("Complete from idle = %v, want ErrBadTransition", err)
	}

	if err := s.Choose("waafi"); err != nil {
		t.Fatal(err)
	}
	if err := s.Choose("edahab"); !errors.Is(err, ErrBadTransition) {
		t.Fatalf("second Choose = %v, want ErrBadTransition", err)
	}

	if err := s.Complete(); err != nil {
		t.Fatal(err)
	}
	if err := s.Complete(); !errors.Is(err, ErrBadTransition) {
		t.Fatalf("Complete from success = %v, want ErrBadTransition", err)
	}
}

func TestSession_UnknownGateway(t *testing.T) {
	s := Begin(catalog.Course{ID: "c1"})
	if err := s.Choose("paypal"); !errors.Is(err, ErrUnknownGateway) {
		t.Fatalf("Choose = %v, want ErrUnknownGateway", err)
	}
	if s.Phase != Idle {
		t.Fatalf("failed Choose must not advance the phase, got %s", s.Phase)
	}
}

func TestTimings(t *testing.T) {
	if ProcessingDelay != 2*time.Second {
		t.Fatalf("ProcessingDelay = %v, want 2s", ProcessingDelay)
	}
	if SuccessHold != 1500*time.Millisecond {
		t.Fatalf("SuccessHold = %v, want 1.5s", SuccessHold)
	}
}

func TestGatewaySet(t *testing.T) {
	if len(Gateways) != 2 {
		t.Fatalf("Gateways = %d, want 2", len(Gateways))
	}
	if _, ok := GatewayByID("edahab"); !ok {
		t.Fatal("edahab must be in the fixed set")
	}
	if _, ok := GatewayByID("stripe"); ok {
		t.Fatal("unknown ids must not resolve")
	}
}
