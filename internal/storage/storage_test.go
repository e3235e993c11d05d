package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestMemory_GetAbsentKey(t *testing.T) {
	kv := NewMemory()

	v, ok, err := kv.Get("missing")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if ok || v != "" {
		t.Fatalf("Get = (%q, %v), want absent", v, ok)
	}
}

func TestMemory_SetThenGet(t *testing.T) {
	kv := NewMemory()

	if err := kv.Set("k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := kv.Get("k")
	if err != nil || !ok || v != "v" {
		t.Fatalf("Get = (%q, %v, %v), want (v, true, nil)", v, ok, err)
	}

	// Overwrite keeps the latest value only.
	if err := kv.Set("k", "v2"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, _, _ = kv.Get("k")
	if v != "v2" {
		t.Fatalf("Get after overwrite = %q, want v2", v)
	}
}

func TestMemory_InjectedWriteFailure(t *testing.T) {
	kv := NewMemory()
	kv.SetErr = errors.New("disk full")

	if err := kv.Set("k", "v"); err == nil {
		t.Fatal("Set should surface the injected error")
	}
	if _, ok, _ := kv.Get("k"); ok {
		t.Fatal("failed Set must not store a value")
	}
}

func TestBadger_RoundTripAcrossReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")

	kv, err := OpenBadger(dir, nil)
	if err != nil {
		t.Fatalf("OpenBadger: %v", err)
	}
	if err := kv.Set("barohub_admin_mode", "true"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := kv.Get("barohub_courses_data"); ok {
		t.Fatal("unwritten key should be absent")
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Simulated process restart.
	kv, err = OpenBadger(dir, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = kv.Close() }()

	v, ok, err := kv.Get("barohub_admin_mode")
	if err != nil || !ok || v != "true" {
		t.Fatalf("Get after reopen = (%q, %v, %v), want (true, true, nil)", v, ok, err)
	}
}
