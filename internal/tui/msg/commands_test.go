package msg

import (
	"testing"
	"time"
)

func TestTick(t *testing.T) {
	cmd := Tick()

	if cmd == nil {
		t.Fatal("Tick() returned nil command")
	}

	// Execute the command and verify the message type
	// Note: This will block for ~100ms due to tea.Tick
	start := time.Now()
	result := cmd()
	elapsed := time.Since(start)

	// Should take approximately 100ms (with some tolerance)
	if elapsed < 50*time.Millisecond {
		t.Errorf("Tick() returned too quickly: %v", elapsed)
	}
	if elapsed > 200*time.Millisecond {
		t.Errorf("Tick() took too long: %v", elapsed)
	}

	// Result should be a TickMsg
	tickMsg, ok := result.(TickMsg)
	if !ok {
		t.Errorf("Tick() returned %T, want TickMsg", result)
	}

	// The time should be close to now
	tickTime := time.Time(tickMsg)
	timeDiff := time.Since(tickTime)
	if timeDiff > 100*time.Millisecond {
		t.Errorf("TickMsg time is too old: %v ago", timeDiff)
	}
}

func TestTickEvery(t *testing.T) {
	cmd := TickEvery(20 * time.Millisecond)

	start := time.Now()
	result := cmd()
	elapsed := time.Since(start)

	if elapsed < 10*time.Millisecond {
		t.Errorf("TickEvery(20ms) returned too quickly: %v", elapsed)
	}
	if elapsed > 100*time.Millisecond {
		t.Errorf("TickEvery(20ms) took too long: %v", elapsed)
	}

	if _, ok := result.(TickMsg); !ok {
		t.Errorf("TickEvery() returned %T, want TickMsg", result)
	}
}

func TestTickEveryRejectsNonPositiveInterval(t *testing.T) {
	// A zero interval falls back to the default rather than spinning.
	cmd := TickEvery(0)

	start := time.Now()
	cmd()
	elapsed := time.Since(start)

	if elapsed < 50*time.Millisecond {
		t.Errorf("TickEvery(0) should use the default interval, returned after %v", elapsed)
	}
}

func TestNavigate(t *testing.T) {
	cmd := Navigate("/projects")

	if cmd == nil {
		t.Fatal("Navigate() returned nil command")
	}

	result := cmd()

	navMsg, ok := result.(NavigateMsg)
	if !ok {
		t.Fatalf("Navigate()() returned %T, want NavigateMsg", result)
	}
	if navMsg.Route != "/projects" {
		t.Errorf("Route = %q, want %q", navMsg.Route, "/projects")
	}
}

func TestNavigateIsRepeatable(t *testing.T) {
	cmd := Navigate("/projects")

	first := cmd()
	second := cmd()

	if first != second {
		t.Errorf("Navigate() command is not stable across calls: %v vs %v", first, second)
	}
}
