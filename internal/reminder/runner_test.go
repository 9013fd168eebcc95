package reminder

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerRunnerFiresAfterDelayThenInterval(t *testing.T) {
	r := NewTickerRunner()

	var fired atomic.Int32
	r.Register("test-task", 20*time.Millisecond, 10*time.Millisecond, func() {
		fired.Add(1)
	})
	defer r.Cancel("test-task")

	time.Sleep(5 * time.Millisecond)
	if n := fired.Load(); n != 0 {
		t.Errorf("fired %d times before initial delay elapsed", n)
	}

	time.Sleep(100 * time.Millisecond)
	if n := fired.Load(); n < 2 {
		t.Errorf("fired %d times, want at least 2 (initial + ticks)", n)
	}
}

func TestTickerRunnerCancelStopsFiring(t *testing.T) {
	r := NewTickerRunner()

	var fired atomic.Int32
	r.Register("test-task", 10*time.Millisecond, 0, func() {
		fired.Add(1)
	})

	time.Sleep(35 * time.Millisecond)
	r.Cancel("test-task")
	if r.IsRegistered("test-task") {
		t.Error("task still registered after cancel")
	}

	before := fired.Load()
	time.Sleep(50 * time.Millisecond)
	after := fired.Load()

	// One in-flight firing may land right at cancel time; no more after.
	if after > before+1 {
		t.Errorf("task kept firing after cancel: %d -> %d", before, after)
	}
}

func TestTickerRunnerRegisterReplacesPrevious(t *testing.T) {
	r := NewTickerRunner()
	defer r.Cancel("test-task")

	var first, second atomic.Int32
	r.Register("test-task", 10*time.Millisecond, 0, func() {
		first.Add(1)
	})
	r.Register("test-task", 10*time.Millisecond, 0, func() {
		second.Add(1)
	})

	time.Sleep(50 * time.Millisecond)

	if n := second.Load(); n < 1 {
		t.Errorf("replacement task fired %d times, want at least 1", n)
	}
	// The replaced task may have squeezed in one firing before the swap,
	// but it must not keep ticking.
	if n := first.Load(); n > 1 {
		t.Errorf("replaced task fired %d times, want at most 1", n)
	}
}

func TestTickerRunnerIsRegistered(t *testing.T) {
	r := NewTickerRunner()

	if r.IsRegistered("test-task") {
		t.Error("nothing registered yet")
	}

	r.Register("test-task", time.Hour, time.Hour, func() {})
	if !r.IsRegistered("test-task") {
		t.Error("expected registered after Register")
	}

	r.Cancel("test-task")
	if r.IsRegistered("test-task") {
		t.Error("expected unregistered after Cancel")
	}
}

func TestTickerRunnerCancelUnknownIsNoop(t *testing.T) {
	r := NewTickerRunner()
	r.Cancel("never-registered")
}

func TestTickerRunnerIndependentNames(t *testing.T) {
	r := NewTickerRunner()
	defer r.Cancel("task-b")

	r.Register("task-a", time.Hour, time.Hour, func() {})
	r.Register("task-b", time.Hour, time.Hour, func() {})

	r.Cancel("task-a")
	if r.IsRegistered("task-a") {
		t.Error("task-a should be cancelled")
	}
	if !r.IsRegistered("task-b") {
		t.Error("task-b should be unaffected")
	}
}
