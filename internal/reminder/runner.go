package reminder

import (
	"sync"
	"time"
)

// Runner is the minimal periodic-task facility the scheduler needs: at
// most one active registration per logical name, replaced wholesale on
// re-registration. Cancel only prevents future firings; a task already
// triggered runs to completion.
type Runner interface {
	Register(name string, interval, initialDelay time.Duration, task func())
	Cancel(name string)
	IsRegistered(name string) bool
}

// TickerRunner runs registered tasks on a timer goroutine: first firing
// after the initial delay, then every interval.
type TickerRunner struct {
	mu    sync.Mutex
	tasks map[string]chan struct{}
}

func NewTickerRunner() *TickerRunner {
	return &TickerRunner{
		tasks: make(map[string]chan struct{}),
	}
}

func (r *TickerRunner) Register(name string, interval, initialDelay time.Duration, task func()) {
	stop := make(chan struct{})

	r.mu.Lock()
	if prev, ok := r.tasks[name]; ok {
		close(prev)
	}
	r.tasks[name] = stop
	r.mu.Unlock()

	go func() {
		timer := time.NewTimer(initialDelay)
		defer timer.Stop()

		select {
		case <-stop:
			return
		case <-timer.C:
		}
		task()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				task()
			}
		}
	}()
}

func (r *TickerRunner) Cancel(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stop, ok := r.tasks[name]; ok {
		close(stop)
		delete(r.tasks, name)
	}
}

func (r *TickerRunner) IsRegistered(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.tasks[name]
	return ok
}
