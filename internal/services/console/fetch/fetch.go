// Package fetch coordinates concurrent collection loads for console views.
//
// Loads fan out as independent tasks and join once every task has
// settled. One task failing never aborts its siblings: the failed
// collection simply stays empty while the aggregate error tells the view
// to show a single "data missing" banner over whatever partial data
// arrived.
package fetch

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Task loads one collection and stores it on success. A failing task
// must leave its destination untouched.
type Task func(ctx context.Context) error

// Loader runs fan-out loads and guards against stale results.
//
// Each load carries a generation token. When user interaction triggers a
// new load while an old one is still in flight, the old load's results
// commit against a superseded generation and are discarded instead of
// overwriting fresher state.
type Loader struct {
	mu         sync.Mutex
	generation uint64
	logf       func(format string, args ...any)
}

// NewLoader builds a loader. A nil logf falls back to the standard logger.
func NewLoader(logf func(format string, args ...any)) *Loader {
	if logf == nil {
		logf = log.Printf
	}
	return &Loader{logf: logf}
}

// Begin starts a new load generation, superseding any in-flight load.
func (l *Loader) Begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.generation++
	return l.generation
}

// Current reports whether gen is still the latest load generation.
func (l *Loader) Current(gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return gen == l.generation
}

// Commit runs apply when gen is still current and reports whether it ran.
func (l *Loader) Commit(gen uint64, apply func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.generation {
		return false
	}
	if apply != nil {
		apply()
	}
	return true
}

// LoadAll runs the named tasks concurrently and waits for all of them to
// settle. Every failure is logged per resource; the returned error is
// the first failure observed and signals only that some data is missing.
func (l *Loader) LoadAll(ctx context.Context, tasks map[string]Task) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Zero-value errgroup on purpose: no shared cancellation, so one
	// failing fetch cannot abort its siblings.
	var group errgroup.Group
	for name, task := range tasks {
		if task == nil {
			continue
		}
		group.Go(func() error {
			if err := task(ctx); err != nil {
				l.logf("fetch %s failed: %v", name, err)
				return err
			}
			return nil
		})
	}
	return group.Wait()
}
