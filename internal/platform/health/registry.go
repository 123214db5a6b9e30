// Package health keeps the dependency checks behind the readiness probe:
// the table store, the object store and the hosted backend.
package health

import (
	"context"
	"fmt"
	"sync"

	"github.com/MiguelCav2025/sitecav/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is safe for concurrent use. Checkers are keyed by name, so
// registering a second checker under a taken name replaces the first.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register adds checker, replacing any checker with the same name.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	for i, c := range r.checkers {
		if c.Name() == name {
			r.checkers[i] = checker
			return
		}
	}
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every check concurrently under ctx and returns the results
// by name; nil means healthy. A panicking check is reported as failed.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() {
			defer func() {
				if v := recover(); v != nil {
					errs[i] = fmt.Errorf("health check panicked: %v", v)
				}
			}()
			errs[i] = c.HealthCheck(ctx)
		})
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

// Check turns a ping function, such as a database pool's, into a named
// checker.
type Check struct {
	name string
	fn   func(ctx context.Context) error
}

// NewCheck returns a checker named name that calls fn.
func NewCheck(name string, fn func(ctx context.Context) error) *Check {
	return &Check{name: name, fn: fn}
}

func (c *Check) Name() string { return c.name }

func (c *Check) HealthCheck(ctx context.Context) error { return c.fn(ctx) }
