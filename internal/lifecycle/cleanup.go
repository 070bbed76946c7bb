// Package lifecycle runs the overlay's teardown steps exactly once, in
// reverse registration order, within a time limit.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// DefaultTimeout bounds a whole teardown.
const DefaultTimeout = 5 * time.Second

// ErrTimeout is reported when teardown does not finish in time.
var ErrTimeout = errors.New("cleanup timeout exceeded")

// Resource is something that must be released on shutdown.
type Resource interface {
	Cleanup() error
	Name() string
}

type funcResource struct {
	name string
	fn   func() error
}

func (r *funcResource) Cleanup() error { return r.fn() }

func (r *funcResource) Name() string { return r.name }

// Manager collects resources and releases them once.
type Manager struct {
	mu        sync.Mutex
	resources []Resource
	timeout   time.Duration
	once      sync.Once
	errs      []error
}

// NewManager creates a manager; a non-positive timeout selects
// DefaultTimeout.
func NewManager(timeout time.Duration) *Manager {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Manager{timeout: timeout}
}

// Register adds a resource. Resources registered later are released first.
func (m *Manager) Register(r Resource) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resources = append(m.resources, r)
}

// RegisterFunc registers a named cleanup function.
func (m *Manager) RegisterFunc(name string, fn func() error) {
	m.Register(&funcResource{name: name, fn: fn})
}

// Len returns the number of registered resources.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.resources)
}

// Execute releases every resource. Later calls return the first result.
// Resources run on a separate goroutine so a stuck step cannot outlive the
// timeout; work bound to the caller's OS thread must not be registered.
func (m *Manager) Execute() []error {
	m.once.Do(func() {
		m.errs = m.execute()
	})
	return m.errs
}

func (m *Manager) execute() []error {
	m.mu.Lock()
	resources := make([]Resource, len(m.resources))
	copy(resources, m.resources)
	m.mu.Unlock()

	if len(resources) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	done := make(chan struct{})
	var errs []error
	var mu sync.Mutex
	record := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	go func() {
		defer close(done)
		for i := len(resources) - 1; i >= 0; i-- {
			resource := resources[i]
			func() {
				defer func() {
					if r := recover(); r != nil {
						record(fmt.Errorf("%s: panic during cleanup: %v", resource.Name(), r))
						log.Printf("cleanup: panic cleaning up %s: %v", resource.Name(), r)
					}
				}()

				if err := resource.Cleanup(); err != nil {
					record(fmt.Errorf("%s: %w", resource.Name(), err))
					log.Printf("cleanup: error cleaning up %s: %v", resource.Name(), err)
				} else {
					log.Printf("cleanup: cleaned up %s", resource.Name())
				}
			}()
		}
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Printf("cleanup: timeout after %v, some resources may not have been cleaned up", m.timeout)
		record(ErrTimeout)
	}

	mu.Lock()
	defer mu.Unlock()
	out := make([]error, len(errs))
	copy(out, errs)
	return out
}
