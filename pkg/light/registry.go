package light

import (
	"sync"

	"github.com/jmylchreest/keylab/internal/errors"
)

// Registry records every identify-number handed out. A number stays taken
// for the life of the process; the only exception is a batch load that
// fails part way, which gives back the numbers it claimed. Reset exists so
// tests can start from a clean process state.
type Registry struct {
	mu      sync.Mutex
	numbers map[int]struct{}
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{numbers: make(map[int]struct{})}
}

// Reserve claims n permanently. The membership check and the insert happen
// under one lock so two devices can never claim the same number.
func (r *Registry) Reserve(n int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.numbers[n]; taken {
		return errors.Valuef("identify number %d is already in use", n)
	}
	r.numbers[n] = struct{}{}
	return nil
}

// Contains reports whether n has been reserved
func (r *Registry) Contains(n int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, taken := r.numbers[n]
	return taken
}

// Len returns the number of reserved identify-numbers
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.numbers)
}

// release gives n back
func (r *Registry) release(n int) {
	r.mu.Lock()
	delete(r.numbers, n)
	r.mu.Unlock()
}

// releaseDevices gives back the numbers of devices built by a failed batch
func releaseDevices(devices []Device) {
	for _, d := range devices {
		defaultRegistry.release(d.IdentifyNumber())
	}
}

// Reset forgets every reservation
func (r *Registry) Reset() {
	r.mu.Lock()
	r.numbers = make(map[int]struct{})
	r.mu.Unlock()
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by all device constructors
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// ResetRegistry clears the process-wide registry. Intended for tests.
func ResetRegistry() {
	defaultRegistry.Reset()
}
