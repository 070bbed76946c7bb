package pointer

import "sync"

// Listener receives global pointer samples from a Broker.
//
// Listeners are keyed by identity, so implementations should be pointer
// types.
type Listener interface {
	OnGlobalPointer(s Sample)
}

// ListenerFunc adapts a function to the Listener interface. A ListenerFunc
// is not comparable; wrap it in a pointer before registering it.
type ListenerFunc func(s Sample)

// OnGlobalPointer calls f(s).
func (f *ListenerFunc) OnGlobalPointer(s Sample) {
	(*f)(s)
}

// Broker fans raw pointer samples out to registered listeners.
type Broker struct {
	mu        sync.Mutex
	listeners map[Listener]struct{}
	order     []Listener
}

// NewBroker returns an empty broker.
func NewBroker() *Broker {
	return &Broker{listeners: make(map[Listener]struct{})}
}

var (
	globalOnce   sync.Once
	globalBroker *Broker
)

// Global returns the process-wide broker.
func Global() *Broker {
	globalOnce.Do(func() {
		globalBroker = NewBroker()
	})
	return globalBroker
}

// Add registers l. Adding a listener twice has no extra effect.
func (b *Broker) Add(l Listener) {
	if l == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.listeners[l]; ok {
		return
	}
	b.listeners[l] = struct{}{}
	b.order = append(b.order, l)
}

// Remove unregisters l. Removing an absent listener is a no-op.
func (b *Broker) Remove(l Listener) {
	if l == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.listeners[l]; !ok {
		return
	}
	delete(b.listeners, l)
	for i := range b.order {
		if b.order[i] == l {
			b.order = append(b.order[:i:i], b.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of registered listeners.
func (b *Broker) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

// Dispatch delivers s to every listener registered when the dispatch began.
// A listener removed by another listener during the same dispatch is
// skipped; a listener added during it first sees the next sample.
func (b *Broker) Dispatch(s Sample) {
	b.mu.Lock()
	snapshot := make([]Listener, len(b.order))
	copy(snapshot, b.order)
	b.mu.Unlock()

	for _, l := range snapshot {
		if !b.has(l) {
			continue
		}
		l.OnGlobalPointer(s)
	}
}

func (b *Broker) has(l Listener) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.listeners[l]
	return ok
}
