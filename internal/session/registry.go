// Package session provides a bounded, expiring registry for conversation
// state keyed by opaque session ids. It replaces an ambient global map: the
// registry is constructed with explicit capacity and TTL and injected into
// the services that need it. Safe for concurrent use.
package session

import (
	"container/list"
	"sync"
	"time"
)

type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
	element   *list.Element
}

// Registry is a thread-safe LRU map with per-entry TTL. When full, the least
// recently used entry is evicted; expired entries are treated as absent and
// swept by a janitor goroutine.
type Registry[V any] struct {
	mu       sync.Mutex
	items    map[string]*entry[V]
	order    *list.List
	capacity int
	ttl      time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once

	now func() time.Time // overridable in tests
}

// New creates a Registry with the given capacity and TTL and starts its
// janitor. Call Close to stop the janitor.
func New[V any](capacity int, ttl time.Duration) *Registry[V] {
	if capacity <= 0 {
		capacity = 1000
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	r := &Registry[V]{
		items:    make(map[string]*entry[V], capacity),
		order:    list.New(),
		capacity: capacity,
		ttl:      ttl,
		stopCh:   make(chan struct{}),
		now:      time.Now,
	}
	go r.janitor()
	return r
}

// Put stores or replaces the value for id and resets its TTL.
func (r *Registry[V]) Put(id string, value V) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expires := r.now().Add(r.ttl)
	if e, ok := r.items[id]; ok {
		e.value = value
		e.expiresAt = expires
		r.order.MoveToFront(e.element)
		return
	}

	if len(r.items) >= r.capacity {
		r.evictOldest()
	}

	element := r.order.PushFront(id)
	r.items[id] = &entry[V]{key: id, value: value, expiresAt: expires, element: element}
}

// Get returns the value for id. An expired entry is removed and reported as
// a miss. A hit refreshes both the TTL and the LRU position.
func (r *Registry[V]) Get(id string) (V, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero V
	e, ok := r.items[id]
	if !ok {
		return zero, false
	}
	if r.now().After(e.expiresAt) {
		r.remove(e)
		return zero, false
	}

	e.expiresAt = r.now().Add(r.ttl)
	r.order.MoveToFront(e.element)
	return e.value, true
}

// Delete removes an entry if present.
func (r *Registry[V]) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.items[id]; ok {
		r.remove(e)
	}
}

// Len reports the number of live entries, counting not-yet-swept expired ones.
func (r *Registry[V]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Close stops the janitor goroutine.
func (r *Registry[V]) Close() {
	r.stopOnce.Do(func() { close(r.stopCh) })
}

// evictOldest removes the least recently used entry. Must hold mu.
func (r *Registry[V]) evictOldest() {
	oldest := r.order.Back()
	if oldest == nil {
		return
	}
	key := oldest.Value.(string)
	if e, ok := r.items[key]; ok {
		r.remove(e)
	}
}

// remove unlinks an entry. Must hold mu.
func (r *Registry[V]) remove(e *entry[V]) {
	delete(r.items, e.key)
	r.order.Remove(e.element)
}

func (r *Registry[V]) janitor() {
	interval := r.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep()
		case <-r.stopCh:
			return
		}
	}
}

// sweep drops every expired entry.
func (r *Registry[V]) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for _, e := range r.items {
		if now.After(e.expiresAt) {
			r.remove(e)
		}
	}
}
