package session

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func newTestRegistry(capacity int, ttl time.Duration) (*Registry[int], *time.Time) {
	r := New[int](capacity, ttl)
	current := time.Now()
	r.now = func() time.Time { return current }
	return r, &current
}

func TestRegistry_PutGet(t *testing.T) {
	r, _ := newTestRegistry(3, time.Minute)
	defer r.Close()

	r.Put("a", 1)
	r.Put("b", 2)

	if v, ok := r.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = %d, %v; want 1, true", v, ok)
	}
	if _, ok := r.Get("missing"); ok {
		t.Fatal("Get(missing) should be a miss")
	}
}

func TestRegistry_CapacityEviction(t *testing.T) {
	r, _ := newTestRegistry(2, time.Minute)
	defer r.Close()

	r.Put("a", 1)
	r.Put("b", 2)
	r.Get("a") // make "a" most recently used
	r.Put("c", 3)

	if _, ok := r.Get("b"); ok {
		t.Fatal("least recently used entry should have been evicted")
	}
	if _, ok := r.Get("a"); !ok {
		t.Fatal("recently used entry should survive eviction")
	}
	if _, ok := r.Get("c"); !ok {
		t.Fatal("newest entry should be present")
	}
}

func TestRegistry_TTLExpiry(t *testing.T) {
	r, current := newTestRegistry(10, time.Minute)
	defer r.Close()

	r.Put("a", 1)
	*current = current.Add(2 * time.Minute)

	if _, ok := r.Get("a"); ok {
		t.Fatal("expired entry should be a miss")
	}
	if r.Len() != 0 {
		t.Fatalf("Len() = %d after expired read; want 0", r.Len())
	}
}

func TestRegistry_GetRefreshesTTL(t *testing.T) {
	r, current := newTestRegistry(10, time.Minute)
	defer r.Close()

	r.Put("a", 1)
	*current = current.Add(45 * time.Second)
	if _, ok := r.Get("a"); !ok {
		t.Fatal("entry should still be live before TTL")
	}
	// The read above reset the clock; another 45s keeps it under a full TTL.
	*current = current.Add(45 * time.Second)
	if _, ok := r.Get("a"); !ok {
		t.Fatal("refreshed entry should still be live")
	}
}

func TestRegistry_Delete(t *testing.T) {
	r, _ := newTestRegistry(10, time.Minute)
	defer r.Close()

	r.Put("a", 1)
	r.Delete("a")
	if _, ok := r.Get("a"); ok {
		t.Fatal("deleted entry should be absent")
	}
	r.Delete("a") // deleting twice is a no-op
}

func TestRegistry_Sweep(t *testing.T) {
	r, current := newTestRegistry(10, time.Minute)
	defer r.Close()

	r.Put("a", 1)
	r.Put("b", 2)
	*current = current.Add(2 * time.Minute)
	r.Put("c", 3)

	r.sweep()
	if r.Len() != 1 {
		t.Fatalf("Len() = %d after sweep; want 1", r.Len())
	}
	if _, ok := r.Get("c"); !ok {
		t.Fatal("live entry should survive sweep")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := New[int](100, time.Minute)
	defer r.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				key := fmt.Sprintf("k%d", j%50)
				r.Put(key, n)
				r.Get(key)
				if j%10 == 0 {
					r.Delete(key)
				}
			}
		}(i)
	}
	wg.Wait()

	if r.Len() > 100 {
		t.Fatalf("Len() = %d; capacity bound violated", r.Len())
	}
}
