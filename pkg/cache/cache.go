// Package cache is the single shared holder of server data on the client side.
// Every read and write of remote state goes through it: stale-time suppressed
// fetches, serialized optimistic mutations with rollback, targeted
// invalidation and refcounted interval polling.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Key identifies one cached collection or entity: resource name plus filter
// parameters, e.g. "orders" or "orders|table=5". Invalidation matches by
// prefix, so "orders" covers every filtered orders key.
type Key string

// Loader fetches the authoritative value for a key from the server.
type Loader func(ctx context.Context) (any, error)

type entry struct {
	value     any
	updatedAt time.Time
	stale     bool
	err       error
}

type poller struct {
	refs int
	stop chan struct{}
}

type Store struct {
	mu       sync.Mutex
	entries  map[Key]*entry
	gens     map[Key]uint64
	mutLocks map[Key]*sync.Mutex
	watchers map[Key]map[chan any]bool // value: deliver loader results only
	pollers  map[Key]*poller

	group       singleflight.Group
	loadTimeout time.Duration
	log         *slog.Logger
}

func NewStore(log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		entries:     make(map[Key]*entry),
		gens:        make(map[Key]uint64),
		mutLocks:    make(map[Key]*sync.Mutex),
		watchers:    make(map[Key]map[chan any]bool),
		pollers:     make(map[Key]*poller),
		loadTimeout: 15 * time.Second,
		log:         log,
	}
}

// Read returns the cached value without blocking. It never triggers a load.
func (s *Store) Read(key Key) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// LastError reports the most recent load failure for the key. The previous
// good value stays readable while a key is errored.
func (s *Store) LastError(key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok {
		return e.err
	}
	return nil
}

// Fetch returns the cached value when it is within staleTime, otherwise it
// invokes the loader and stores the result. Concurrent fetches of the same key
// share a single in-flight load. staleTime <= 0 forces a reload.
//
// A failed load keeps the previous value in place, marks the key errored and
// returns that previous value together with the error. A load that resolves
// after the key was invalidated or abandoned is returned to the caller but
// not applied to the cache.
func (s *Store) Fetch(ctx context.Context, key Key, staleTime time.Duration, loader Loader) (any, error) {
	s.mu.Lock()
	if e, ok := s.entries[key]; ok && !e.stale && e.err == nil &&
		staleTime > 0 && time.Since(e.updatedAt) < staleTime {
		v := e.value
		s.mu.Unlock()
		return v, nil
	}
	// register the key so Invalidate can abandon this load even before the
	// first result has ever been stored
	if _, tracked := s.gens[key]; !tracked {
		s.gens[key] = 0
	}
	gen := s.gens[key]
	s.mu.Unlock()

	v, err, _ := s.group.Do(string(key), func() (any, error) {
		return loader(ctx)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if e, ok := s.entries[key]; ok {
			e.err = err
			return e.value, err
		}
		return nil, err
	}
	if s.gens[key] != gen {
		// superseded while in flight: the caller still gets the value, the
		// cache does not
		return v, nil
	}
	s.entries[key] = &entry{value: v, updatedAt: time.Now()}
	s.notifyLocked(key, v, true)
	return v, nil
}

// Invalidate marks every key with the given prefix stale, so the next Fetch
// bypasses the cache, and abandons any load already in flight for them.
func (s *Store) Invalidate(prefix Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, e := range s.entries {
		if strings.HasPrefix(string(k), string(prefix)) {
			e.stale = true
		}
	}
	for k := range s.gens {
		if strings.HasPrefix(string(k), string(prefix)) {
			s.gens[k]++
		}
	}
}

// Close stops all pollers. Watcher channels are left to their owners.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, p := range s.pollers {
		close(p.stop)
		delete(s.pollers, k)
	}
}

// notifyLocked pushes the new value to every watcher of the key. load marks
// values produced by a loader, as opposed to optimistic mutation values and
// rollback snapshots; loads-only watchers skip the latter. Sends are
// conflated: a slow watcher sees only the latest value, never a backlog.
func (s *Store) notifyLocked(key Key, v any, load bool) {
	for ch, loadsOnly := range s.watchers[key] {
		if loadsOnly && !load {
			continue
		}
		select {
		case ch <- v:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
}
