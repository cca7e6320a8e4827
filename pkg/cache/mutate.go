package cache

import (
	"context"
	"sync"
	"time"
)

// Updater derives the optimistic value from the current cached value. current
// is nil when the key has never been loaded.
type Updater func(current any) any

// Remote performs the server mutation. A non-nil confirmed value replaces the
// optimistic one on success; nil leaves the optimistic value in place and
// marks the key stale for revalidation.
type Remote func(ctx context.Context) (confirmed any, err error)

// Mutate applies the optimistic update immediately, performs the remote
// mutation, and on failure restores the exact pre-mutation snapshot.
//
// Mutations on the same key are serialized: a second Mutate queues behind the
// first, so its snapshot can never capture another mutation's in-flight
// optimistic state and a rollback can never discard a later confirmed change.
func (s *Store) Mutate(ctx context.Context, key Key, update Updater, remote Remote) error {
	lock := s.mutationLock(key)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	var snapshot any
	had := false
	if e, ok := s.entries[key]; ok {
		snapshot, had = e.value, true
	}
	optimistic := update(snapshot)
	s.entries[key] = &entry{value: optimistic, updatedAt: time.Now()}
	s.gens[key]++ // a load already in flight must not clobber the optimistic value
	s.notifyLocked(key, optimistic, false)
	s.mu.Unlock()

	confirmed, err := remote(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if had {
			s.entries[key] = &entry{value: snapshot, updatedAt: time.Now(), stale: true}
			s.notifyLocked(key, snapshot, false)
		} else {
			delete(s.entries, key)
		}
		s.gens[key]++
		return err
	}
	if confirmed != nil {
		s.entries[key] = &entry{value: confirmed, updatedAt: time.Now()}
		s.notifyLocked(key, confirmed, false)
		return nil
	}
	s.entries[key].stale = true
	return nil
}

func (s *Store) mutationLock(key Key) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.mutLocks[key]
	if m == nil {
		m = new(sync.Mutex)
		s.mutLocks[key] = m
	}
	return m
}
