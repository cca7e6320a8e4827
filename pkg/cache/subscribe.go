package cache

import (
	"context"
	"sync"
	"time"
)

// Subscription is an active poll registration. C delivers the latest value
// after every successful refresh of the key, and for Subscribe also after
// every mutation; delivery is conflated, not queued.
type Subscription struct {
	C    chan any
	key  Key
	s    *Store
	once sync.Once
}

// Subscribe registers interest in a key and keeps it polled on the given
// interval for as long as at least one subscriber is active. The first
// subscriber starts the poll loop (with an immediate initial load) and its
// interval wins; the last Close stops it, and any load still in flight for
// the key is discarded.
func (s *Store) Subscribe(key Key, interval time.Duration, loader Loader) *Subscription {
	return s.subscribe(key, interval, loader, false)
}

// SubscribeLoads is Subscribe restricted to loader results: optimistic
// mutation values and rollback snapshots are not delivered. Consumers that
// diff consecutive server snapshots must use this form, or a rolled-back
// mutation looks like two server-side changes.
func (s *Store) SubscribeLoads(key Key, interval time.Duration, loader Loader) *Subscription {
	return s.subscribe(key, interval, loader, true)
}

func (s *Store) subscribe(key Key, interval time.Duration, loader Loader, loadsOnly bool) *Subscription {
	sub := &Subscription{C: make(chan any, 1), key: key, s: s}

	s.mu.Lock()
	if s.watchers[key] == nil {
		s.watchers[key] = make(map[chan any]bool)
	}
	s.watchers[key][sub.C] = loadsOnly

	p := s.pollers[key]
	if p == nil {
		p = &poller{stop: make(chan struct{})}
		s.pollers[key] = p
		go s.pollLoop(key, interval, loader, p.stop)
	}
	p.refs++
	s.mu.Unlock()

	return sub
}

func (sub *Subscription) Close() {
	sub.once.Do(func() {
		s := sub.s
		s.mu.Lock()
		delete(s.watchers[sub.key], sub.C)
		if p, ok := s.pollers[sub.key]; ok {
			p.refs--
			if p.refs <= 0 {
				close(p.stop)
				delete(s.pollers, sub.key)
				s.gens[sub.key]++ // abandoned: late responses must not land
			}
		}
		s.mu.Unlock()
	})
}

func (s *Store) pollLoop(key Key, interval time.Duration, loader Loader, stop chan struct{}) {
	s.refresh(key, loader)
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			s.refresh(key, loader)
		}
	}
}

// refresh forces a reload. Poll failures are swallowed here: the previous
// value stays served and the key is only flagged errored.
func (s *Store) refresh(key Key, loader Loader) {
	ctx, cancel := context.WithTimeout(context.Background(), s.loadTimeout)
	defer cancel()
	if _, err := s.Fetch(ctx, key, 0, loader); err != nil {
		s.log.Warn("poll failed", "key", string(key), "err", err)
	}
}
