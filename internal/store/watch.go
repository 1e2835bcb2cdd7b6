package store

import (
	"context"
	"time"

	"github.com/levelupgamer/lu/internal/log"
)

// watch emits fetch() now and again after every notification on topics.
// The returned channel is closed when ctx is done. Fetch errors are logged and
// skipped; the previous value stays current for the subscriber.
func watch[T any](ctx context.Context, s *Store, fetch func() (T, error), topics ...Topic) <-chan T {
	out := make(chan T)
	notify, cancel := s.feed.Subscribe(topics...)

	go func() {
		defer close(out)
		defer cancel()

		for {
			value, err := fetch()
			if err != nil {
				log.Warn("store: live query %v: %v", topics, err)
			} else {
				select {
				case out <- value:
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-notify:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Adaptive polling intervals for PRAGMA data_version.
const (
	pollFast   = 250 * time.Millisecond
	pollNormal = 1 * time.Second
	pollSlow   = 3 * time.Second

	fastWindow = 5 * time.Second
	idleAfter  = 30 * time.Second
)

func pollInterval(sinceChange time.Duration) time.Duration {
	switch {
	case sinceChange < fastWindow:
		return pollFast
	case sinceChange < idleAfter:
		return pollNormal
	default:
		return pollSlow
	}
}

// pollDataVersion publishes every topic when another connection commits.
// data_version is per connection, so it holds one connection for its lifetime.
func (s *Store) pollDataVersion(ctx context.Context) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		log.Warn("store: data_version poller: %v", err)
		return
	}
	defer func() { _ = conn.Close() }()

	read := func() (int64, error) {
		var v int64
		err := conn.QueryRowContext(ctx, "PRAGMA data_version").Scan(&v)
		return v, err
	}

	last, err := read()
	if err != nil {
		log.Warn("store: data_version poller: %v", err)
		return
	}
	lastChange := time.Now()

	timer := time.NewTimer(pollNormal)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		v, err := read()
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return
			}
			log.Debug("store: data_version: %v", err)
		case v != last:
			last = v
			lastChange = time.Now()
			s.feed.Publish(AllTopics...)
		}

		timer.Reset(pollInterval(time.Since(lastChange)))
	}
}
