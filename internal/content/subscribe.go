// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"log/slog"

	"marketsite/internal/models"
)

// Op names the kind of change a subscriber is told about.
type Op string

const (
	OpUpdate Op = "update"
	OpAdd    Op = "add"
	OpDelete Op = "delete"
	OpLoad   Op = "load"
	OpReset  Op = "reset"
)

// Change describes an applied change. Domain and ID are empty for Load and
// Reset, which touch everything.
type Change struct {
	Domain models.Domain
	ID     string
	Op     Op
}

// subscriberBuffer is the channel capacity handed to each subscriber.
const subscriberBuffer = 16

// Subscribe returns a channel receiving every applied change until ctx is
// done, at which point the channel is closed. Delivery never blocks the
// store: a subscriber whose buffer is full misses the event.
func (s *Store) Subscribe(ctx context.Context) <-chan Change {
	ch := make(chan Change, subscriberBuffer)

	s.subsMu.Lock()
	s.subs[ch] = struct{}{}
	s.subsMu.Unlock()

	go func() {
		<-ctx.Done()
		s.subsMu.Lock()
		delete(s.subs, ch)
		close(ch)
		s.subsMu.Unlock()
	}()
	return ch
}

func (s *Store) publish(c Change) {
	s.version.Add(1)
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- c:
		default:
			slog.Debug("content subscriber lagging, change dropped", "domain", c.Domain, "id", c.ID, "op", c.Op)
		}
	}
}
