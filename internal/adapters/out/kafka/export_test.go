package kafka

import "github.com/google/uuid"

// WithFixedIDs makes p draw its event ids from ids, in order.
func WithFixedIDs(p *OrderEventPublisher, ids ...uuid.UUID) {
	next := 0
	p.newID = func() uuid.UUID {
		id := ids[next%len(ids)]
		next++
		return id
	}
}
