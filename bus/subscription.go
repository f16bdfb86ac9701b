package bus

import (
	"context"
	"errors"
	"sync"

	"code.cloudfoundry.org/bam-broker/models"
)

var ErrSubscriptionClosed = errors.New("subscription closed")

type Subscription struct {
	name   string
	filter map[models.MessageType]struct{}

	lock   sync.Mutex
	queue  []models.Message
	closed bool
	notify chan struct{}
}

func newSubscription(name string, types []models.MessageType) *Subscription {
	var filter map[models.MessageType]struct{}
	if len(types) > 0 {
		filter = make(map[models.MessageType]struct{}, len(types))
		for _, t := range types {
			filter[t] = struct{}{}
		}
	}
	return &Subscription{
		name:   name,
		filter: filter,
		notify: make(chan struct{}, 1),
	}
}

func (s *Subscription) Name() string {
	return s.name
}

func (s *Subscription) accepts(t models.MessageType) bool {
	if s.filter == nil {
		return true
	}
	_, ok := s.filter[t]
	return ok
}

func (s *Subscription) enqueue(msg models.Message) {
	s.lock.Lock()
	if s.closed {
		s.lock.Unlock()
		return
	}
	s.queue = append(s.queue, msg)
	s.lock.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// Ready fires at least once after messages have been enqueued. Consumers
// call Drain when it fires.
func (s *Subscription) Ready() <-chan struct{} {
	return s.notify
}

// Drain returns every queued message in publication order.
func (s *Subscription) Drain() []models.Message {
	s.lock.Lock()
	defer s.lock.Unlock()
	msgs := s.queue
	s.queue = nil
	return msgs
}

// Next blocks until a message is available, the context is done or the
// subscription is closed.
func (s *Subscription) Next(ctx context.Context) (models.Message, error) {
	for {
		s.lock.Lock()
		if len(s.queue) > 0 {
			msg := s.queue[0]
			s.queue[0] = nil
			s.queue = s.queue[1:]
			remaining := len(s.queue)
			s.lock.Unlock()
			if remaining > 0 {
				select {
				case s.notify <- struct{}{}:
				default:
				}
			}
			return msg, nil
		}
		closed := s.closed
		s.lock.Unlock()
		if closed {
			return nil, ErrSubscriptionClosed
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.notify:
		}
	}
}

func (s *Subscription) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.queue)
}

func (s *Subscription) Close() {
	s.lock.Lock()
	if s.closed {
		s.lock.Unlock()
		return
	}
	s.closed = true
	s.lock.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}
