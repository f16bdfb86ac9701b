package bus

import (
	"sync"

	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
)

// Bus fans published messages out to subscriber queues. Publishing never
// blocks on a consumer: each subscription owns an unbounded queue guarded by
// its own lock.
type Bus struct {
	logger      lager.Logger
	lock        sync.RWMutex
	subscribers []*Subscription
}

func New(logger lager.Logger) *Bus {
	return &Bus{
		logger: logger.Session("bus"),
	}
}

// Subscribe registers a queue receiving the given message types. Without
// types the subscription receives everything.
func (b *Bus) Subscribe(name string, types ...models.MessageType) *Subscription {
	sub := newSubscription(name, types)

	b.lock.Lock()
	b.subscribers = append(b.subscribers, sub)
	b.lock.Unlock()

	b.logger.Info("subscribed", lager.Data{"name": name, "types": types})
	return sub
}

func (b *Bus) Unsubscribe(sub *Subscription) {
	b.lock.Lock()
	for i, s := range b.subscribers {
		if s == sub {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			break
		}
	}
	b.lock.Unlock()

	sub.Close()
	b.logger.Info("unsubscribed", lager.Data{"name": sub.Name()})
}

func (b *Bus) Publish(msg models.Message) {
	if msg == nil {
		return
	}
	b.lock.RLock()
	defer b.lock.RUnlock()

	for _, sub := range b.subscribers {
		if sub.accepts(msg.MessageType()) {
			sub.enqueue(msg)
		}
	}
}

func (b *Bus) Subscribers() int {
	b.lock.RLock()
	defer b.lock.RUnlock()
	return len(b.subscribers)
}
