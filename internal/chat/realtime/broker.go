package realtime

import (
	"sync"

	"github.com/google/uuid"

	"inklink/config"
	"inklink/pkg/logger"
)

// Broker fans change events out to in-process subscribers.
//
// Concurrency guarantees:
// - Subscribe/Unsubscribe are safe under concurrent Publish.
// - Publish never blocks (drops under backpressure).
// - Each Subscription owns its channel; the broker never closes it while
//   handlers may still be registered.
type Broker struct {
	log    *logger.Logger
	buffer int
	window int

	mu     sync.RWMutex
	subs   map[string]map[uint64]*Subscription
	nextID uint64
}

func NewBroker(cfg config.Realtime, log logger.Logger) *Broker {
	buffer := cfg.SubscriptionBuffer
	if buffer <= 0 {
		buffer = 64
	}
	window := cfg.DedupeWindow
	if window <= 0 {
		window = 1024
	}
	return &Broker{
		log:    &log,
		buffer: buffer,
		window: window,
		subs:   make(map[string]map[uint64]*Subscription),
	}
}

// Subscribe registers a handler channel for a topic. The caller must call
// Unsubscribe on teardown or a remounted screen ends up with two handlers.
func (b *Broker) Subscribe(topic string) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	s := &Subscription{
		ch:     make(chan Event, b.buffer),
		topic:  topic,
		id:     b.nextID,
		broker: b,
		seen:   make(map[uuid.UUID]struct{}),
		window: b.window,
	}
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[uint64]*Subscription)
	}
	b.subs[topic][s.id] = s

	subscriptionsActive.Inc()
	return s
}

// Publish delivers an event to every subscriber of the topic.
func (b *Broker) Publish(topic string, ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, s := range b.subs[topic] {
		s.offer(ev)
	}
	eventsPublished.WithLabelValues(ev.Table, string(ev.Op)).Inc()
}

func (b *Broker) remove(topic string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if m := b.subs[topic]; m != nil {
		if _, ok := m[id]; ok {
			delete(m, id)
			subscriptionsActive.Dec()
		}
		if len(m) == 0 {
			delete(b.subs, topic)
		}
	}
}

// Subscription is one registered handler. Events arrive on C.
type Subscription struct {
	ch     chan Event
	topic  string
	id     uint64
	broker *Broker

	mu     sync.Mutex
	seen   map[uuid.UUID]struct{}
	order  []uuid.UUID
	window int

	once sync.Once
}

// C is the event stream for this subscription.
func (s *Subscription) C() <-chan Event {
	return s.ch
}

func (s *Subscription) Topic() string {
	return s.topic
}

// Unsubscribe removes the registration. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.broker.remove(s.topic, s.id)
	})
}

// offer enqueues without blocking. Insert events already seen by row id are
// dropped: the upstream feed is at-least-once and redelivers after a brief
// disconnect. Updates pass through, the same row legitimately updates twice.
func (s *Subscription) offer(ev Event) {
	if ev.Op == OpInsert {
		s.mu.Lock()
		if _, dup := s.seen[ev.ID]; dup {
			s.mu.Unlock()
			eventsDeduplicated.Inc()
			return
		}
		s.seen[ev.ID] = struct{}{}
		s.order = append(s.order, ev.ID)
		if len(s.order) > s.window {
			delete(s.seen, s.order[0])
			s.order = s.order[1:]
		}
		s.mu.Unlock()
	}

	select {
	case s.ch <- ev:
	default:
		// Drop rather than block the publisher.
		eventsDropped.Inc()
		s.broker.log.Warn("realtime.subscription.drop", "topic", s.topic)
	}
}
