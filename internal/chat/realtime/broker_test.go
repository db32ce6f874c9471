package realtime

import (
	"testing"
	"time"

	"inklink/config"
	"inklink/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBroker(rt config.Realtime) *Broker {
	cfg := config.Config{}
	log, _ := logger.NewLogger(&cfg)
	return NewBroker(rt, *log)
}

func recvEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func Test_BrokerPublishSubscribe(t *testing.T) {
	b := newTestBroker(config.Realtime{})

	convID := uuid.New()
	sub := b.Subscribe(MessagesTopic(convID))
	defer sub.Unsubscribe()

	msgID := uuid.New()
	b.Publish(MessagesTopic(convID), Event{ID: msgID, Table: "messages", Op: OpInsert})

	ev := recvEvent(t, sub.C())
	assert.Equal(t, msgID, ev.ID)
	assert.Equal(t, "messages", ev.Table)
	assert.Equal(t, OpInsert, ev.Op)
}

func Test_BrokerTopicIsolation(t *testing.T) {
	b := newTestBroker(config.Realtime{})

	subA := b.Subscribe(MessagesTopic(uuid.New()))
	defer subA.Unsubscribe()
	otherConv := uuid.New()

	b.Publish(MessagesTopic(otherConv), Event{ID: uuid.New(), Table: "messages", Op: OpInsert})

	select {
	case ev := <-subA.C():
		t.Fatalf("event leaked across topics: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func Test_BrokerDeduplicatesRedeliveredInserts(t *testing.T) {
	b := newTestBroker(config.Realtime{})

	topic := MessagesTopic(uuid.New())
	sub := b.Subscribe(topic)
	defer sub.Unsubscribe()

	// The upstream feed is at-least-once: a reconnect replays recent inserts.
	msgID := uuid.New()
	ev := Event{ID: msgID, Table: "messages", Op: OpInsert}
	b.Publish(topic, ev)
	b.Publish(topic, ev)
	b.Publish(topic, ev)

	got := recvEvent(t, sub.C())
	assert.Equal(t, msgID, got.ID)

	select {
	case dup := <-sub.C():
		t.Fatalf("redelivered insert was not deduplicated: %+v", dup)
	case <-time.After(50 * time.Millisecond):
	}
}

func Test_BrokerUpdatesArePassedThrough(t *testing.T) {
	b := newTestBroker(config.Realtime{})

	topic := ConversationsTopic(uuid.New())
	sub := b.Subscribe(topic)
	defer sub.Unsubscribe()

	// The same conversation row legitimately updates many times.
	convID := uuid.New()
	b.Publish(topic, Event{ID: convID, Table: "conversations", Op: OpUpdate})
	b.Publish(topic, Event{ID: convID, Table: "conversations", Op: OpUpdate})

	first := recvEvent(t, sub.C())
	second := recvEvent(t, sub.C())
	assert.Equal(t, convID, first.ID)
	assert.Equal(t, convID, second.ID)
}

func Test_BrokerDedupeWindowSlides(t *testing.T) {
	b := newTestBroker(config.Realtime{SubscriptionBuffer: 16, DedupeWindow: 2})

	topic := MessagesTopic(uuid.New())
	sub := b.Subscribe(topic)
	defer sub.Unsubscribe()

	oldID := uuid.New()
	b.Publish(topic, Event{ID: oldID, Table: "messages", Op: OpInsert})
	b.Publish(topic, Event{ID: uuid.New(), Table: "messages", Op: OpInsert})
	b.Publish(topic, Event{ID: uuid.New(), Table: "messages", Op: OpInsert})

	// oldID has been evicted from the window, so a replay is delivered again.
	b.Publish(topic, Event{ID: oldID, Table: "messages", Op: OpInsert})

	var got []uuid.UUID
	for i := 0; i < 4; i++ {
		got = append(got, recvEvent(t, sub.C()).ID)
	}
	assert.Equal(t, oldID, got[0])
	assert.Equal(t, oldID, got[3])
}

func Test_BrokerDropsOnBackpressure(t *testing.T) {
	b := newTestBroker(config.Realtime{SubscriptionBuffer: 2})

	topic := MessagesTopic(uuid.New())
	sub := b.Subscribe(topic)
	defer sub.Unsubscribe()

	// Nobody drains the channel; publishes beyond the buffer must not block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			b.Publish(topic, Event{ID: uuid.New(), Table: "messages", Op: OpInsert})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscription")
	}
	assert.Len(t, sub.C(), 2)
}

func Test_BrokerUnsubscribe(t *testing.T) {
	b := newTestBroker(config.Realtime{})

	topic := MessagesTopic(uuid.New())
	sub := b.Subscribe(topic)
	sub.Unsubscribe()
	sub.Unsubscribe() // safe to call twice

	b.Publish(topic, Event{ID: uuid.New(), Table: "messages", Op: OpInsert})

	select {
	case ev := <-sub.C():
		t.Fatalf("event delivered after unsubscribe: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func Test_BrokerFanOut(t *testing.T) {
	b := newTestBroker(config.Realtime{})

	topic := MessagesTopic(uuid.New())
	subA := b.Subscribe(topic)
	defer subA.Unsubscribe()
	subB := b.Subscribe(topic)
	defer subB.Unsubscribe()

	msgID := uuid.New()
	b.Publish(topic, Event{ID: msgID, Table: "messages", Op: OpInsert})

	assert.Equal(t, msgID, recvEvent(t, subA.C()).ID)
	assert.Equal(t, msgID, recvEvent(t, subB.C()).ID)
}

func Test_TopicNames(t *testing.T) {
	userID := uuid.New()
	convID := uuid.New()

	require.Equal(t, "conversations:"+userID.String(), ConversationsTopic(userID))
	require.Equal(t, "messages:"+convID.String(), MessagesTopic(convID))
	require.Equal(t, "receipts:"+convID.String(), ReceiptsTopic(convID))
}
