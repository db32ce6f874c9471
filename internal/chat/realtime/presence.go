package realtime

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"inklink/pkg/logger"
)

// PresenceState is one user's broadcast state on a presence channel.
type PresenceState struct {
	UserID    uuid.UUID
	Online    bool
	Typing    bool
	UpdatedAt time.Time
}

// ConnectionManager owns the process-wide presence channels, keyed by
// channel name. Screens acquire a handle on mount and must Close it on
// unmount; the channel disappears when its last handle closes.
type ConnectionManager struct {
	log *logger.Logger

	mu       sync.Mutex
	channels map[string]*PresenceChannel
}

func NewConnectionManager(log logger.Logger) *ConnectionManager {
	return &ConnectionManager{
		log:      &log,
		channels: make(map[string]*PresenceChannel),
	}
}

// Open returns a scoped handle on the named channel, creating it on first
// acquisition.
func (m *ConnectionManager) Open(key string) *PresenceHandle {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := m.channels[key]
	if c == nil {
		c = &PresenceChannel{
			key:      key,
			states:   make(map[uuid.UUID]PresenceState),
			watchers: make(map[uint64]chan PresenceState),
		}
		m.channels[key] = c
		presenceChannels.Inc()
	}
	c.refs++

	return &PresenceHandle{mgr: m, ch: c}
}

func (m *ConnectionManager) release(c *PresenceChannel) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.refs--
	if c.refs <= 0 {
		delete(m.channels, c.key)
		presenceChannels.Dec()
	}
}

// PresenceHandle is a scoped acquisition of a presence channel. Close is
// idempotent.
type PresenceHandle struct {
	mgr  *ConnectionManager
	ch   *PresenceChannel
	once sync.Once
}

func (h *PresenceHandle) Channel() *PresenceChannel {
	return h.ch
}

func (h *PresenceHandle) Close() {
	h.once.Do(func() {
		h.mgr.release(h.ch)
	})
}

// PresenceChannel carries online/typing state for the users on one channel.
type PresenceChannel struct {
	key  string
	refs int

	mu       sync.RWMutex
	states   map[uuid.UUID]PresenceState
	watchers map[uint64]chan PresenceState
	nextID   uint64
}

func (c *PresenceChannel) Join(userID uuid.UUID) {
	c.set(PresenceState{UserID: userID, Online: true, UpdatedAt: time.Now()})
}

func (c *PresenceChannel) Leave(userID uuid.UUID) {
	c.mu.Lock()
	delete(c.states, userID)
	watchers := c.snapshotWatchers()
	c.mu.Unlock()

	st := PresenceState{UserID: userID, Online: false, UpdatedAt: time.Now()}
	for _, w := range watchers {
		select {
		case w <- st:
		default:
		}
	}
}

func (c *PresenceChannel) SetTyping(userID uuid.UUID, typing bool) {
	c.mu.RLock()
	st, ok := c.states[userID]
	c.mu.RUnlock()
	if !ok {
		st = PresenceState{UserID: userID, Online: true}
	}
	st.Typing = typing
	st.UpdatedAt = time.Now()
	c.set(st)
}

func (c *PresenceChannel) set(st PresenceState) {
	c.mu.Lock()
	c.states[st.UserID] = st
	watchers := c.snapshotWatchers()
	c.mu.Unlock()

	for _, w := range watchers {
		select {
		case w <- st:
		default:
		}
	}
}

// snapshotWatchers must be called with c.mu held.
func (c *PresenceChannel) snapshotWatchers() []chan PresenceState {
	out := make([]chan PresenceState, 0, len(c.watchers))
	for _, w := range c.watchers {
		out = append(out, w)
	}
	return out
}

// Snapshot returns the currently-known states on the channel.
func (c *PresenceChannel) Snapshot() []PresenceState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]PresenceState, 0, len(c.states))
	for _, st := range c.states {
		out = append(out, st)
	}
	return out
}

// Watch streams state changes. The returned cancel func must be called on
// teardown.
func (c *PresenceChannel) Watch() (<-chan PresenceState, func()) {
	ch := make(chan PresenceState, 16)

	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.watchers[id] = ch
	c.mu.Unlock()

	cancel := func() {
		c.mu.Lock()
		delete(c.watchers, id)
		c.mu.Unlock()
	}
	return ch, cancel
}
