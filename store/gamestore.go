package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/minaorangina/cardtable/protocol"
)

var (
	ErrUnknownTableID = errors.New("unknown table ID")
	ErrDuplicateID    = errors.New("table ID already exists")
)

// NewID returns a fresh table id
func NewID() string {
	return uuid.NewV4().String()
}

type GameStore interface {
	AddTable(t *Table) error
	FindTable(id string) (*Table, bool)
	RemoveTable(id string) error
	Tables() []string
}

// InMemoryGameStore maps table id to table
type InMemoryGameStore struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		tables: map[string]*Table{},
	}
}

func (s *InMemoryGameStore) AddTable(t *Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tables[t.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, t.ID)
	}
	s.tables[t.ID] = t
	return nil
}

func (s *InMemoryGameStore) FindTable(id string) (*Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tables[id]
	return t, ok
}

// RemoveTable forgets a table and closes its subscriptions.
func (s *InMemoryGameStore) RemoveTable(id string) error {
	s.mu.Lock()
	t, ok := s.tables[id]
	delete(s.tables, id)
	s.mu.Unlock()

	if !ok {
		return ErrUnknownTableID
	}
	t.Close()
	return nil
}

// Tables lists the ids of every table, oldest first.
func (s *InMemoryGameStore) Tables() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tables := make([]*Table, 0, len(s.tables))
	for _, t := range s.tables {
		tables = append(tables, t)
	}
	sort.Slice(tables, func(i, j int) bool {
		if tables[i].Created.Equal(tables[j].Created) {
			return tables[i].ID < tables[j].ID
		}
		return tables[i].Created.Before(tables[j].Created)
	})

	ids := make([]string, len(tables))
	for i, t := range tables {
		ids[i] = t.ID
	}
	return ids
}

// Table is a live game as the outside world sees it: a place to send
// commands and a feed of snapshots. The game itself belongs to the engine
// loop that renders into the Table.
type Table struct {
	ID      string
	Variant protocol.Variant
	Created time.Time
	Inbound chan protocol.InboundMessage

	mu          sync.Mutex
	latest      protocol.OutboundMessage
	subscribers map[chan protocol.OutboundMessage]struct{}
	closed      bool
	done        chan struct{}
}

const subscriberBuffer = 16

// NewTable constructs a Table with a fresh id.
func NewTable(variant protocol.Variant) *Table {
	return &Table{
		ID:          NewID(),
		Variant:     variant,
		Created:     time.Now(),
		Inbound:     make(chan protocol.InboundMessage, subscriberBuffer),
		subscribers: map[chan protocol.OutboundMessage]struct{}{},
		done:        make(chan struct{}),
	}
}

// Render records msg as the latest snapshot and fans it out to subscribers.
// A subscriber that is not keeping up misses the snapshot.
func (t *Table) Render(msg protocol.OutboundMessage) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	msg.TableID = t.ID
	t.latest = msg
	for ch := range t.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
	return nil
}

// Latest returns the most recent snapshot.
func (t *Table) Latest() protocol.OutboundMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest
}

// Subscribe returns a feed of snapshots, starting with the latest one.
// The feed of a closed table holds only the latest snapshot.
func (t *Table) Subscribe() chan protocol.OutboundMessage {
	ch := make(chan protocol.OutboundMessage, subscriberBuffer)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.latest.Command != protocol.Null {
		ch <- t.latest
	}
	if t.closed {
		close(ch)
		return ch
	}
	t.subscribers[ch] = struct{}{}
	return ch
}

func (t *Table) Unsubscribe(ch chan protocol.OutboundMessage) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.subscribers[ch]; ok {
		delete(t.subscribers, ch)
		close(ch)
	}
}

// Done is closed once the table is closed.
func (t *Table) Done() <-chan struct{} {
	return t.done
}

// Close ends every subscription. The table stops taking commands but keeps
// its latest snapshot.
func (t *Table) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.closed = true
	close(t.done)
	for ch := range t.subscribers {
		delete(t.subscribers, ch)
		close(ch)
	}
}
