package engine

import (
	"bytes"
	"sync"

	"github.com/minaorangina/cardtable/protocol"
)

// TestBuffer is used in tests for io
type TestBuffer struct {
	buf bytes.Buffer
	m   sync.Mutex
}

func NewTestBuffer() *TestBuffer {
	return &TestBuffer{}
}

func (tb *TestBuffer) Read(p []byte) (int, error) {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.Read(p)
}

func (tb *TestBuffer) Write(p []byte) (int, error) {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.Write(p)
}

func (tb *TestBuffer) String() string {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.String()
}

// SpyRenderer records every snapshot it is asked to draw.
type SpyRenderer struct {
	mu        sync.Mutex
	snapshots []protocol.OutboundMessage
}

func (r *SpyRenderer) Render(msg protocol.OutboundMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, msg)
	return nil
}

func (r *SpyRenderer) Snapshots() []protocol.OutboundMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]protocol.OutboundMessage, len(r.snapshots))
	copy(out, r.snapshots)
	return out
}

// Last returns the most recent snapshot.
func (r *SpyRenderer) Last() (protocol.OutboundMessage, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.snapshots) == 0 {
		return protocol.OutboundMessage{}, false
	}
	return r.snapshots[len(r.snapshots)-1], true
}
