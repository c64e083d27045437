package server

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/minaorangina/cardtable/protocol"
	"github.com/minaorangina/cardtable/store"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// connection is one websocket player at a table.
type connection struct {
	conn    *websocket.Conn
	table   *store.Table
	feed    chan protocol.OutboundMessage
	replies chan protocol.OutboundMessage
	log     logrus.FieldLogger
}

func newConnection(conn *websocket.Conn, table *store.Table, log logrus.FieldLogger) *connection {
	return &connection{
		conn:    conn,
		table:   table,
		feed:    table.Subscribe(),
		replies: make(chan protocol.OutboundMessage, 1),
		log:     log,
	}
}

// readPump forwards commands to the table until the peer goes away.
// Commands sent after the table has closed are dropped.
func (c *connection) readPump() error {
	defer func() {
		c.table.Unsubscribe(c.feed)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return err
			}
			return nil
		}

		var msg protocol.InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.log.WithError(err).Debug("malformed command")
			c.reply(protocol.OutboundMessage{
				Command: protocol.Error,
				Variant: c.table.Variant,
				Error:   err.Error(),
			})
			continue
		}

		select {
		case c.table.Inbound <- msg:
		case <-c.table.Done():
		}
	}
}

// reply queues a message for this peer alone, dropping it if one is
// already waiting.
func (c *connection) reply(msg protocol.OutboundMessage) {
	select {
	case c.replies <- msg:
	default:
	}
}

// writePump sends snapshots and replies to the peer, and keeps the
// connection alive with pings. A closed feed ends the connection.
func (c *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.feed:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// the table closed the feed
				c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "table closed"))
				return
			}
			if err := c.write(msg); err != nil {
				c.log.WithError(err).Warn("could not send snapshot")
				return
			}

		case msg := <-c.replies:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.write(msg); err != nil {
				c.log.WithError(err).Warn("could not send reply")
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *connection) write(msg protocol.OutboundMessage) error {
	w, err := c.conn.NextWriter(websocket.TextMessage)
	if err != nil {
		return err
	}
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		return err
	}
	return w.Close()
}
