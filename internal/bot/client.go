package bot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Client is a WebSocket connection to a remote referee that speaks the same
// text protocol as stdin/stdout. Each incoming text frame holds one or more
// input lines; each Write is sent as one text frame.
//
// Reads and writes are meant to come from the single turn loop goroutine;
// the mutex only guards Close against a concurrent write.
type Client struct {
	conn    *websocket.Conn
	pending []byte
	mu      sync.Mutex
	closed  bool
}

// DialReferee connects to the referee at url (ws:// or wss://).
func DialReferee(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("ws dial: %w", err)
	}
	log.Debug().Str("url", url).Msg("Connected to referee")
	return &Client{conn: conn}, nil
}

// Read implements io.Reader over incoming frames. A normal close from the
// referee is reported as io.EOF.
func (c *Client) Read(p []byte) (int, error) {
	for len(c.pending) == 0 {
		typ, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return 0, io.EOF
			}
			return 0, fmt.Errorf("ws read: %w", err)
		}
		if typ != websocket.TextMessage {
			continue
		}
		if len(msg) > 0 && msg[len(msg)-1] != '\n' {
			msg = append(msg, '\n')
		}
		c.pending = msg
	}
	n := copy(p, c.pending)
	c.pending = c.pending[n:]
	return n, nil
}

// Write implements io.Writer; p is sent as one text frame without its
// trailing newline.
func (c *Client) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, fmt.Errorf("ws write: connection closed")
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, bytes.TrimRight(p, "\n")); err != nil {
		return 0, fmt.Errorf("ws write: %w", err)
	}
	return len(p), nil
}

// Close sends a normal close frame and closes the connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}
