package bot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

// fakeReferee serves one match over a WebSocket: the init frame, then one
// turn frame per reply, then a normal close.
func fakeReferee(t *testing.T, initFrame string, turns []string, replies chan<- string) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			close(replies)
			return
		}
		defer conn.Close()
		defer close(replies)

		// Binary frames are not part of the protocol and must be skipped.
		if err := conn.WriteMessage(websocket.BinaryMessage, []byte{0x1}); err != nil {
			t.Errorf("write binary: %v", err)
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(initFrame)); err != nil {
			t.Errorf("write init: %v", err)
			return
		}
		for _, turn := range turns {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(turn)); err != nil {
				t.Errorf("write turn: %v", err)
				return
			}
			_, msg, err := conn.ReadMessage()
			if err != nil {
				t.Errorf("read reply: %v", err)
				return
			}
			replies <- string(msg)
		}
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "match over"))
		// Wait for the client to answer the close.
		conn.ReadMessage()
	}))
}

func TestClient_PlaysMatch(t *testing.T) {
	replies := make(chan string, 4)
	// The init frame lacks its final newline; the client must add it.
	srv := fakeReferee(t,
		strings.TrimSuffix(sevenRing, "\n"),
		[]string{turnBlock(12, 40, 10), turnBlock(0, 40, 14)},
		replies)
	defer srv.Close()

	ctx := context.Background()
	c, err := DialReferee(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"))
	if err != nil {
		t.Fatalf("DialReferee: %v", err)
	}
	defer c.Close()

	b, err := NewBronzeStrategy(testConfig())
	if err != nil {
		t.Fatalf("NewBronzeStrategy: %v", err)
	}
	if err := NewRunner(b, false).Run(ctx, c, c); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var got []string
	for r := range replies {
		got = append(got, r)
	}
	want := []string{"LINE 0 2 10", "LINE 0 3 20"}
	if len(got) != len(want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reply %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if _, err := c.Write([]byte("WAIT\n")); err == nil {
		t.Error("expected write after close to fail")
	}
}

func TestDialReferee_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	if _, err := DialReferee(context.Background(), "ws"+strings.TrimPrefix(srv.URL, "http")); err == nil {
		t.Error("expected handshake failure against a plain HTTP handler")
	}
}
