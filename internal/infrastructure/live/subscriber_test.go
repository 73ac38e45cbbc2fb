package live

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestSubscriber_ReloadsOnDataUpdated(t *testing.T) {
	t.Parallel()

	var cookie atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err == nil {
			cookie.Store(c.Value)
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()

		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"greeting","message":"hi"}`))
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`not json`))
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"data_updated","message":"rotation saved"}`))
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	got := make(chan Message, 4)
	sub, err := NewSubscriber(Config{URL: wsURL(srv), SessionCookie: "abc", ReconnectDelay: 10 * time.Millisecond},
		func(_ context.Context, msg Message) error {
			got <- msg
			return nil
		})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- sub.Run(ctx) }()

	select {
	case msg := <-got:
		assert.Equal(t, EventDataUpdated, msg.Type)
		assert.Equal(t, "rotation saved", msg.Message)
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}
	assert.Equal(t, "abc", cookie.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("subscriber did not stop after cancel")
	}
}

func TestSubscriber_ReconnectsAfterServerClose(t *testing.T) {
	t.Parallel()

	var connections atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		connections.Add(1)
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"data_updated"}`))
		_ = conn.Close()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	var calls atomic.Int32
	sub, err := NewSubscriber(Config{URL: wsURL(srv), ReconnectDelay: 5 * time.Millisecond},
		func(context.Context, Message) error {
			calls.Add(1)
			return nil
		})
	require.NoError(t, err)

	go func() { _ = sub.Run(ctx) }()

	require.Eventually(t, func() bool { return connections.Load() >= 2 }, 5*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)
}

func TestNewSubscriber_Validation(t *testing.T) {
	t.Parallel()

	noop := func(context.Context, Message) error { return nil }

	_, err := NewSubscriber(Config{URL: "http://team.example/ws"}, noop)
	assert.Error(t, err)

	_, err = NewSubscriber(Config{URL: "ws://team.example/ws"}, nil)
	assert.Error(t, err)

	sub, err := NewSubscriber(Config{URL: " wss://team.example/ws "}, noop)
	require.NoError(t, err)
	assert.Equal(t, "wss://team.example/ws", sub.url)
	assert.Equal(t, 3*time.Second, sub.reconnectDelay)
}
