package ws_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mezzo/internal/adapters/in/ws"
	"mezzo/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*ws.Hub, *httptest.Server) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
	hub := ws.NewHub(logger)
	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, logger, w, r)
	}))
	t.Cleanup(server.Close)
	return hub, server
}

func dial(t *testing.T, server *httptest.Server, scope string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "?scope=" + scope
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) ws.Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)

	var event ws.Event
	require.NoError(t, json.Unmarshal(message, &event))
	return event
}

func TestHub_PublishReachesSubscribers(t *testing.T) {
	hub, server := startHub(t)
	conn := dial(t, server, "orders")

	// Registration races the publish; give the hub a moment.
	time.Sleep(50 * time.Millisecond)
	hub.Publish(ports.ScopeOrders)

	event := readEvent(t, conn)
	assert.Equal(t, "refresh", event.Type)
	assert.Equal(t, "orders", event.Scope)
}

func TestHub_ScopesAreIsolated(t *testing.T) {
	hub, server := startHub(t)
	ordersConn := dial(t, server, "orders")
	catalogConn := dial(t, server, "catalog")

	time.Sleep(50 * time.Millisecond)
	hub.Publish(ports.ScopeCatalog)

	event := readEvent(t, catalogConn)
	assert.Equal(t, "catalog", event.Scope)

	// The orders subscriber must see nothing.
	require.NoError(t, ordersConn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := ordersConn.ReadMessage()
	require.Error(t, err)
}

func TestHub_DefaultsToOrdersScope(t *testing.T) {
	hub, server := startHub(t)
	conn := dial(t, server, "")

	time.Sleep(50 * time.Millisecond)
	hub.Publish(ports.ScopeOrders)

	event := readEvent(t, conn)
	assert.Equal(t, "orders", event.Scope)
}

func TestServeWS_RejectsUnknownScope(t *testing.T) {
	_, server := startHub(t)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "?scope=couriers"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	if conn != nil {
		conn.Close()
	}
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
