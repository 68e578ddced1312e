package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/relay"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialSocket(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func sendFrame(t *testing.T, conn *websocket.Conn, event string, data any) {
	t.Helper()
	frame, err := relay.NewFrame(event, data)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, frame))
}

func readFrame(t *testing.T, conn *websocket.Conn) relay.Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var frame relay.Frame
	require.NoError(t, json.Unmarshal(data, &frame))
	return frame
}

func TestSocket_JoinAndReceiveLocation(t *testing.T) {
	env := setupRouter(t)
	srv := httptest.NewServer(env.router)
	defer srv.Close()

	customer := dialSocket(t, srv)
	sendFrame(t, customer, relay.EventJoinRoom, "b1")

	require.Eventually(t, func() bool { return env.hub.RoomSize("b1") == 1 }, time.Second, 10*time.Millisecond)

	// обновление через REST доходит до комнаты
	delivered := env.hub.PublishLocation("b1", domain.Location{Lat: 28.1, Lng: 77.4})
	assert.Equal(t, 1, delivered)

	frame := readFrame(t, customer)
	assert.Equal(t, relay.EventLocationUpdate, frame.Event)

	var loc domain.Location
	require.NoError(t, json.Unmarshal(frame.Data, &loc))
	assert.Equal(t, domain.Location{Lat: 28.1, Lng: 77.4}, loc)
}

func TestSocket_WorkerUpdateReachesRoom(t *testing.T) {
	env := setupRouter(t)
	srv := httptest.NewServer(env.router)
	defer srv.Close()

	customer := dialSocket(t, srv)
	worker := dialSocket(t, srv)

	sendFrame(t, customer, relay.EventJoinRoom, "b1")
	require.Eventually(t, func() bool { return env.hub.RoomSize("b1") == 1 }, time.Second, 10*time.Millisecond)

	sendFrame(t, worker, relay.EventUpdateLocation, map[string]any{
		"bookingId": "b1",
		"location":  map[string]float64{"lat": 18.52, "lng": 73.85},
	})

	frame := readFrame(t, customer)
	assert.Equal(t, relay.EventLocationUpdate, frame.Event)
	assert.JSONEq(t, `{"lat":18.52,"lng":73.85}`, string(frame.Data))
}

func TestSocket_LeaveAndDisconnect(t *testing.T) {
	env := setupRouter(t)
	srv := httptest.NewServer(env.router)
	defer srv.Close()

	conn := dialSocket(t, srv)
	sendFrame(t, conn, relay.EventJoinRoom, "b1")
	sendFrame(t, conn, relay.EventJoinRoom, "b2")
	require.Eventually(t, func() bool { return env.hub.RoomSize("b2") == 1 }, time.Second, 10*time.Millisecond)

	sendFrame(t, conn, relay.EventLeaveRoom, "b1")
	require.Eventually(t, func() bool { return env.hub.RoomSize("b1") == 0 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return env.hub.RoomSize("b2") == 0 }, time.Second, 10*time.Millisecond)
}

func TestSocket_BadFrames(t *testing.T) {
	env := setupRouter(t)
	srv := httptest.NewServer(env.router)
	defer srv.Close()

	conn := dialSocket(t, srv)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	assert.Equal(t, relay.EventError, readFrame(t, conn).Event)

	sendFrame(t, conn, relay.EventUpdateLocation, map[string]any{"bookingId": "b1"})
	assert.Equal(t, relay.EventError, readFrame(t, conn).Event)

	sendFrame(t, conn, "teleport", "b1")
	assert.Equal(t, relay.EventError, readFrame(t, conn).Event)
}
