package relay

import (
	"encoding/json"
	"testing"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestHub_PublishLocation_ReachesRoomOnly(t *testing.T) {
	hub := NewHub(newTestLogger(t))
	inRoom := NewSubscriber(4)
	otherRoom := NewSubscriber(4)

	hub.Join("b1", inRoom)
	hub.Join("b2", otherRoom)

	delivered := hub.PublishLocation("b1", domain.Location{Lat: 28.1, Lng: 77.4})
	assert.Equal(t, 1, delivered)

	require.Len(t, inRoom.Frames(), 1)
	assert.Empty(t, otherRoom.Frames())

	var frame Frame
	require.NoError(t, json.Unmarshal(<-inRoom.Frames(), &frame))
	assert.Equal(t, EventLocationUpdate, frame.Event)

	var loc domain.Location
	require.NoError(t, json.Unmarshal(frame.Data, &loc))
	assert.Equal(t, domain.Location{Lat: 28.1, Lng: 77.4}, loc)
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	hub := NewHub(newTestLogger(t))

	assert.Equal(t, 0, hub.PublishLocation("nobody", domain.Location{Lat: 1, Lng: 2}))
}

func TestHub_FullBufferIsSkipped(t *testing.T) {
	hub := NewHub(newTestLogger(t))
	slow := NewSubscriber(1)
	fast := NewSubscriber(4)
	hub.Join("b1", slow)
	hub.Join("b1", fast)

	assert.Equal(t, 2, hub.Publish("b1", []byte(`{"event":"ping"}`)))
	assert.Equal(t, 1, hub.Publish("b1", []byte(`{"event":"ping"}`)))

	assert.Len(t, slow.Frames(), 1)
	assert.Len(t, fast.Frames(), 2)
}

func TestHub_LeaveAndLeaveAll(t *testing.T) {
	hub := NewHub(newTestLogger(t))
	sub := NewSubscriber(4)

	hub.Join("b1", sub)
	hub.Join("b2", sub)
	hub.Join("b2", sub)
	assert.Equal(t, 1, hub.RoomSize("b1"))
	assert.Equal(t, 1, hub.RoomSize("b2"))

	hub.Leave("b1", sub)
	assert.Equal(t, 0, hub.RoomSize("b1"))
	assert.Equal(t, 1, hub.RoomSize("b2"))

	hub.Join("b3", sub)
	hub.LeaveAll(sub)
	assert.Equal(t, 0, hub.RoomSize("b2"))
	assert.Equal(t, 0, hub.RoomSize("b3"))
	assert.Equal(t, 0, hub.Publish("b2", []byte("x")))

	// повторный выход не ломает хаб
	hub.Leave("b1", sub)
	hub.LeaveAll(sub)
}

func TestNewSubscriber_DefaultBuffer(t *testing.T) {
	sub := NewSubscriber(0)

	assert.Equal(t, defaultBuffer, cap(sub.send))
	assert.NotEmpty(t, sub.ID())
}
