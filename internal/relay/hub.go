package relay

import (
	"encoding/json"
	"sync"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const (
	EventJoinRoom       = "join_room"
	EventLeaveRoom      = "leave_room"
	EventUpdateLocation = "update_location"
	EventLocationUpdate = "location_update"
	EventError          = "error"
)

const defaultBuffer = 16

// Frame передается по сокету.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

func NewFrame(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Frame{Event: event, Data: raw})
}

// Subscriber получает кадры комнат, в которых состоит. Буфер ограничен,
// медленный подписчик теряет кадры, а не тормозит публикацию.
type Subscriber struct {
	id   string
	send chan []byte
}

func NewSubscriber(buffer int) *Subscriber {
	if buffer < 1 {
		buffer = defaultBuffer
	}
	return &Subscriber{id: uuid.NewString(), send: make(chan []byte, buffer)}
}

func (s *Subscriber) ID() string { return s.id }

func (s *Subscriber) Frames() <-chan []byte { return s.send }

// Deliver не блокируется: при полном буфере кадр отбрасывается.
func (s *Subscriber) Deliver(frame []byte) bool {
	select {
	case s.send <- frame:
		return true
	default:
		return false
	}
}

// Hub держит комнаты подписчиков по id брони. Ничего не хранит и не переигрывает.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Subscriber]struct{}
	member map[*Subscriber]map[string]struct{}
	logger logger.Logger
}

func NewHub(logger logger.Logger) *Hub {
	return &Hub{
		rooms:  make(map[string]map[*Subscriber]struct{}),
		member: make(map[*Subscriber]map[string]struct{}),
		logger: logger,
	}
}

func (h *Hub) Join(bookingID string, sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[bookingID]
	if !ok {
		room = make(map[*Subscriber]struct{})
		h.rooms[bookingID] = room
	}
	room[sub] = struct{}{}

	joined, ok := h.member[sub]
	if !ok {
		joined = make(map[string]struct{})
		h.member[sub] = joined
	}
	joined[bookingID] = struct{}{}
}

func (h *Hub) Leave(bookingID string, sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.leave(bookingID, sub)
}

// LeaveAll убирает подписчика из всех комнат, вызывается при разрыве соединения.
func (h *Hub) LeaveAll(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for bookingID := range h.member[sub] {
		h.leave(bookingID, sub)
	}
	delete(h.member, sub)
}

func (h *Hub) leave(bookingID string, sub *Subscriber) {
	if room, ok := h.rooms[bookingID]; ok {
		delete(room, sub)
		if len(room) == 0 {
			delete(h.rooms, bookingID)
		}
	}
	if joined, ok := h.member[sub]; ok {
		delete(joined, bookingID)
		if len(joined) == 0 {
			delete(h.member, sub)
		}
	}
}

func (h *Hub) RoomSize(bookingID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[bookingID])
}

// Publish рассылает кадр подписчикам комнаты и возвращает число доставок.
func (h *Hub) Publish(bookingID string, frame []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for sub := range h.rooms[bookingID] {
		if sub.Deliver(frame) {
			delivered++
		} else {
			h.logger.Debug("relay frame dropped (subscriber buffer full)",
				logger.String("booking_id", bookingID),
				logger.String("subscriber", sub.id),
			)
		}
	}

	return delivered
}

func (h *Hub) PublishLocation(bookingID string, loc domain.Location) int {
	frame, err := NewFrame(EventLocationUpdate, loc)
	if err != nil {
		h.logger.Error("failed to encode location frame",
			logger.String("booking_id", bookingID),
			logger.String("error", err.Error()),
		)
		return 0
	}

	return h.Publish(bookingID, frame)
}
