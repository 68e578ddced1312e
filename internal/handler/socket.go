package handler

import (
	"encoding/json"
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/relay"
	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	socketWriteWait   = 10 * time.Second
	socketPongWait    = 60 * time.Second
	socketPingPeriod  = socketPongWait * 9 / 10
	socketMaxFrame    = 4096
	socketFrameBuffer = 32
)

type locationPayload struct {
	BookingID string           `json:"bookingId"`
	Location  *domain.Location `json:"location"`
}

type socketClient struct {
	conn   *websocket.Conn
	sub    *relay.Subscriber
	relay  LocationRelay
	logger logger.Logger
	done   chan struct{}
}

// ServeSocket ретранслирует координаты. Обновления через сокет только
// рассылаются в комнату и не сохраняются в брони.
func (h *Handler) ServeSocket(c *ginext.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.LogAttrs(c.Request.Context(), logger.DebugLevel, "websocket upgrade failed",
			logger.String("error", err.Error()),
		)
		return
	}

	client := &socketClient{
		conn:   conn,
		sub:    relay.NewSubscriber(socketFrameBuffer),
		relay:  h.relay,
		logger: h.logger,
		done:   make(chan struct{}),
	}

	go client.writeLoop()
	client.readLoop()
}

func (s *socketClient) readLoop() {
	defer func() {
		s.relay.LeaveAll(s.sub)
		close(s.done)
		_ = s.conn.Close()
	}()

	s.conn.SetReadLimit(socketMaxFrame)
	_ = s.conn.SetReadDeadline(time.Now().Add(socketPongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(socketPongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("websocket closed unexpectedly",
					logger.String("subscriber", s.sub.ID()),
					logger.String("error", err.Error()),
				)
			}
			return
		}

		s.handleFrame(data)
	}
}

func (s *socketClient) handleFrame(data []byte) {
	var frame relay.Frame
	if err := json.Unmarshal(data, &frame); err != nil {
		s.reply(relay.EventError, "malformed frame")
		return
	}

	switch frame.Event {
	case relay.EventJoinRoom, relay.EventLeaveRoom:
		var bookingID string
		if err := json.Unmarshal(frame.Data, &bookingID); err != nil || bookingID == "" {
			s.reply(relay.EventError, "room must be a booking id")
			return
		}
		if frame.Event == relay.EventJoinRoom {
			s.relay.Join(bookingID, s.sub)
		} else {
			s.relay.Leave(bookingID, s.sub)
		}

	case relay.EventUpdateLocation:
		var p locationPayload
		if err := json.Unmarshal(frame.Data, &p); err != nil || p.BookingID == "" || p.Location == nil {
			s.reply(relay.EventError, "update_location needs bookingId and location")
			return
		}
		s.relay.PublishLocation(p.BookingID, *p.Location)

	default:
		s.reply(relay.EventError, "unknown event "+frame.Event)
	}
}

func (s *socketClient) reply(event string, data any) {
	frame, err := relay.NewFrame(event, data)
	if err != nil {
		return
	}
	s.sub.Deliver(frame)
}

func (s *socketClient) writeLoop() {
	ticker := time.NewTicker(socketPingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case <-s.done:
			return
		case frame := <-s.sub.Frames():
			_ = s.conn.SetWriteDeadline(time.Now().Add(socketWriteWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(socketWriteWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
