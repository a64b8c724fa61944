package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/avc/orderchat/internal/domain"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	streamWriteTimeout = 10 * time.Second
	streamPongTimeout  = 60 * time.Second
	streamPingInterval = 30 * time.Second
	streamBufferSize   = 64
)

// StreamSnapshot первое сообщение потока: полный снимок сессии
type StreamSnapshot struct {
	Type    string             `json:"type"`
	Session domain.SessionView `json:"session"`
}

type streamClient struct {
	events chan domain.Event
}

// StreamHub рассылает события сессии подключенным websocket-клиентам.
// Реализует domain.Observer; Notify не блокируется, отстающий клиент отключается.
type StreamHub struct {
	snapshot func(ctx context.Context) domain.SessionView
	upgrader websocket.Upgrader
	logger   *zap.Logger

	mu      sync.Mutex
	clients map[*streamClient]struct{}
}

// NewStreamHub создает новый StreamHub
func NewStreamHub(snapshot func(ctx context.Context) domain.SessionView, logger *zap.Logger) *StreamHub {
	return &StreamHub{
		snapshot: snapshot,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:  logger,
		clients: make(map[*streamClient]struct{}),
	}
}

// Notify отправляет событие всем клиентам
func (h *StreamHub) Notify(event domain.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.events <- event:
		default:
			h.logger.Warn("stream client is too slow, disconnecting")
			delete(h.clients, client)
			close(client.events)
		}
	}
}

// Clients возвращает число подключенных клиентов
func (h *StreamHub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close отключает всех клиентов
func (h *StreamHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		delete(h.clients, client)
		close(client.events)
	}
}

func (h *StreamHub) subscribe() *streamClient {
	client := &streamClient{events: make(chan domain.Event, streamBufferSize)}
	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()
	return client
}

func (h *StreamHub) unsubscribe(client *streamClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.events)
	}
}

// Serve обрабатывает GET /api/stream
func (h *StreamHub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	client := h.subscribe()
	defer h.unsubscribe(client)

	h.logger.Debug("stream client connected", zap.String("request_id", GetRequestID(r.Context())))

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go h.readLoop(conn, cancel)

	conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout)) //nolint:errcheck
	if err := conn.WriteJSON(StreamSnapshot{Type: "snapshot", Session: h.snapshot(ctx)}); err != nil {
		return
	}

	ticker := time.NewTicker(streamPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-client.events:
			if !ok {
				conn.WriteControl(websocket.CloseMessage, //nolint:errcheck
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
					time.Now().Add(time.Second))
				return
			}
			conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout)) //nolint:errcheck
			if err := conn.WriteJSON(event); err != nil {
				h.logger.Debug("stream write failed", zap.Error(err))
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteTimeout)); err != nil {
				return
			}
		}
	}
}

// readLoop читает входящие кадры, чтобы обрабатывались pong и close
func (h *StreamHub) readLoop(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadDeadline(time.Now().Add(streamPongTimeout)) //nolint:errcheck
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongTimeout))
	})

	for {
		if _, _, err := conn.NextReader(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("stream read error", zap.Error(err))
			}
			return
		}
	}
}
