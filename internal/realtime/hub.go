package realtime

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/noah-isme/walkin-drive-api/internal/models"
)

const writeWait = 5 * time.Second

type hubCmd interface{ hubCmd() }

type cmdRegister struct {
	id    uuid.UUID
	conn  *websocket.Conn
	errCh chan error
}

func (cmdRegister) hubCmd() {}

type cmdUnregister struct {
	id uuid.UUID
}

func (cmdUnregister) hubCmd() {}

type cmdBroadcast struct {
	data []byte
}

func (cmdBroadcast) hubCmd() {}

type cmdClientCount struct {
	replyCh chan int
}

func (cmdClientCount) hubCmd() {}

type cmdStop struct{}

func (cmdStop) hubCmd() {}

// clientWriter owns all writes to one connection so a stalled socket never
// blocks the hub loop.
type clientWriter struct {
	conn   *websocket.Conn
	sendCh chan []byte
	done   chan struct{}
	clock  clockwork.Clock
}

func newClientWriter(conn *websocket.Conn, bufferSize int, clock clockwork.Clock) *clientWriter {
	cw := &clientWriter{
		conn:   conn,
		sendCh: make(chan []byte, bufferSize),
		done:   make(chan struct{}),
		clock:  clock,
	}
	go cw.run()
	return cw
}

func (cw *clientWriter) run() {
	for {
		select {
		case msg, ok := <-cw.sendCh:
			if !ok {
				return
			}
			cw.conn.SetWriteDeadline(cw.clock.Now().Add(writeWait))
			if err := cw.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-cw.done:
			return
		}
	}
}

func (cw *clientWriter) stop() {
	close(cw.done)
	cw.conn.Close()
}

// Hub is the broadcast actor. A single goroutine owns the client set;
// every connected client receives every event, with no topic scoping and
// no replay for late joiners.
type Hub struct {
	cmdCh      chan hubCmd
	clients    map[uuid.UUID]*clientWriter
	maxClients int
	sendBuffer int
	clock      clockwork.Clock
	logger     *zap.Logger
	stats      Stats
}

// Option tweaks hub construction.
type Option func(*Hub)

// WithClock substitutes the wall clock, for tests.
func WithClock(clock clockwork.Clock) Option {
	return func(h *Hub) { h.clock = clock }
}

// NewHub starts the hub actor. maxClients caps concurrent connections;
// sendBuffer is the per-client queue length beyond which a slow client is
// evicted.
func NewHub(maxClients, sendBuffer int, logger *zap.Logger, stats Stats, opts ...Option) *Hub {
	if maxClients <= 0 {
		maxClients = 512
	}
	if sendBuffer <= 0 {
		sendBuffer = 16
	}
	if stats == nil {
		stats = NopStats{}
	}
	h := &Hub{
		cmdCh:      make(chan hubCmd, 256),
		clients:    make(map[uuid.UUID]*clientWriter),
		maxClients: maxClients,
		sendBuffer: sendBuffer,
		clock:      clockwork.NewRealClock(),
		logger:     logger,
		stats:      stats,
	}
	for _, opt := range opts {
		opt(h)
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for cmd := range h.cmdCh {
		switch c := cmd.(type) {
		case cmdRegister:
			h.handleRegister(c)
		case cmdUnregister:
			h.handleUnregister(c.id)
		case cmdBroadcast:
			h.handleBroadcast(c.data)
		case cmdClientCount:
			c.replyCh <- len(h.clients)
		case cmdStop:
			h.handleStop()
			return
		}
	}
}

func (h *Hub) handleRegister(c cmdRegister) {
	if len(h.clients) >= h.maxClients {
		h.logger.Warn("rejecting client: max clients reached",
			zap.Int("max_clients", h.maxClients))
		c.conn.Close()
		c.errCh <- fmt.Errorf("max clients (%d) reached", h.maxClients)
		return
	}
	h.clients[c.id] = newClientWriter(c.conn, h.sendBuffer, h.clock)
	h.stats.ClientConnected()
	h.logger.Debug("client registered",
		zap.String("client_id", c.id.String()),
		zap.Int("total_clients", len(h.clients)))
	c.errCh <- nil
}

func (h *Hub) handleUnregister(id uuid.UUID) {
	cw, ok := h.clients[id]
	if !ok {
		return
	}
	cw.stop()
	delete(h.clients, id)
	h.stats.ClientDisconnected()
	h.logger.Debug("client unregistered",
		zap.String("client_id", id.String()),
		zap.Int("remaining_clients", len(h.clients)))
}

func (h *Hub) handleBroadcast(data []byte) {
	var slow []uuid.UUID
	for id, cw := range h.clients {
		select {
		case cw.sendCh <- data:
		default:
			slow = append(slow, id)
		}
	}
	h.stats.EventBroadcast()

	for _, id := range slow {
		h.logger.Warn("disconnecting slow client", zap.String("client_id", id.String()))
		h.handleUnregister(id)
	}
}

func (h *Hub) handleStop() {
	for id, cw := range h.clients {
		cw.stop()
		delete(h.clients, id)
	}
}

// Register adds a connection under a fresh client id. The returned id is
// the handle for Unregister.
func (h *Hub) Register(conn *websocket.Conn) (uuid.UUID, error) {
	id := uuid.New()
	errCh := make(chan error, 1)
	h.cmdCh <- cmdRegister{id: id, conn: conn, errCh: errCh}
	return id, <-errCh
}

// Unregister removes a connection and stops its writer.
func (h *Hub) Unregister(id uuid.UUID) {
	h.cmdCh <- cmdUnregister{id: id}
}

// Broadcast queues the event envelope for delivery to every connected
// client.
func (h *Hub) Broadcast(evt models.Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("marshal broadcast event", zap.Error(err))
		return
	}
	h.cmdCh <- cmdBroadcast{data: data}
}

// ClientCount reports how many clients are connected.
func (h *Hub) ClientCount() int {
	replyCh := make(chan int, 1)
	h.cmdCh <- cmdClientCount{replyCh: replyCh}
	return <-replyCh
}

// Stop disconnects every client and halts the actor.
func (h *Hub) Stop() {
	h.cmdCh <- cmdStop{}
}
