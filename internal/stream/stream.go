// Package stream broadcasts hand events to websocket subscribers. The
// broadcaster implements holdem.Observer, so wiring it into a session makes
// every hand watchable live.
package stream

import (
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lox/nolimit/internal/betting"
	"github.com/lox/nolimit/internal/deck"
	"github.com/lox/nolimit/internal/holdem"
)

// EventType discriminates stream messages.
type EventType string

const (
	EventHandStarted    EventType = "hand_started"
	EventActionApplied  EventType = "action"
	EventStreetAdvanced EventType = "street"
	EventHandFinished   EventType = "hand_finished"
)

// Event is one JSON message on the stream.
type Event struct {
	Type   EventType `json:"type"`
	HandID string    `json:"hand_id,omitempty"`

	Names  []string `json:"names,omitempty"`
	Button int      `json:"button,omitempty"`
	Stacks []int    `json:"stacks,omitempty"`

	Seat   int      `json:"seat,omitempty"`
	Street string   `json:"street,omitempty"`
	Action string   `json:"action,omitempty"`
	Amount int      `json:"amount,omitempty"`
	Pot    int      `json:"pot,omitempty"`
	Board  []string `json:"board,omitempty"`

	Winner      string `json:"winner,omitempty"`
	Showdown    bool   `json:"showdown,omitempty"`
	WinningRank string `json:"winning_rank,omitempty"`
	Net         []int  `json:"net,omitempty"`
}

const (
	writeWait  = 10 * time.Second
	sendBuffer = 256
)

type client struct {
	id        string
	conn      *websocket.Conn
	send      chan Event
	closeOnce sync.Once
}

func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
		_ = c.conn.Close()
	})
}

var _ holdem.Observer = (*Broadcaster)(nil)

// Broadcaster fans hand events out to every connected websocket client.
// Clients that cannot keep up are dropped rather than allowed to stall the
// game loop.
type Broadcaster struct {
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]*client
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster(logger *log.Logger) *Broadcaster {
	return &Broadcaster{
		logger: logger.WithPrefix("stream"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[string]*client),
	}
}

// ServeHTTP upgrades the request to a websocket subscription.
func (b *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.logger.Error("websocket upgrade failed", "err", err)
		return
	}

	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan Event, sendBuffer),
	}

	b.mu.Lock()
	b.clients[c.id] = c
	b.mu.Unlock()
	b.logger.Info("client connected", "id", c.id, "clients", b.ClientCount())

	go b.writePump(c)
	go b.readPump(c)
}

// ClientCount returns the number of connected clients.
func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// Close disconnects every client.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	clients := make([]*client, 0, len(b.clients))
	for _, c := range b.clients {
		clients = append(clients, c)
	}
	b.clients = make(map[string]*client)
	b.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
}

// Broadcast queues the event for every client, dropping clients whose send
// buffer is full.
func (b *Broadcaster) Broadcast(event Event) {
	b.mu.RLock()
	clients := make([]*client, 0, len(b.clients))
	for _, c := range b.clients {
		clients = append(clients, c)
	}
	b.mu.RUnlock()

	for _, c := range clients {
		b.send(c, event)
	}
}

// send queues the event for one client. A client can disconnect between the
// snapshot and the send, closing its channel from the read/write pumps, so
// the send is guarded with a recover.
func (b *Broadcaster) send(c *client, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Debug("send to disconnected client", "id", c.id, "recovered", r)
		}
	}()

	select {
	case c.send <- event:
	default:
		b.logger.Warn("client too slow, dropping", "id", c.id)
		b.remove(c)
	}
}

func (b *Broadcaster) remove(c *client) {
	b.mu.Lock()
	delete(b.clients, c.id)
	b.mu.Unlock()
	c.close()
}

func (b *Broadcaster) writePump(c *client) {
	for event := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(event); err != nil {
			b.logger.Debug("write failed", "id", c.id, "err", err)
			b.remove(c)
			return
		}
	}
}

// readPump discards inbound messages; its job is noticing disconnects.
func (b *Broadcaster) readPump(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			b.logger.Info("client disconnected", "id", c.id)
			b.remove(c)
			return
		}
	}
}

func cardStrings(cards []deck.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

// HandStarted implements holdem.Observer.
func (b *Broadcaster) HandStarted(handID string, names []string, button int, stacks []int) {
	b.Broadcast(Event{
		Type:   EventHandStarted,
		HandID: handID,
		Names:  names,
		Button: button,
		Stacks: stacks,
	})
}

// ActionApplied implements holdem.Observer.
func (b *Broadcaster) ActionApplied(handID string, seat int, street betting.Street, action betting.Action, amount, pot int) {
	b.Broadcast(Event{
		Type:   EventActionApplied,
		HandID: handID,
		Seat:   seat,
		Street: street.String(),
		Action: action.String(),
		Amount: amount,
		Pot:    pot,
	})
}

// StreetAdvanced implements holdem.Observer.
func (b *Broadcaster) StreetAdvanced(handID string, street betting.Street, board []deck.Card, pot int) {
	b.Broadcast(Event{
		Type:   EventStreetAdvanced,
		HandID: handID,
		Street: street.String(),
		Board:  cardStrings(board),
		Pot:    pot,
	})
}

// HandFinished implements holdem.Observer.
func (b *Broadcaster) HandFinished(result *holdem.HandResult) {
	b.Broadcast(Event{
		Type:        EventHandFinished,
		HandID:      result.HandID,
		Winner:      result.WinnerName,
		Pot:         result.Pot,
		Showdown:    result.Showdown,
		WinningRank: result.WinningRank,
		Street:      result.StreetReached.String(),
		Board:       cardStrings(result.Board),
		Stacks:      result.FinalStacks,
		Net:         result.Net,
	})
}
