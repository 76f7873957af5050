package websocket

import (
	"sync"
	"time"

	"leximax/models"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// writeWait bounds a single event write to a slow peer.
const writeWait = 10 * time.Second

// GamificationClient represents a client connected for gamification updates
type GamificationClient struct {
	Conn    *websocket.Conn
	UserID  string
	writeMu sync.Mutex
}

// SafeWriteJSON serializes writes; gorilla connections allow one writer.
func (gc *GamificationClient) SafeWriteJSON(v interface{}) error {
	gc.writeMu.Lock()
	defer gc.writeMu.Unlock()
	if err := gc.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return gc.Conn.WriteJSON(v)
}

// Hub delivers progression events to the connections of the user they
// concern. It implements services.Notifier.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*GamificationClient]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[*GamificationClient]bool)}
}

func (h *Hub) Register(client *GamificationClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[client.UserID]
	if !ok {
		set = make(map[*GamificationClient]bool)
		h.clients[client.UserID] = set
	}
	set[client] = true
	log.WithFields(log.Fields{"user": client.UserID, "connections": len(set)}).Debug("Gamification client registered")
}

func (h *Hub) Unregister(client *GamificationClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[client.UserID]
	if !ok || !set[client] {
		return
	}
	delete(set, client)
	if len(set) == 0 {
		delete(h.clients, client.UserID)
	}
	client.Conn.Close()
	log.WithField("user", client.UserID).Debug("Gamification client unregistered")
}

// Notify sends the event to every connection of event.UserID. Clients whose
// write fails are dropped.
func (h *Hub) Notify(event models.GamificationEvent) {
	h.mu.RLock()
	targets := make([]*GamificationClient, 0, len(h.clients[event.UserID]))
	for client := range h.clients[event.UserID] {
		targets = append(targets, client)
	}
	h.mu.RUnlock()

	for _, client := range targets {
		if err := client.SafeWriteJSON(event); err != nil {
			log.WithError(err).WithField("user", event.UserID).Warn("Error sending gamification event")
			go h.Unregister(client)
		}
	}
}

// ClientCount returns the number of open connections for userID.
func (h *Hub) ClientCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}
