package socket

import (
	"log"
	"net/http"

	"sparkd_server/services"

	socketio "github.com/googollee/go-socket.io"
)

// Hub is the Socket.IO server used for live match pushes. Clients join a
// room keyed by their user id right after connecting.
type Hub struct {
	server *socketio.Server
}

// NewHub initializes the Socket.IO server and its event handlers.
func NewHub() *Hub {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, userID string) {
		if userID == "" {
			log.Println("❌ Invalid userId in join request")
			return
		}
		log.Printf("👥 Socket %s joined room for user %s\n", c.ID(), userID)
		c.Join(userRoom(userID))
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("❌ Socket error:", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("Socket disconnected:", reason)
	})

	return &Hub{server: server}
}

func userRoom(userID string) string {
	return "user:" + userID
}

// PushMatch delivers a match event to the user's room. Returning an error
// when nobody is in the room lets the dispatcher log it; the stored
// notification is the durable copy either way.
func (h *Hub) PushMatch(userID string, event services.MatchEvent) error {
	if ok := h.server.BroadcastToRoom("/", userRoom(userID), "match:new", event); !ok {
		return &noListenerError{userID: userID}
	}
	return nil
}

type noListenerError struct {
	userID string
}

func (e *noListenerError) Error() string {
	return "no connected socket for user " + e.userID
}

// Serve runs the Socket.IO event loop.
func (h *Hub) Serve() error {
	return h.server.Serve()
}

// Close shuts the event loop down.
func (h *Hub) Close() error {
	return h.server.Close()
}

// Handler exposes the server for mounting under /socket.io/.
func (h *Hub) Handler() http.Handler {
	return h.server
}

var _ services.MatchPusher = (*Hub)(nil)
