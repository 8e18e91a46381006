package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"example.com/inventory-tracker/internal/usecase/live"
)

const wsWriteWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// wsConn adapts a gorilla connection to live.Conn. Gorilla supports one
// concurrent writer, so every write goes through mu.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait))
}

func (c *wsConn) Send(snap live.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return c.conn.WriteJSON(snap)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

// handleLive upgrades the request and hands the connection to a live
// session. The read loop below only exists to drive control-frame
// handlers and to surface a client close or transport error.
func (a *API) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.log.Error("ws_upgrade_failed", "error", err)
		return
	}

	sess := live.NewSession(a.productSvc, &wsConn{conn: conn}, a.heartbeatInterval, a.clientTimeout, a.log)
	conn.SetPongHandler(func(string) error {
		sess.Heartbeat()
		return nil
	})

	a.log.Info("live_client_connected", "remote", conn.RemoteAddr().String())
	go sess.Run(r.Context())

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			sess.Close()
			a.log.Info("live_client_disconnected", "remote", conn.RemoteAddr().String())
			return
		}
	}
}
