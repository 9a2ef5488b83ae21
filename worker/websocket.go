package worker

import (
	"context"

	"github.com/coder/websocket"
)

// wsConn adapts a coder/websocket connection to the Conn interface.
// Frames travel as text messages; the incoming message type is ignored.
type wsConn struct {
	conn *websocket.Conn
}

// NewWebSocketConn wraps an accepted or dialed websocket connection.
func NewWebSocketConn(conn *websocket.Conn) Conn {
	return &wsConn{conn: conn}
}

func (w *wsConn) Read(ctx context.Context) ([]byte, error) {
	_, data, err := w.conn.Read(ctx)
	return data, err
}

func (w *wsConn) Write(ctx context.Context, data []byte) error {
	return w.conn.Write(ctx, websocket.MessageText, data)
}

func (w *wsConn) Close() error {
	return w.conn.Close(websocket.StatusNormalClosure, "")
}
