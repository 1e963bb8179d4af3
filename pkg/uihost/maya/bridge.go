package maya

import (
	"context"
	"fmt"

	"github.com/coder/websocket"
)

// bridgeSender talks to a WebSocket relay plugin running inside Maya: one
// text message per MEL statement, one text message per reply. Useful where
// the raw command port is firewalled or the session lives behind a web
// gateway.
type bridgeSender struct {
	conn *websocket.Conn
}

// DialBridge connects to a Maya WebSocket relay at url (ws:// or wss://).
func DialBridge(ctx context.Context, url string) (Sender, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("maya: dial bridge %s: %w", url, err)
	}

	return &bridgeSender{conn: conn}, nil
}

// Send implements Sender.
func (b *bridgeSender) Send(ctx context.Context, mel string) (string, error) {
	if err := b.conn.Write(ctx, websocket.MessageText, []byte(mel)); err != nil {
		return "", fmt.Errorf("bridge: write: %w", err)
	}

	kind, data, err := b.conn.Read(ctx)
	if err != nil {
		return "", fmt.Errorf("bridge: read: %w", err)
	}

	if kind != websocket.MessageText {
		return "", fmt.Errorf("bridge: unexpected %v reply", kind)
	}

	return string(data), nil
}

// Close implements Sender.
func (b *bridgeSender) Close() error {
	return b.conn.Close(websocket.StatusNormalClosure, "done")
}
