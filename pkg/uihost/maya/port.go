package maya

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"time"
)

// portSender talks to Maya's commandPort: newline-delimited MEL statements
// in, NUL-terminated replies out.
type portSender struct {
	conn   net.Conn
	reader *bufio.Reader
}

// DialPort connects to a Maya commandPort at addr (host:port).
func DialPort(ctx context.Context, addr string) (Sender, error) {
	var d net.Dialer

	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("maya: dial command port %s: %w", addr, err)
	}

	return &portSender{conn: conn, reader: bufio.NewReader(conn)}, nil
}

// Send implements Sender.
func (p *portSender) Send(ctx context.Context, mel string) (string, error) {
	deadline := time.Time{}
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}

	if err := p.conn.SetDeadline(deadline); err != nil {
		return "", fmt.Errorf("command port: set deadline: %w", err)
	}

	if _, err := fmt.Fprintf(p.conn, "%s\n", mel); err != nil {
		return "", fmt.Errorf("command port: write: %w", err)
	}

	reply, err := p.reader.ReadString('\x00')
	if err != nil {
		return "", fmt.Errorf("command port: read: %w", err)
	}

	// Strip the NUL terminator.
	return reply[:len(reply)-1], nil
}

// Close implements Sender.
func (p *portSender) Close() error {
	return p.conn.Close()
}
