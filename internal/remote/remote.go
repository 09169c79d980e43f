// Package remote accepts external session-control requests over a local
// unix socket. A companion surface (a parent or teacher's terminal)
// connects and writes one JSON object per line; each decodes to a
// controller.Request and is forwarded to the host loop.
package remote

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/abhisek/sumleap/internal/controller"
)

// wireRequest is the on-socket shape of one request.
type wireRequest struct {
	Kind    string `json:"kind"`
	ID      string `json:"id"`
	Value   int    `json:"value,omitempty"`
	Visible bool   `json:"visible,omitempty"`
	Message string `json:"message,omitempty"`
}

// Listener owns the socket and the request channel.
type Listener struct {
	ln       net.Listener
	path     string
	requests chan controller.Request
}

// DefaultSocketPath places the control socket next to the runtime dir,
// falling back to the temp dir.
func DefaultSocketPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "sumleap.sock")
	}
	return filepath.Join(os.TempDir(), "sumleap.sock")
}

// Listen binds the unix socket, replacing a stale one left by a previous
// run.
func Listen(path string) (*Listener, error) {
	_ = os.Remove(path)
	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("remote listen: %w", err)
	}
	l := &Listener{
		ln:       ln,
		path:     path,
		requests: make(chan controller.Request, 16),
	}
	go l.accept()
	return l, nil
}

// Requests is the stream of decoded requests. Closed when the listener
// shuts down.
func (l *Listener) Requests() <-chan controller.Request {
	return l.requests
}

// Close stops accepting and removes the socket file.
func (l *Listener) Close() error {
	err := l.ln.Close()
	_ = os.Remove(l.path)
	return err
}

func (l *Listener) accept() {
	defer close(l.requests)
	for {
		conn, err := l.ln.Accept()
		if err != nil {
			return
		}
		go l.serve(conn)
	}
}

// serve reads newline-delimited JSON until the peer disconnects. Each
// request is acknowledged with a one-line reply so the sender can stop
// retrying its ID.
func (l *Listener) serve(conn net.Conn) {
	defer conn.Close()
	sc := bufio.NewScanner(conn)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var wr wireRequest
		if err := json.Unmarshal(line, &wr); err != nil {
			fmt.Fprintf(conn, `{"ok":false,"error":%q}`+"\n", err.Error())
			continue
		}
		req := controller.Request{
			Kind:    controller.RequestKind(wr.Kind),
			ID:      wr.ID,
			Value:   wr.Value,
			Visible: wr.Visible,
			Message: wr.Message,
		}
		select {
		case l.requests <- req:
			fmt.Fprintf(conn, `{"ok":true,"id":%q}`+"\n", wr.ID)
		default:
			fmt.Fprintf(conn, `{"ok":false,"error":"busy"}`+"\n")
		}
	}
}

// Send connects to a listener and delivers one request, waiting for the
// acknowledgement. Used by the companion CLI.
func Send(ctx context.Context, path string, req controller.Request) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return fmt.Errorf("remote send: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	wr := wireRequest{
		Kind:    string(req.Kind),
		ID:      req.ID,
		Value:   req.Value,
		Visible: req.Visible,
		Message: req.Message,
	}
	data, err := json.Marshal(wr)
	if err != nil {
		return fmt.Errorf("remote send: %w", err)
	}
	if _, err := conn.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("remote send: %w", err)
	}

	var reply struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(conn).Decode(&reply); err != nil {
		return fmt.Errorf("remote send: read ack: %w", err)
	}
	if !reply.OK {
		return fmt.Errorf("remote send: rejected: %s", reply.Error)
	}
	return nil
}
