package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"
)

const (
	defaultDialTimeout   = 2 * time.Second
	defaultWriteTimeout  = time.Second
	defaultRetryCooldown = 5 * time.Second
)

var errRetryCooldown = errors.New("logging: collector retry cooldown in effect")

// TCPWriter mirrors log lines to a line-oriented TCP collector such as a
// Logstash TCP input. A single connection is reused across writes; while the
// collector is unreachable, lines are dropped so logging never blocks request
// handling.
type TCPWriter struct {
	addr          string
	dialTimeout   time.Duration
	writeTimeout  time.Duration
	retryCooldown time.Duration

	mu      sync.Mutex
	conn    net.Conn
	retryAt time.Time
	closed  bool
}

// TCPWriterConfig carries optional tuning for a TCPWriter. Zero values fall
// back to the defaults.
type TCPWriterConfig struct {
	DialTimeout   time.Duration
	WriteTimeout  time.Duration
	RetryCooldown time.Duration
}

// NewTCPWriter returns a writer that forwards log output to the collector at
// addr. It is safe for concurrent use by multiple goroutines.
func NewTCPWriter(addr string, cfg TCPWriterConfig) (*TCPWriter, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("logging: empty collector address")
	}

	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = defaultDialTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	if cfg.RetryCooldown <= 0 {
		cfg.RetryCooldown = defaultRetryCooldown
	}

	return &TCPWriter{
		addr:          addr,
		dialTimeout:   cfg.DialTimeout,
		writeTimeout:  cfg.WriteTimeout,
		retryCooldown: cfg.RetryCooldown,
	}, nil
}

// Write implements io.Writer. The payload is framed as a single line and sent
// to the collector. Failures drop the line and report success so the log
// package keeps running; a cooldown window spaces out reconnect attempts.
func (w *TCPWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	line := frameLine(p)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, io.ErrClosedPipe
	}

	if err := w.connectLocked(); err != nil {
		return len(p), nil
	}

	if w.writeTimeout > 0 {
		_ = w.conn.SetWriteDeadline(time.Now().Add(w.writeTimeout))
	}

	if _, err := w.conn.Write(line); err != nil {
		w.dropConnLocked()
		w.retryAt = time.Now().Add(w.retryCooldown)
		return len(p), nil
	}

	return len(p), nil
}

// Close tears down the collector connection. Subsequent writes fail with
// io.ErrClosedPipe.
func (w *TCPWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}

	w.closed = true
	conn := w.conn
	w.conn = nil
	if conn == nil {
		return nil
	}
	return conn.Close()
}

func (w *TCPWriter) connectLocked() error {
	if w.conn != nil {
		return nil
	}

	if !w.retryAt.IsZero() && time.Now().Before(w.retryAt) {
		return errRetryCooldown
	}

	conn, err := net.DialTimeout("tcp", w.addr, w.dialTimeout)
	if err != nil {
		w.retryAt = time.Now().Add(w.retryCooldown)
		return err
	}

	w.conn = conn
	w.retryAt = time.Time{}
	return nil
}

func (w *TCPWriter) dropConnLocked() {
	if w.conn == nil {
		return
	}
	_ = w.conn.Close()
	w.conn = nil
}

// frameLine copies p and guarantees a trailing newline so the collector sees
// one event per line.
func frameLine(p []byte) []byte {
	line := make([]byte, len(p), len(p)+1)
	copy(line, p)
	if line[len(line)-1] != '\n' {
		line = append(line, '\n')
	}
	return line
}
