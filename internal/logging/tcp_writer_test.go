package logging

import (
	"bufio"
	"errors"
	"io"
	"net"
	"testing"
	"time"
)

func TestTCPWriterSendsFramedLines(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	connCh := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		connCh <- conn
	}()

	w, err := NewTCPWriter(ln.Addr().String(), TCPWriterConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	n, err := w.Write([]byte("first entry"))
	if err != nil || n != len("first entry") {
		t.Fatalf("expected full write, got n=%d err=%v", n, err)
	}

	var conn net.Conn
	select {
	case conn = <-connCh:
	case <-time.After(2 * time.Second):
		t.Fatal("collector never received a connection")
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	reader := bufio.NewReader(conn)

	line, err := reader.ReadString('\n')
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if line != "first entry\n" {
		t.Fatalf("expected newline-framed entry, got %q", line)
	}

	if _, err := w.Write([]byte("second entry\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line, err = reader.ReadString('\n')
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if line != "second entry\n" {
		t.Fatalf("expected entry framed once, got %q", line)
	}
}

func TestTCPWriterDropsWhenCollectorDown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	w, err := NewTCPWriter(addr, TCPWriterConfig{
		DialTimeout:   200 * time.Millisecond,
		RetryCooldown: time.Hour,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	n, err := w.Write([]byte("lost entry"))
	if err != nil || n != len("lost entry") {
		t.Fatalf("expected dropped write to report success, got n=%d err=%v", n, err)
	}

	// Still inside the cooldown window, so this write skips dialing entirely.
	n, err = w.Write([]byte("also lost"))
	if err != nil || n != len("also lost") {
		t.Fatalf("expected dropped write to report success, got n=%d err=%v", n, err)
	}
}

func TestTCPWriterEmptyWrite(t *testing.T) {
	w, err := NewTCPWriter("127.0.0.1:9", TCPWriterConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	n, err := w.Write(nil)
	if n != 0 || err != nil {
		t.Fatalf("expected empty write to be a no-op, got n=%d err=%v", n, err)
	}
}

func TestTCPWriterClose(t *testing.T) {
	w, err := NewTCPWriter("127.0.0.1:9", TCPWriterConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("expected repeat close to be a no-op, got %v", err)
	}

	if _, err := w.Write([]byte("after close")); !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("expected io.ErrClosedPipe, got %v", err)
	}
}

func TestNewTCPWriterValidation(t *testing.T) {
	if _, err := NewTCPWriter("   ", TCPWriterConfig{}); err == nil {
		t.Fatal("expected error for empty address")
	}
}
