// internal/db/ssh_test.go
package db

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"
)

type stubConn struct {
	net.Conn
	mu     sync.Mutex
	closed bool
}

func (c *stubConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *stubConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func TestDialWithContextDelivers(t *testing.T) {
	conn := &stubConn{}
	dial := func(network, addr string) (net.Conn, error) {
		return conn, nil
	}

	got, err := dialWithContext(context.Background(), dial, "tcp", "db:5432")
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	if got != conn {
		t.Fatal("expected the dialed connection back")
	}
	if conn.isClosed() {
		t.Fatal("delivered connection must stay open")
	}
}

func TestDialWithContextPropagatesError(t *testing.T) {
	dialErr := errors.New("no route to host")
	dial := func(network, addr string) (net.Conn, error) {
		return nil, dialErr
	}

	_, err := dialWithContext(context.Background(), dial, "tcp", "db:5432")
	if !errors.Is(err, dialErr) {
		t.Fatalf("expected dial error, got %v", err)
	}
}

func TestDialWithContextClosesAbandonedConn(t *testing.T) {
	conn := &stubConn{}
	started := make(chan struct{})
	release := make(chan struct{})
	dial := func(network, addr string) (net.Conn, error) {
		close(started)
		<-release
		return conn, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := dialWithContext(ctx, dial, "tcp", "db:5432")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	// Let the dial settle; the spawned goroutine must close the now
	// undeliverable connection.
	close(release)
	for i := 0; i < 100; i++ {
		if conn.isClosed() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("abandoned connection was never closed")
}
