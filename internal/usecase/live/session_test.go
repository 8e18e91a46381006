package live

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domproduct "example.com/inventory-tracker/internal/domain/product"
)

type fakeSource struct {
	products []domproduct.Product
	err      error
}

func (f *fakeSource) Snapshot(ctx context.Context) ([]domproduct.Product, error) {
	return f.products, f.err
}

type fakeConn struct {
	mu      sync.Mutex
	pings   int
	snaps   []Snapshot
	closed  bool
	pingErr error
	sendErr error
}

func (c *fakeConn) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pings++
	return c.pingErr
}

func (c *fakeConn) Send(snap Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sendErr != nil {
		return c.sendErr
	}
	c.snaps = append(c.snaps, snap)
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) pingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pings
}

func (c *fakeConn) snapshots() []Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Snapshot(nil), c.snaps...)
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func isDone(s *Session) bool {
	select {
	case <-s.Done():
		return true
	default:
		return false
	}
}

func TestHeartbeatPushesSnapshot(t *testing.T) {
	src := &fakeSource{products: []domproduct.Product{{ID: "p1", Name: "Cheese"}}}
	conn := &fakeConn{}
	sess := NewSession(src, conn, time.Hour, time.Hour, discardLogger())

	sess.Heartbeat()

	snaps := conn.snapshots()
	require.Len(t, snaps, 1)
	require.Len(t, snaps[0].Products, 1)
	require.Equal(t, "Cheese", snaps[0].Products[0].Name)
	require.False(t, isDone(sess))
}

func TestRunPingsOnInterval(t *testing.T) {
	conn := &fakeConn{}
	sess := NewSession(&fakeSource{}, conn, 10*time.Millisecond, time.Hour, discardLogger())

	go sess.Run(context.Background())
	defer sess.Close()

	require.Eventually(t, func() bool {
		return conn.pingCount() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestRunClosesAfterSilence(t *testing.T) {
	conn := &fakeConn{}
	sess := NewSession(&fakeSource{}, conn, 10*time.Millisecond, 30*time.Millisecond, discardLogger())

	go sess.Run(context.Background())

	select {
	case <-sess.Done():
	case <-time.After(time.Second):
		t.Fatal("session did not close after heartbeat silence")
	}
	require.True(t, conn.isClosed())
}

func TestHeartbeatKeepsSessionAlive(t *testing.T) {
	conn := &fakeConn{}
	sess := NewSession(&fakeSource{}, conn, 10*time.Millisecond, 60*time.Millisecond, discardLogger())

	go sess.Run(context.Background())

	stop := time.After(150 * time.Millisecond)
	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()
beat:
	for {
		select {
		case <-stop:
			break beat
		case <-tick.C:
			sess.Heartbeat()
		}
	}
	require.False(t, isDone(sess))

	// Once the client falls silent the timeout takes over.
	select {
	case <-sess.Done():
	case <-time.After(time.Second):
		t.Fatal("session did not close after heartbeats stopped")
	}
}

func TestPingErrorClosesSession(t *testing.T) {
	conn := &fakeConn{pingErr: errors.New("broken pipe")}
	sess := NewSession(&fakeSource{}, conn, 10*time.Millisecond, time.Hour, discardLogger())

	go sess.Run(context.Background())

	select {
	case <-sess.Done():
	case <-time.After(time.Second):
		t.Fatal("session did not close on transport error")
	}
	require.True(t, conn.isClosed())
}

func TestSendErrorClosesSession(t *testing.T) {
	conn := &fakeConn{sendErr: errors.New("broken pipe")}
	sess := NewSession(&fakeSource{}, conn, time.Hour, time.Hour, discardLogger())

	sess.Heartbeat()
	require.True(t, isDone(sess))
	require.True(t, conn.isClosed())
}

func TestSnapshotErrorClosesSession(t *testing.T) {
	conn := &fakeConn{}
	sess := NewSession(&fakeSource{err: errors.New("unavailable")}, conn, time.Hour, time.Hour, discardLogger())

	sess.Heartbeat()
	require.True(t, isDone(sess))
	require.Empty(t, conn.snapshots())
}

func TestRunStopsOnContextCancel(t *testing.T) {
	conn := &fakeConn{}
	sess := NewSession(&fakeSource{}, conn, time.Hour, time.Hour, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sess.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return on context cancel")
	}
	require.True(t, conn.isClosed())
}

func TestCloseIsIdempotent(t *testing.T) {
	conn := &fakeConn{}
	sess := NewSession(&fakeSource{}, conn, time.Hour, time.Hour, discardLogger())

	sess.Close()
	sess.Close()
	require.True(t, conn.isClosed())
}
