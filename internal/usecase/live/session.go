// Package live implements the per-connection snapshot push channel:
// the server probes the client on a fixed interval and, on every
// liveness reply, pushes the current inventory snapshot. A client that
// stays silent past the timeout is cut off.
package live

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domproduct "example.com/inventory-tracker/internal/domain/product"
)

// Snapshot is the frame pushed to subscribers.
type Snapshot struct {
	Products []domproduct.Product `json:"products"`
}

// Snapshotter supplies the current full catalog.
type Snapshotter interface {
	Snapshot(ctx context.Context) ([]domproduct.Product, error)
}

// Conn is the transport half of a session. Implementations must allow
// Ping and Send to be called from different goroutines.
type Conn interface {
	Ping() error
	Send(snap Snapshot) error
	Close() error
}

// Session tracks liveness for one subscriber. It starts Active; a
// missed heartbeat window, a client close, or any transport error moves
// it to Closed for good. A reconnecting client gets a new Session.
type Session struct {
	src      Snapshotter
	conn     Conn
	interval time.Duration
	timeout  time.Duration
	log      *slog.Logger

	mu            sync.Mutex
	lastHeartbeat time.Time

	closeOnce sync.Once
	done      chan struct{}
}

func NewSession(src Snapshotter, conn Conn, interval, timeout time.Duration, log *slog.Logger) *Session {
	return &Session{
		src:           src,
		conn:          conn,
		interval:      interval,
		timeout:       timeout,
		log:           log,
		lastHeartbeat: time.Now(),
		done:          make(chan struct{}),
	}
}

// Heartbeat records a liveness reply and answers it with a fresh
// snapshot of the whole catalog.
func (s *Session) Heartbeat() {
	s.mu.Lock()
	s.lastHeartbeat = time.Now()
	s.mu.Unlock()

	snap, err := s.src.Snapshot(context.Background())
	if err != nil {
		s.log.Error("snapshot_failed", "error", err)
		s.Close()
		return
	}
	if err := s.conn.Send(Snapshot{Products: snap}); err != nil {
		s.Close()
	}
}

// Run drives the probe timer until the session closes or ctx is done.
func (s *Session) Run(ctx context.Context) {
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			s.Close()
			return
		case <-s.done:
			return
		case <-t.C:
			if s.expired() {
				s.log.Info("live_client_timeout")
				s.Close()
				return
			}
			if err := s.conn.Ping(); err != nil {
				s.Close()
				return
			}
		}
	}
}

func (s *Session) expired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.lastHeartbeat) > s.timeout
}

// Close tears the session down. Safe to call from any goroutine, any
// number of times.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}

// Done is closed once the session has shut down.
func (s *Session) Done() <-chan struct{} { return s.done }
