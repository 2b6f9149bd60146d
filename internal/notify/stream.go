// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dkotenko/abook/internal/adapter"
	"github.com/dkotenko/abook/internal/config"
	"github.com/dkotenko/abook/internal/logger"
	"github.com/dkotenko/abook/models"
)

// Stream is the websocket consumer of the push-notification feed. It is
// idle until Start is called. On every (re)connect it fetches the full
// folder tree over the RPC channel and feeds it to the handler as a
// refresh event, so a reconnect always recovers from missed notifications
// the same way the initial load does.
type Stream struct {
	cfg     config.Stream
	channel adapter.Channel
	handler Handler
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewStream creates a stream consumer. The channel supplies the bearer
// token for the websocket handshake and the folder tree for post-connect
// recovery.
func NewStream(cfg config.Stream, channel adapter.Channel, handler Handler, log *logger.Logger) *Stream {
	if cfg.ReconnectMin <= 0 {
		cfg.ReconnectMin = config.DefaultReconnectMin
	}
	if cfg.ReconnectMax < cfg.ReconnectMin {
		cfg.ReconnectMax = config.DefaultReconnectMax
	}
	return &Stream{cfg: cfg, channel: channel, handler: handler, logger: log}
}

// Start stops any previously running consumer, then launches a background
// goroutine that keeps the stream connected until ctx is cancelled or Stop
// is called.
func (s *Stream) Start(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		s.run(runCtx)
	}()
}

// Stop cancels the consumer goroutine and blocks until it has fully
// exited. Safe to call when the stream is not running.
func (s *Stream) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *Stream) run(ctx context.Context) {
	backoff := s.cfg.ReconnectMin

	for {
		conn, err := s.dial(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.logger.Warn().Err(err).Dur("retry_in", backoff).Msg("stream dial failed")
			if !sleep(ctx, backoff) {
				return
			}
			backoff = min(backoff*2, s.cfg.ReconnectMax)
			continue
		}
		backoff = s.cfg.ReconnectMin

		s.resync(ctx)
		s.consume(ctx, conn)

		if ctx.Err() != nil {
			return
		}
	}
}

func (s *Stream) dial(ctx context.Context) (*websocket.Conn, error) {
	header := http.Header{}
	if token := s.channel.Token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, s.cfg.WSAddress, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	return conn, err
}

// resync replays the full folder tree through the handler as a refresh
// event. Every delta pushed before this completes is dropped by the
// reconciler's cursor, which is exactly the recovery contract.
func (s *Stream) resync(ctx context.Context) {
	root, err := s.channel.GetFolderTree(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("post-connect resync failed")
		return
	}
	if err := s.handler.Apply(ctx, models.Notification{Refresh: &root}); err != nil {
		s.logger.Error().Err(err).Msg("could not apply resync refresh")
	}
}

// consume reads events off one connection until it breaks or ctx ends.
func (s *Stream) consume(ctx context.Context, conn *websocket.Conn) {
	defer func() { _ = conn.Close() }()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				s.logger.Warn().Err(err).Msg("stream read failed, reconnecting")
			}
			return
		}

		var n models.Notification
		if err := json.Unmarshal(payload, &n); err != nil {
			s.logger.Warn().Err(err).Msg("dropping malformed push event")
			continue
		}
		if n.Empty() {
			continue
		}

		if err := s.handler.Apply(ctx, n); err != nil {
			s.logger.Error().Err(err).Int64("seq", n.Seq).Msg("could not apply push event")
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
