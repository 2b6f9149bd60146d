// Package notify maintains the out-of-band push-notification stream: a
// websocket connection that delivers server-side change events. The stream
// owns the connection lifecycle (dial, read loop, reconnect with backoff)
// and hands every decoded event to a Handler; it never interprets events
// itself.
package notify

import (
	"context"

	"github.com/dkotenko/abook/models"
)

// Handler consumes decoded push events in arrival order. The reconciler
// satisfies this interface.
type Handler interface {
	Apply(ctx context.Context, n models.Notification) error
}
