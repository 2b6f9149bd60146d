package client

import (
	"context"
	"fmt"

	"github.com/dkotenko/abook/internal/adapter"
	"github.com/dkotenko/abook/internal/config"
	"github.com/dkotenko/abook/internal/logger"
	"github.com/dkotenko/abook/internal/mutate"
	"github.com/dkotenko/abook/internal/notify"
	"github.com/dkotenko/abook/internal/reconcile"
	"github.com/dkotenko/abook/internal/replica"
	"github.com/dkotenko/abook/models"
)

// App is the composition root of the client: one replica store, one RPC
// channel, one mutation coordinator, one reconciler and one stream
// consumer, all sharing the same lifetime.
type App struct {
	cfg    *config.ClientConfig
	logger *logger.Logger

	channel     adapter.Channel
	store       *replica.Store
	coordinator *mutate.Coordinator
	reconciler  *reconcile.Reconciler
	stream      *notify.Stream
}

// New wires the application graph from configuration. Notify is the
// user-visible notification sink for mutation outcomes; nil falls back to
// log-only.
func New(cfg *config.ClientConfig, notifySink mutate.Notifier, log *logger.Logger) (*App, error) {
	channel, err := adapter.NewHTTPChannel(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create rpc channel: %w", err)
	}
	if cfg.Adapter.AuthToken != "" {
		channel.SetToken(cfg.Adapter.AuthToken)
	}

	store := replica.NewStore(log)
	coordinator := mutate.NewCoordinator(store, channel, notifySink, log)
	reconciler := reconcile.NewReconciler(store, channel, log)
	stream := notify.NewStream(cfg.Stream, channel, reconciler, log)

	return &App{
		cfg:         cfg,
		logger:      log,
		channel:     channel,
		store:       store,
		coordinator: coordinator,
		reconciler:  reconciler,
		stream:      stream,
	}, nil
}

// Init loads the initial folder snapshot and, when a stream address is
// configured, starts the push-notification consumer. The snapshot goes
// through the same refresh path as a pushed full refresh.
func (a *App) Init(ctx context.Context) error {
	root, err := a.channel.GetFolderTree(ctx)
	if err != nil {
		return fmt.Errorf("initial folder load: %w", err)
	}
	if err := a.reconciler.Apply(ctx, models.Notification{Refresh: &root}); err != nil {
		return fmt.Errorf("apply initial snapshot: %w", err)
	}

	if a.cfg.Stream.WSAddress != "" {
		a.stream.Start(ctx)
	}
	return nil
}

// Teardown stops the stream consumer and resets the sync cursor so a later
// Init starts from a clean slate.
func (a *App) Teardown() {
	a.stream.Stop()
	a.reconciler.Cursor().Reset()
}

// Store exposes the replica for read paths (listings, tree rendering).
func (a *App) Store() *replica.Store { return a.store }

// Coordinator exposes the mutation entry points.
func (a *App) Coordinator() *mutate.Coordinator { return a.coordinator }

// Channel exposes the raw RPC channel, for flows that bypass the replica
// (search, autocomplete, distribution-list expansion).
func (a *App) Channel() adapter.Channel { return a.channel }
