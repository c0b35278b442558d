package unitview

import (
	"context"
	"sync/atomic"
	"time"

	"vawter.tech/stopper"
)

// Manager orchestrates refreshes and mutations over one Client and Store.
//
// Refreshes are serialized: a refresh requested while another is
// outstanding is rejected with ErrRefreshInFlight rather than queued, so
// two listings can never race on which result lands in the store.
type Manager struct {
	// Client issues systemctl invocations
	Client *Client

	// Store receives each successful snapshot
	Store *Store

	refreshing atomic.Bool
}

// NewManager creates a Manager over the given client and store.
func NewManager(client *Client, store *Store) *Manager {
	return &Manager{Client: client, Store: store}
}

// Refresh performs one synchronous listing and replaces the store snapshot.
// On failure the prior snapshot stays untouched and the error text is
// recorded for display.
func (m *Manager) Refresh(ctx context.Context) error {
	if !m.refreshing.CompareAndSwap(false, true) {
		return ErrRefreshInFlight
	}
	defer m.refreshing.Store(false)

	m.Store.SetLoading(true)
	defer m.Store.SetLoading(false)

	units, err := m.Client.ListUnits(ctx)
	if err != nil {
		m.Store.SetError(err.Error())
		return err
	}
	m.Store.Replace(units)
	return nil
}

// Apply dispatches one mutation and, on success, refreshes the listing.
// Mutation success reports nothing about the resulting state; the
// follow-up listing is the only trustworthy observation.
func (m *Manager) Apply(ctx context.Context, action Action, name string) error {
	var err error
	switch action {
	case ActionStart:
		err = m.Client.Start(ctx, name)
	case ActionStop:
		err = m.Client.Stop(ctx, name)
	case ActionRestart:
		err = m.Client.Restart(ctx, name)
	case ActionReload:
		err = m.Client.Reload(ctx, name)
	default:
		err = &OpError{Action: action, Unit: name, Err: ErrUnsupportedAction}
	}
	if err != nil {
		m.Store.SetError(err.Error())
		return err
	}
	return m.Refresh(ctx)
}

// AutoRefresh re-lists on a fixed interval until the returned stop function
// is called. Ticks that land while a refresh is still in flight are
// dropped.
func (m *Manager) AutoRefresh(ctx context.Context, interval time.Duration) func() error {
	sctx := stopper.WithContext(ctx)
	sctx.Go(func(sctx *stopper.Context) error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-sctx.Stopping():
				return nil
			case <-ticker.C:
				_ = m.Refresh(ctx)
			}
		}
	})
	return func() error {
		sctx.Stop(100 * time.Millisecond)
		return sctx.Wait()
	}
}
