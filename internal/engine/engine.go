// Package engine owns the authoritative snapshot and drives the
// transition loop: apply an action, persist the result, notify
// subscribers. All mutation funnels through Dispatch; callers must treat
// every snapshot they hold as read-only and use only the value returned
// from (or broadcast after) a dispatch.
package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alexanderramin/cadence/internal/bus"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/state"
	"github.com/alexanderramin/cadence/internal/store"
)

// Engine is the single writer over the snapshot.
type Engine struct {
	// dispatchMu serializes the whole apply→persist→notify pipeline so
	// overlapping dispatches cannot persist or broadcast out of commit
	// order. mu guards current alone, keeping Current callable from
	// bus subscribers while a publish is in flight.
	dispatchMu sync.Mutex
	mu         sync.Mutex
	current    domain.Snapshot

	store store.SnapshotStore
	bus   *bus.Bus
	obs   Observer
	now   func() time.Time
}

// New creates an Engine over the given store and bus. A nil observer
// defaults to NoopObserver. The engine starts on the default snapshot;
// call Hydrate to load persisted state.
func New(st store.SnapshotStore, b *bus.Bus, obs Observer) *Engine {
	if obs == nil {
		obs = NoopObserver{}
	}
	e := &Engine{
		store: st,
		bus:   b,
		obs:   obs,
		now:   time.Now,
	}
	e.current = domain.DefaultSnapshot(e.now())
	return e
}

// Hydrate loads the persisted snapshot. A missing or unreadable snapshot
// falls back to the default; hydration never fails startup.
func (e *Engine) Hydrate(ctx context.Context) domain.Snapshot {
	e.dispatchMu.Lock()
	defer e.dispatchMu.Unlock()
	e.mu.Lock()
	defer e.mu.Unlock()

	loaded, err := e.store.Load(ctx)
	switch {
	case err == nil:
		e.current = loaded
		e.obs.OnHydrate(HydrateEvent{FromStore: true})
	case errors.Is(err, store.ErrNoSnapshot):
		e.current = domain.DefaultSnapshot(e.now())
		e.obs.OnHydrate(HydrateEvent{})
	default:
		// Corrupt or unreadable snapshot: keep the session available
		// on the default state.
		e.current = domain.DefaultSnapshot(e.now())
		e.obs.OnHydrate(HydrateEvent{Err: err.Error()})
	}
	return e.current.Clone()
}

// Dispatch applies one action. On a validation failure the snapshot is
// unchanged and the error is returned for the caller to surface. On
// success the new snapshot is persisted (write failures are observed and
// logged, never rolled back) and broadcast on the bus. Dispatches are
// fully serialized: one action's persist and broadcast complete before
// the next action starts, so the store always holds the latest commit.
func (e *Engine) Dispatch(ctx context.Context, a state.Action) (domain.Snapshot, error) {
	e.dispatchMu.Lock()
	defer e.dispatchMu.Unlock()

	e.mu.Lock()
	next, err := state.Apply(e.current, a)
	if err != nil {
		unchanged := e.current.Clone()
		e.mu.Unlock()
		event := DispatchEvent{Action: a.Name()}
		var verr *state.ValidationError
		if errors.As(err, &verr) {
			event.ErrorCode = string(verr.Code)
		}
		e.obs.OnDispatch(event)
		return unchanged, err
	}
	e.current = next
	e.mu.Unlock()

	event := DispatchEvent{Action: a.Name(), Success: true}
	if perr := e.store.Save(ctx, next); perr != nil {
		// In-memory state stays authoritative for the session; the
		// worst case is loss of durability.
		event.PersistErr = perr.Error()
	}
	e.obs.OnDispatch(event)

	e.bus.Publish(next)
	return next.Clone(), nil
}

// Current returns a copy of the latest committed snapshot.
func (e *Engine) Current() domain.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current.Clone()
}

// Subscribe registers for the full "state changed" signal.
func (e *Engine) Subscribe(fn func(domain.Snapshot)) (cancel func()) {
	return e.bus.Subscribe(fn)
}

// SubscribeData registers for the narrower "data updated" signal.
func (e *Engine) SubscribeData(fn func(bus.DataUpdate)) (cancel func()) {
	return e.bus.SubscribeData(fn)
}
