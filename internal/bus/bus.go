// Package bus fans out state-change notifications to view components and
// external collaborators after each committed transition. One writer (the
// engine), many readers; delivery is synchronous and in subscription order.
package bus

import (
	"sync"

	"github.com/alexanderramin/cadence/internal/domain"
)

// DataUpdate carries only the four scheduling collections, for subscribers
// that do not care about selection/view churn.
type DataUpdate struct {
	Tasks    []domain.Task
	Links    []domain.Link
	Projects []domain.Project
	Sections []domain.Section
}

type stateSub struct {
	id int
	fn func(domain.Snapshot)
}

type dataSub struct {
	id int
	fn func(DataUpdate)
}

// Bus is the notification channel between the engine and its subscribers.
type Bus struct {
	mu        sync.Mutex
	nextID    int
	stateSubs []stateSub
	dataSubs  []dataSub
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{}
}

// Subscribe registers fn for the full "state changed" signal. The returned
// cancel function removes the subscription; cancelling twice is harmless.
func (b *Bus) Subscribe(fn func(domain.Snapshot)) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.stateSubs = append(b.stateSubs, stateSub{id: id, fn: fn})
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.stateSubs {
			if s.id == id {
				b.stateSubs = append(b.stateSubs[:i], b.stateSubs[i+1:]...)
				return
			}
		}
	}
}

// SubscribeData registers fn for the narrower "data updated" signal.
func (b *Bus) SubscribeData(fn func(DataUpdate)) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.dataSubs = append(b.dataSubs, dataSub{id: id, fn: fn})
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.dataSubs {
			if s.id == id {
				b.dataSubs = append(b.dataSubs[:i], b.dataSubs[i+1:]...)
				return
			}
		}
	}
}

// Publish broadcasts the committed snapshot: the full signal to state
// subscribers, then the data signal to data subscribers. Each subscriber
// receives its own cloned snapshot so none can mutate shared state.
func (b *Bus) Publish(s domain.Snapshot) {
	b.mu.Lock()
	stateSubs := make([]stateSub, len(b.stateSubs))
	copy(stateSubs, b.stateSubs)
	dataSubs := make([]dataSub, len(b.dataSubs))
	copy(dataSubs, b.dataSubs)
	b.mu.Unlock()

	for _, sub := range stateSubs {
		sub.fn(s.Clone())
	}
	if len(dataSubs) > 0 {
		for _, sub := range dataSubs {
			c := s.Clone()
			sub.fn(DataUpdate{
				Tasks:    c.Tasks,
				Links:    c.Links,
				Projects: c.Projects,
				Sections: c.Sections,
			})
		}
	}
}
