package engine

import (
	"fmt"
	"io"
	"time"
)

// DispatchEvent records metadata about a single dispatched action.
type DispatchEvent struct {
	Action     string
	Success    bool
	ErrorCode  string
	PersistErr string
}

// HydrateEvent records the outcome of loading the persisted snapshot.
type HydrateEvent struct {
	FromStore bool
	Err       string
}

// Observer receives events about engine activity for logging and metrics.
type Observer interface {
	OnDispatch(event DispatchEvent)
	OnHydrate(event HydrateEvent)
}

// LogObserver writes engine events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnDispatch(event DispatchEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "rejected:" + event.ErrorCode
	}
	line := fmt.Sprintf("[%s] dispatch action=%s status=%s", ts, event.Action, status)
	if event.PersistErr != "" {
		line += " persist_err=" + event.PersistErr
	}
	fmt.Fprintln(o.w, line)
}

func (o *LogObserver) OnHydrate(event HydrateEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	source := "default"
	if event.FromStore {
		source = "store"
	}
	line := fmt.Sprintf("[%s] hydrate source=%s", ts, source)
	if event.Err != "" {
		line += " err=" + event.Err
	}
	fmt.Fprintln(o.w, line)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnDispatch(DispatchEvent) {}
func (NoopObserver) OnHydrate(HydrateEvent)   {}
