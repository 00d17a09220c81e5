package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogObserver_Dispatch(t *testing.T) {
	var sb strings.Builder
	o := NewLogObserver(&sb)

	o.OnDispatch(DispatchEvent{Action: "ADD_TASK", Success: true})
	o.OnDispatch(DispatchEvent{Action: "ADD_TASK", ErrorCode: "invalid_date_range"})
	o.OnDispatch(DispatchEvent{Action: "DELETE_TASK", Success: true, PersistErr: "quota exceeded"})

	out := sb.String()
	assert.Contains(t, out, "action=ADD_TASK status=ok")
	assert.Contains(t, out, "status=rejected:invalid_date_range")
	assert.Contains(t, out, "persist_err=quota exceeded")
}

func TestLogObserver_Hydrate(t *testing.T) {
	var sb strings.Builder
	o := NewLogObserver(&sb)

	o.OnHydrate(HydrateEvent{FromStore: true})
	o.OnHydrate(HydrateEvent{Err: "decoding snapshot: unexpected end of JSON input"})

	out := sb.String()
	assert.Contains(t, out, "source=store")
	assert.Contains(t, out, "source=default")
	assert.Contains(t, out, "err=decoding snapshot")
}
