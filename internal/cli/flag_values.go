package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/pflag"
)

// enumValue is a pflag.Value restricted to a fixed set of strings, so
// invalid enum flags fail at parse time with the allowed set in the error.
type enumValue struct {
	value   *string
	allowed map[string]bool
}

var _ pflag.Value = (*enumValue)(nil)

func newEnumValue(value *string, allowed map[string]bool) *enumValue {
	return &enumValue{value: value, allowed: allowed}
}

func (e *enumValue) String() string {
	return *e.value
}

func (e *enumValue) Set(s string) error {
	if !e.allowed[s] {
		keys := make([]string, 0, len(e.allowed))
		for k := range e.allowed {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fmt.Errorf("must be one of %s", strings.Join(keys, "|"))
	}
	*e.value = s
	return nil
}

func (e *enumValue) Type() string {
	return "string"
}
