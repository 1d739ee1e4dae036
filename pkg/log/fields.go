package log

import (
	"maps"
	"slices"
)

const (
	// FieldKeyPrefix is rendered in brackets before the message.
	FieldKeyPrefix = "prefix"
	// FieldKeyReactor names the reactor being built.
	FieldKeyReactor = "reactor"
)

// Fields type, used to pass to `WithFields`.
type Fields map[string]any

// Keys returns the sorted field names, excluding removeKeys.
func (fields Fields) Keys(removeKeys ...string) []string {
	keys := slices.Sorted(maps.Keys(fields))

	return slices.DeleteFunc(keys, func(key string) bool {
		return slices.Contains(removeKeys, key)
	})
}
