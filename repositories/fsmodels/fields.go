// Package fsmodels adapts loosely-typed Firestore documents into the strict
// models types. Stored documents may predate newer schema fields or carry
// numerics as integers; nothing untyped flows past this layer.
package fsmodels

import "time"

func fieldString(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func fieldBool(data map[string]any, key string) bool {
	if v, ok := data[key].(bool); ok {
		return v
	}
	return false
}

// fieldFloat coerces the integer and float shapes Firestore can hand back for
// a numeric field. The second return reports whether the field was present
// with a usable type.
func fieldFloat(data map[string]any, key string) (float64, bool) {
	switch v := data[key].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}

func fieldTime(data map[string]any, key string) time.Time {
	if v, ok := data[key].(time.Time); ok {
		return v
	}
	return time.Time{}
}
