// Package jsonfield reads loosely typed JSON trees (as decoded into any) through
// ordered fallback chains of dotted paths.
//
// A path such as "fixtures.loses.total" walks object keys; a numeric segment
// ("response.0.league") indexes into an array. A candidate is "defined" when
// every segment exists, the leaf is not JSON null and, for the typed readers,
// the leaf converts to the requested type. Candidates are tried in order and
// the first defined one wins; callers supply the default for the all-missing
// case so absent data never leaks out as an undefined value.
package jsonfield

import (
	"math"
	"strconv"
	"strings"
)

// Lookup resolves a single dotted path. The empty path selects node itself.
func Lookup(node any, path string) (any, bool) {
	current := node
	if strings.TrimSpace(path) == "" {
		return current, current != nil
	}
	for _, segment := range strings.Split(path, ".") {
		switch typed := current.(type) {
		case map[string]any:
			next, ok := typed[segment]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(typed) {
				return nil, false
			}
			current = typed[idx]
		default:
			return nil, false
		}
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

// Int returns the first candidate that holds an integral number or a numeric string.
func Int(node any, paths ...string) (int, bool) {
	value, ok := Int64(node, paths...)
	return int(value), ok
}

func IntOr(node any, fallback int, paths ...string) int {
	if value, ok := Int(node, paths...); ok {
		return value
	}
	return fallback
}

func NullableInt(node any, paths ...string) *int {
	if value, ok := Int(node, paths...); ok {
		return &value
	}
	return nil
}

func Int64(node any, paths ...string) (int64, bool) {
	for _, path := range paths {
		raw, ok := Lookup(node, path)
		if !ok {
			continue
		}
		if value, ok := asInt64(raw); ok {
			return value, true
		}
	}
	return 0, false
}

// String returns the first candidate holding a non-blank string, trimmed.
func String(node any, paths ...string) (string, bool) {
	for _, path := range paths {
		raw, ok := Lookup(node, path)
		if !ok {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		return value, true
	}
	return "", false
}

func StringOr(node any, fallback string, paths ...string) string {
	if value, ok := String(node, paths...); ok {
		return value
	}
	return fallback
}

func NullableString(node any, paths ...string) *string {
	if value, ok := String(node, paths...); ok {
		return &value
	}
	return nil
}

func NullableBool(node any, paths ...string) *bool {
	for _, path := range paths {
		raw, ok := Lookup(node, path)
		if !ok {
			continue
		}
		if value, ok := raw.(bool); ok {
			return &value
		}
	}
	return nil
}

func BoolOr(node any, fallback bool, paths ...string) bool {
	if value := NullableBool(node, paths...); value != nil {
		return *value
	}
	return fallback
}

// Object returns the first candidate that is a JSON object, or nil.
func Object(node any, paths ...string) map[string]any {
	for _, path := range paths {
		raw, ok := Lookup(node, path)
		if !ok {
			continue
		}
		if value, ok := raw.(map[string]any); ok {
			return value
		}
	}
	return nil
}

// Array returns the first candidate that is a JSON array, or nil.
func Array(node any, paths ...string) []any {
	for _, path := range paths {
		raw, ok := Lookup(node, path)
		if !ok {
			continue
		}
		if value, ok := raw.([]any); ok {
			return value
		}
	}
	return nil
}

// Flatten concatenates one level of nested arrays, preserving order. Non-array
// members are kept as single elements.
func Flatten(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		if nested, ok := item.([]any); ok {
			out = append(out, nested...)
			continue
		}
		if item != nil {
			out = append(out, item)
		}
	}
	return out
}

// FormatNumber renders a JSON number without a trailing ".0" for integral values.
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func asInt64(raw any) (int64, bool) {
	switch typed := raw.(type) {
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) || typed != math.Trunc(typed) {
			return 0, false
		}
		return int64(typed), true
	case float32:
		return asInt64(float64(typed))
	case int:
		return int64(typed), true
	case int64:
		return typed, true
	case string:
		value, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		if err != nil {
			return 0, false
		}
		return value, true
	default:
		return 0, false
	}
}
