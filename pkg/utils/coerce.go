package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders a JSON decoded value as text. nil becomes "".
func String(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// SplitList splits a comma separated list, dropping blank tokens.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// StringList converts every element of a JSON array to text, keeping order.
func StringList(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, String(v))
	}

	return out
}

// ToList accepts either an array or a comma separated string.
func ToList(v any) []string {
	switch val := v.(type) {
	case nil:
		return []string{}
	case []any:
		return StringList(val)
	case []string:
		return append([]string{}, val...)
	default:
		return SplitList(String(val))
	}
}

// WrapScalar returns arrays element-wise and wraps any other non-empty value
// in a one element list.
func WrapScalar(v any) []string {
	switch val := v.(type) {
	case nil:
		return []string{}
	case []any:
		return StringList(val)
	case []string:
		return append([]string{}, val...)
	default:
		s := String(val)
		if s == "" {
			return []string{}
		}

		return []string{s}
	}
}

// AnyList is the reverse of StringList.
func AnyList(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}

	return out
}
