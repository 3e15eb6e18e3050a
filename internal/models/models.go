package models

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
)

const (
	// DeletedAuthor replaces a missing post or comment author.
	DeletedAuthor = "[deleted]"

	// SummaryLength is the rune length summaries cut bodies to.
	SummaryLength = 200

	siteURL = "https://reddit.com"
)

// Ack is the result of an operation that only changes remote state
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewAck builds a successful acknowledgement.
func NewAck(format string, args ...any) *Ack {
	return &Ack{Success: true, Message: fmt.Sprintf(format, args...)}
}

// ErrorRecord is the failure shape of every operation
type ErrorRecord struct {
	Error string `json:"error"`
}

func authorOrDeleted(author string) string {
	if author == "" {
		return DeletedAuthor
	}
	return author
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func permalink(path string) string {
	return siteURL + path
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// summaryText is the truncated body of a summary, or nil when empty.
func summaryText(s string) *string {
	if s == "" {
		return nil
	}
	t := truncate(s, SummaryLength)
	return &t
}

// editedValue renders edited as false or the timestamp of the last edit.
func editedValue(e reddit.Edited) any {
	if !e.IsEdited {
		return false
	}
	if e.Timestamp == 0 {
		return true
	}
	return e.Timestamp
}

// Generic converts loosely typed remote payloads into JSON-safe values.
// Lists and maps are converted element-wise, primitives pass through and
// everything else is reduced to its string form. It never panics.
func Generic(v any) (out any) {
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("%v", v)
		}
	}()

	switch val := v.(type) {
	case nil:
		return nil
	case string, bool, float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return val
	case []any:
		list := make([]any, len(val))
		for i, item := range val {
			list[i] = Generic(item)
		}
		return list
	case map[string]any:
		m := make(map[string]any, len(val))
		for key, item := range val {
			m[key] = Generic(item)
		}
		return m
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		list := make([]any, rv.Len())
		for i := range list {
			list[i] = Generic(rv.Index(i).Interface())
		}
		return list
	case reflect.Map:
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[fmt.Sprint(iter.Key().Interface())] = Generic(iter.Value().Interface())
		}
		return m
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return Generic(rv.Elem().Interface())
	}

	return fmt.Sprintf("%v", v)
}
