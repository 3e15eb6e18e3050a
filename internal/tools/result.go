package tools

import (
	"encoding/json"
	"fmt"

	"github.com/reddit-mcp/reddit-mcp-server/internal/models"
)

// Shape tells callers how a successful value is laid out and how a failure
// is reported.
type Shape int

const (
	// ShapeSingle is one record; failures are {"error": "..."}.
	ShapeSingle Shape = iota
	// ShapeCollection is a list of records; failures are [{"error": "..."}].
	ShapeCollection
	// ShapeAction is an acknowledgement; failures are {"error": "..."}.
	ShapeAction
)

func (s Shape) String() string {
	switch s {
	case ShapeSingle:
		return "single"
	case ShapeCollection:
		return "collection"
	case ShapeAction:
		return "action"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Result is the outcome of one operation: either a value or an error,
// never both.
type Result struct {
	Shape Shape
	Value any
	Err   error
}

func success(shape Shape, value any) Result {
	return Result{Shape: shape, Value: value}
}

func failure(shape Shape, err error) Result {
	return Result{Shape: shape, Err: err}
}

// Failed reports whether the operation failed.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Payload returns what the caller receives: the value on success, or the
// error record in the form the shape prescribes.
func (r Result) Payload() any {
	if r.Err == nil {
		return r.Value
	}

	record := models.ErrorRecord{Error: r.Err.Error()}
	if r.Shape == ShapeCollection {
		return []models.ErrorRecord{record}
	}
	return record
}

// JSON encodes the payload.
func (r Result) JSON() (string, error) {
	data, err := json.Marshal(r.Payload())
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data), nil
}
