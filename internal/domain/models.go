// Package domain provides core domain models and types.
package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Field names shared between the document store and the API
const (
	FieldTicker       = "ticker"
	FieldAHITimestamp = "AHI_timestamp"
	FieldTimestamp    = "timestamp"
	FieldSortedBy     = "sorted_by"
	FieldHistory      = "history"
)

// NormalizeTicker returns the canonical (trimmed, uppercase) form of a ticker symbol
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// TickerRecord is one ticker's metrics document.
// Fields holds metric name -> numeric or textual value exactly as stored.
type TickerRecord struct {
	UpdatedAt time.Time              `json:"updated_at"`
	Ticker    string                 `json:"ticker"`
	Fields    map[string]interface{} `json:"fields"`
}

// NewTickerRecord builds a record keyed by the canonical ticker
func NewTickerRecord(ticker string, fields map[string]interface{}, updatedAt time.Time) TickerRecord {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	return TickerRecord{
		UpdatedAt: updatedAt,
		Ticker:    NormalizeTicker(ticker),
		Fields:    fields,
	}
}

// Clone returns a deep copy so callers never share mutable state with a cache or store
func (r TickerRecord) Clone() TickerRecord {
	out := r
	if r.Fields != nil {
		out.Fields = cloneMap(r.Fields)
	}
	return out
}

// Info returns the document as clients see it: a copy of the fields
func (r TickerRecord) Info() map[string]interface{} {
	if r.Fields == nil {
		return map[string]interface{}{}
	}
	return cloneMap(r.Fields)
}

// Value returns the numeric value of a metric.
// ok is false when the metric is missing or not numeric.
func (r TickerRecord) Value(m Metric) (float64, bool) {
	return r.Number(string(m))
}

// Number returns the numeric value of an arbitrary field
func (r TickerRecord) Number(field string) (float64, bool) {
	v, ok := r.Fields[field]
	if !ok {
		return 0, false
	}
	return toFloat(v)
}

// Truthy reports whether a metric holds a usable non-zero number
func (r TickerRecord) Truthy(m Metric) bool {
	v, ok := r.Value(m)
	return ok && v != 0
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func cloneMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return cloneMap(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
