package utils

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// QueryString returns the trimmed query parameter and whether it was supplied non-empty
func QueryString(r *http.Request, key string) (string, bool) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	return v, v != ""
}

// QueryInt parses an optional non-negative integer parameter, returning def when absent
func QueryInt(r *http.Request, key string, def int) (int, error) {
	raw, ok := QueryString(r, key)
	if !ok {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("'%s' must be an integer, got %q", key, raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("'%s' must not be negative, got %d", key, v)
	}
	return v, nil
}

// QueryFloat parses an optional float parameter. The pointer is nil when absent.
func QueryFloat(r *http.Request, key string) (*float64, error) {
	raw, ok := QueryString(r, key)
	if !ok {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("'%s' must be a number, got %q", key, raw)
	}
	return &v, nil
}
