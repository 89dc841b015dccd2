package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryString(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?ticker=+gme+&empty=", nil)

	v, ok := QueryString(r, "ticker")
	assert.True(t, ok)
	assert.Equal(t, "gme", v)

	_, ok = QueryString(r, "empty")
	assert.False(t, ok)

	_, ok = QueryString(r, "missing")
	assert.False(t, ok)
}

func TestQueryInt(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected int
		wantErr  bool
	}{
		{"absent uses default", "", 6, false},
		{"valid", "?limit=10", 10, false},
		{"zero", "?limit=0", 0, false},
		{"negative", "?limit=-1", 0, true},
		{"not a number", "?limit=ten", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/get_trending"+tt.query, nil)
			v, err := QueryInt(r, "limit", 6)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestQueryFloat(t *testing.T) {
	r := httptest.NewRequest("GET", "/get_trending?threshold=2.5&bad=x", nil)

	v, err := QueryFloat(r, "threshold")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 2.5, *v)

	v, err = QueryFloat(r, "missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = QueryFloat(r, "bad")
	assert.Error(t, err)
}
