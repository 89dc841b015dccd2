package store

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// encodeDocument serializes a document payload. Map keys are sorted so equal
// documents always produce equal blobs.
func encodeDocument(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeFields(data []byte) (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	if err := msgpack.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return fields, nil
}

func decodeValue(data []byte) (interface{}, error) {
	var v interface{}
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return v, nil
}
