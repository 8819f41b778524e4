package common

import (
	"encoding/json"
	"fmt"
)

// EncodeValue renders an entry field value into the byte representation
// stored by backends without a native document model (sqlite, leveldb).
// Values must be representable in JSON.
func EncodeValue(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode value; %w", err)
	}
	return data, nil
}

// DecodeValue is the inverse of EncodeValue. Numeric values decode as
// float64 regardless of the type they were written with.
func DecodeValue(data []byte) (any, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("failed to decode value; %w", err)
	}
	return value, nil
}
