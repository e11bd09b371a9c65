package models

import (
	json "github.com/goccy/go-json"
)

// EncodeList and DecodeList are the only serialization boundary for
// persisted collections. Everything written under a meeting namespace
// goes through EncodeList; everything read back goes through
// DecodeList, so a shape mismatch always surfaces as a
// CorruptRecordError instead of leaking half-decoded data upward.

func EncodeList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

func DecodeList[T any](key string, data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &CorruptRecordError{Key: key, Err: err}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
