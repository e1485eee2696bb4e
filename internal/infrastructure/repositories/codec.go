package repositories

import (
	"encoding/json"

	"github.com/google/uuid"
)

// String-slice and similar list columns are stored as JSON text, the same
// way across every table. Empty lists round-trip as "".

func marshalStrings(values []string) string {
	if len(values) == 0 {
		return ""
	}
	b, err := json.Marshal(values)
	if err != nil {
		return ""
	}
	return string(b)
}

func unmarshalStrings(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}

func marshalInts(values []int) string {
	if len(values) == 0 {
		return ""
	}
	b, err := json.Marshal(values)
	if err != nil {
		return ""
	}
	return string(b)
}

func unmarshalInts(raw string) []int {
	if raw == "" {
		return nil
	}
	var values []int
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}

func marshalUUIDs(values []uuid.UUID) string {
	if len(values) == 0 {
		return ""
	}
	b, err := json.Marshal(values)
	if err != nil {
		return ""
	}
	return string(b)
}

func unmarshalUUIDs(raw string) []uuid.UUID {
	if raw == "" {
		return nil
	}
	var values []uuid.UUID
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}
