package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// NormalizeTime returns t in UTC truncated to microseconds, the finest
// precision both engines keep.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// NullTime converts an optional timestamp to a bindable value.
func NullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: NormalizeTime(*t), Valid: true}
}

// TimePtr converts a scanned nullable timestamp back to an optional value.
func TimePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := NormalizeTime(nt.Time)
	return &t
}

// EncodeJSON marshals v for a JSON column.
func EncodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode json column: %w", err)
	}
	return string(b), nil
}

// DecodeJSON unmarshals a JSON column into dst. An empty value leaves dst untouched.
func DecodeJSON(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode json column: %w", err)
	}
	return nil
}
