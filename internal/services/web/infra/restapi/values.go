package restapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ID is a backend entity identifier. The backend emits numeric ids; the web
// tier only ever echoes them back, so they are carried as text.
type ID string

// String returns the trimmed identifier.
func (id ID) String() string {
	return strings.TrimSpace(string(id))
}

// IsZero reports whether the identifier is empty.
func (id ID) IsZero() bool {
	return id.String() == ""
}

// UnmarshalJSON accepts numbers, strings, and null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*id = ID(strings.TrimSpace(raw))
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*id = ID(number.String())
	return nil
}

// MarshalJSON writes numeric ids as JSON numbers and everything else as a
// string; an empty id is null.
func (id ID) MarshalJSON() ([]byte, error) {
	value := id.String()
	if value == "" {
		return []byte("null"), nil
	}
	if isDigits(value) {
		return []byte(value), nil
	}
	return json.Marshal(value)
}

func isDigits(value string) bool {
	for i, r := range value {
		if r == '-' && i == 0 && len(value) > 1 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return value != ""
}

// Timestamp is a backend date-time. The backend serializes local date-times
// without a zone; those are read as UTC.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses one of the date-time shapes the backend emits.
func ParseTimestamp(raw string) (Timestamp, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Timestamp{}, nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return Timestamp{Time: parsed.UTC()}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("parse timestamp %q: unsupported layout", raw)
}

// UnmarshalJSON accepts ISO strings, null, and epoch milliseconds.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	if data[0] != '"' {
		var millis int64
		if err := json.Unmarshal(data, &millis); err != nil {
			return fmt.Errorf("decode timestamp: %w", err)
		}
		*t = Timestamp{Time: time.UnixMilli(millis).UTC()}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode timestamp: %w", err)
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON writes the timestamp as RFC 3339, or null when zero.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}
