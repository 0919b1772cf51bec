package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp is stored as RFC3339 UTC text. Embedding time.Time keeps the
// JSON representation a plain RFC3339 string for the frontend.
type Timestamp struct {
	time.Time
}

// Now returns the current time truncated to the stored precision.
func Now() Timestamp {
	return Timestamp{time.Now().UTC().Truncate(time.Second)}
}

func (t Timestamp) Value() (driver.Value, error) {
	return t.UTC().Format(time.RFC3339), nil
}

func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	}
	return fmt.Errorf("timestamp: cannot scan %T", src)
}

func (t *Timestamp) parse(s string) error {
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("timestamp: parse %q: %w", s, err)
	}
	t.Time = parsed.UTC()
	return nil
}

// StringList is stored as a JSON array in a TEXT column. A nil list maps to
// NULL and round-trips back as nil; an empty list round-trips as empty.
// Callers never see the serialized form.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("encode string list: %w", err)
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		return l.decode([]byte(v))
	case []byte:
		return l.decode(v)
	}
	return fmt.Errorf("string list: cannot scan %T", src)
}

func (l *StringList) decode(b []byte) error {
	if len(b) == 0 {
		*l = nil
		return nil
	}
	if err := json.Unmarshal(b, l); err != nil {
		return fmt.Errorf("decode string list: %w", err)
	}
	return nil
}
