package dto

import (
	"strings"
	"time"
)

// Date accepts both date-only values ("2006-01-02") and RFC 3339
// timestamps in request bodies. A value that parses with no layout does
// not abort the body decode; it marks the Date invalid so validation can
// report it on the field itself.
type Date struct {
	time.Time
	invalid bool
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	d.invalid = true
	return nil
}

// Invalid reports whether the client sent a value no accepted layout
// could parse.
func (d *Date) Invalid() bool { return d.invalid }
