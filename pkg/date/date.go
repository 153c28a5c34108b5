// Copyright (c) 2026 Book Alchemy. All rights reserved.

/*
Package date provides a calendar date without a time of day.

Values are written as YYYY-MM-DD in JSON and in the database, which keeps
author birth and death dates free of time zone drift.
*/
package date

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the only accepted textual form of a [Date].
const Layout = "2006-01-02"

// Date is a calendar day. The zero value is "no date".
type Date struct {
	t time.Time
}

// New returns the date for the given year, month and day.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse parses s in [Layout] form. 0001-01-01 is the zero date and is rejected.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil || t.IsZero() {
		return Date{}, fmt.Errorf("date: %q is not a valid %s date", s, Layout)
	}
	return Date{t: t}, nil
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Time returns d as midnight UTC.
func (d Date) Time() time.Time { return d.t }

// String returns d in [Layout] form, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(Layout)
}

// MarshalJSON implements [json.Marshaler].
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements [json.Unmarshaler].
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements [driver.Valuer]. The zero date is stored as NULL.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan implements [sql.Scanner]. The SQLite driver hands back either text or
// a time.Time depending on the declared column type.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = New(v.Year(), v.Month(), v.Day())
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("date: cannot scan %T", src)
	}
}

func (d *Date) scanText(s string) error {
	if s == "" {
		*d = Date{}
		return nil
	}
	// Accept a full timestamp as well, keeping only the day.
	if len(s) > len(Layout) {
		s = s[:len(Layout)]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
