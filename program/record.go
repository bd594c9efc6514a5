// seehuhn.de/go/nssdoc - paginated PDF reports for community-service programs
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package program holds the records of community-service programs.
//
// A record describes one program: its name, the date it took place, the
// number of service hours, a description and up to [MaxPhotos] photos.
// Records are read from JSON or YAML files and checked with
// [Record.Validate] before they are passed on to the report generator.
package program

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// MaxPhotos is the maximal number of photos attached to a record.
const MaxPhotos = 4

// DateLayout is the format of dates in records.
const DateLayout = "2006-01-02"

// Record describes one program.
type Record struct {
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string   `json:"name" yaml:"name"`
	Date        Date     `json:"date" yaml:"date"`
	Hours       Hours    `json:"hours" yaml:"hours"`
	Description string   `json:"description" yaml:"description"`
	Photos      []string `json:"photos,omitempty" yaml:"photos,omitempty"`
}

// Date is a calendar date in the form YYYY-MM-DD.
type Date string

// ParseDate parses a date.  Single-digit months and days are accepted
// and the result is always in the canonical YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-1-2", strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return Date(t.Format(DateLayout)), nil
}

// Time returns the date as midnight UTC.
func (d Date) Time() (time.Time, error) {
	return time.Parse(DateLayout, string(d))
}

func (d Date) String() string {
	return string(d)
}

// Hours is the number of service hours of a program.
// The value is kept in the form it was given in, so that "2.50" is shown
// as "2.50" in reports.
type Hours string

// Value returns the numeric value of h.
func (h Hours) Value() (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(string(h)), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, strconv.ErrSyntax
	}
	return x, nil
}

func (h Hours) String() string {
	return string(h)
}

// UnmarshalJSON accepts both JSON numbers and strings.
func (h *Hours) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		err := json.Unmarshal(data, &s)
		if err != nil {
			return err
		}
		*h = Hours(s)
		return nil
	}
	var n json.Number
	err := json.Unmarshal(data, &n)
	if err != nil {
		return fmt.Errorf("invalid hours %s", data)
	}
	*h = Hours(n.String())
	return nil
}

// UnmarshalYAML accepts scalar values of any type.
func (h *Hours) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: hours must be a scalar", value.Line)
	}
	*h = Hours(value.Value)
	return nil
}

// UnmarshalYAML accepts unquoted dates, which YAML would otherwise
// read as timestamps.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: date must be a scalar", value.Line)
	}
	*d = Date(value.Value)
	return nil
}

// ValidationError describes a record which failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (err *ValidationError) Error() string {
	return err.Field + ": " + err.Reason
}

// Validate checks that all required fields are present and well-formed.
func (r *Record) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Reason: "missing required field"}
	}
	if r.Date == "" {
		return &ValidationError{Field: "date", Reason: "missing required field"}
	}
	if _, err := r.Date.Time(); err != nil {
		return &ValidationError{Field: "date", Reason: "invalid date format, use YYYY-MM-DD"}
	}
	if r.Hours == "" {
		return &ValidationError{Field: "hours", Reason: "missing required field"}
	}
	x, err := r.Hours.Value()
	if err != nil {
		return &ValidationError{Field: "hours", Reason: "invalid hours format"}
	}
	if x <= 0 {
		return &ValidationError{Field: "hours", Reason: "hours must be positive"}
	}
	if strings.TrimSpace(r.Description) == "" {
		return &ValidationError{Field: "description", Reason: "missing required field"}
	}
	if len(r.Photos) > MaxPhotos {
		return &ValidationError{
			Field:  "photos",
			Reason: fmt.Sprintf("%d photos given, at most %d allowed", len(r.Photos), MaxPhotos),
		}
	}
	return nil
}
