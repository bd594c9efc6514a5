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

package program

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a record file.
type Format int

// These are the supported file formats.
const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "JSON"
	case YAML:
		return "YAML"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf guesses the format of a file from its name.
// Files ending in ".json" are JSON, everything else is read as YAML.
func FormatOf(fname string) Format {
	if strings.EqualFold(filepath.Ext(fname), ".json") {
		return JSON
	}
	return YAML
}

// LoadFile reads records from the named file.
func LoadFile(fname string) ([]Record, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	records, err := Load(fd, FormatOf(fname))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return records, nil
}

// Load reads a list of records.
//
// Every record is validated.  Dates are brought into canonical form,
// records without an ID are assigned a random one, and photos beyond
// the first [MaxPhotos] are dropped.
func Load(r io.Reader, format Format) ([]Record, error) {
	var records []Record
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err := dec.Decode(&records)
		if err != nil {
			return nil, fmt.Errorf("decoding records: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err := dec.Decode(&records)
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("decoding records: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %s", format)
	}

	for i := range records {
		err := records[i].normalize()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return records, nil
}

func (r *Record) normalize() error {
	if len(r.Photos) > MaxPhotos {
		r.Photos = r.Photos[:MaxPhotos]
	}
	if r.Date != "" {
		if d, err := ParseDate(string(r.Date)); err == nil {
			r.Date = d
		}
	}
	r.Hours = Hours(strings.TrimSpace(string(r.Hours)))

	err := r.Validate()
	if err != nil {
		return err
	}

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
