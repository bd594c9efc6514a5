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
	"cmp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Filter returns the records whose name contains the given string,
// ignoring case, and whose date equals the given date.  Empty arguments
// match every record.  The order of the records is preserved.
func Filter(records []Record, name string, date Date) []Record {
	name = strings.ToLower(name)
	var res []Record
	for _, r := range records {
		if name != "" && !strings.Contains(strings.ToLower(r.Name), name) {
			continue
		}
		if date != "" && date != r.Date {
			continue
		}
		res = append(res, r)
	}
	return res
}

// SortByDate sorts records by date, oldest first.
// Records with the same date keep their relative order.
func SortByDate(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(a.Date, b.Date)
	})
}

// PhotoPrefix is the directory of the photo store which holds program
// photos.
const PhotoPrefix = "program_photos/"

// PhotoObjectName returns a new, unique object name for an uploaded photo.
func PhotoObjectName(fileName string) string {
	return PhotoPrefix + uuid.NewString() + "_" + fileName
}

// PhotoObjectPath extracts the object name from the public URL of a
// stored photo.  The query string, if any, is removed.  The second return
// value is false if the URL does not refer to the photo store.
func PhotoObjectPath(photoURL string) (string, bool) {
	_, rest, found := strings.Cut(photoURL, PhotoPrefix)
	if !found {
		return "", false
	}
	rest, _, _ = strings.Cut(rest, "?")
	if rest == "" {
		return "", false
	}
	return PhotoPrefix + rest, true
}
