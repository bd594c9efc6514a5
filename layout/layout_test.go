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

package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
)

func TestFit(t *testing.T) {
	cell := Box{X: 72, Y: 100, W: 180, H: 144}
	cases := []struct {
		w, h float64
		want Box
	}{
		{180, 144, cell},
		{360, 288, cell},
		{100, 100, Box{X: 90, Y: 100, W: 144, H: 144}},
		{400, 100, Box{X: 72, Y: 149.5, W: 180, H: 45}},
		{0, 10, cell},
	}
	for _, test := range cases {
		got := cell.Fit(test.w, test.h)
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("Fit(%g, %g): %s", test.w, test.h, d)
		}
	}
}

func TestBoxRect(t *testing.T) {
	b := Box{X: 1, Y: 2, W: 3, H: 4}
	want := rect.Rect{LLx: 1, LLy: 2, URx: 4, URy: 6}
	if got := b.Rect(); got != want {
		t.Errorf("Rect() = %v, want %v", got, want)
	}
	if b.Top() != 6 {
		t.Errorf("wrong top edge %g", b.Top())
	}

	page := Letter.Box().Rect()
	if page.Dx() != 612 || page.Dy() != 792 || page.LLx != 0 || page.LLy != 0 {
		t.Errorf("wrong page rectangle %v", page)
	}
}

func TestCursor(t *testing.T) {
	top := A4.Height - Inch
	c := NewCursor(top, 2)

	if !c.HasRoom(top-Inch, Inch) {
		t.Error("block reaching exactly the margin must fit")
	}
	if c.HasRoom(top-Inch+0.01, Inch) {
		t.Error("block crossing the margin must not fit")
	}

	c.Advance(100)
	c.RecordsOnPage = 2
	if c.Y != top-100 {
		t.Errorf("Y = %g, want %g", c.Y, top-100)
	}

	c.NextPage()
	if c.Y != top || c.PageNumber != 3 {
		t.Errorf("after NextPage: Y=%g page=%d", c.Y, c.PageNumber)
	}
	if c.RecordsOnPage != 2 {
		t.Error("NextPage must not reset the record counter")
	}
}
