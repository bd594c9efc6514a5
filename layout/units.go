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

// Package layout provides the geometry used to place report elements on a
// page: lengths in PDF points, rectangles, and a cursor which tracks the
// vertical writing position.
//
// All coordinates use the PDF convention: the origin is in the bottom-left
// corner of the page and y increases upwards.  The cursor therefore moves
// towards smaller y values as content is added.
package layout

// Inch is one inch in PDF points.
const Inch = 72.0

// Paper describes the size of a page.
type Paper struct {
	Width, Height float64
}

// Standard paper sizes.
var (
	A4     = Paper{Width: 595.276, Height: 841.890}
	A5     = Paper{Width: 420.945, Height: 595.276}
	Letter = Paper{Width: 612, Height: 792}
)

// Box returns the full page area.
func (p Paper) Box() Box {
	return Box{W: p.Width, H: p.Height}
}
