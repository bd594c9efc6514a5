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
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// Box is an axis-aligned rectangle.  (X, Y) is the lower-left corner.
type Box struct {
	X, Y float64
	W, H float64
}

func (b Box) String() string {
	return fmt.Sprintf("[%.2f %.2f %.2f %.2f]", b.X, b.Y, b.W, b.H)
}

// Top returns the y coordinate of the upper edge.
func (b Box) Top() float64 {
	return b.Y + b.H
}

// IsEmpty reports whether the box has no area.
func (b Box) IsEmpty() bool {
	return b.W <= 0 || b.H <= 0
}

// Rect converts the box to a [rect.Rect].
func (b Box) Rect() rect.Rect {
	return rect.Rect{LLx: b.X, LLy: b.Y, URx: b.X + b.W, URy: b.Y + b.H}
}

// Fit returns the largest box with the aspect ratio of a w×h object which
// fits into b.  The result is centred inside b.
// If w or h is not positive, b is returned unchanged.
func (b Box) Fit(w, h float64) Box {
	if w <= 0 || h <= 0 || b.IsEmpty() {
		return b
	}
	scale := min(b.W/w, b.H/h)
	fw := w * scale
	fh := h * scale
	return Box{
		X: b.X + (b.W-fw)/2,
		Y: b.Y + (b.H-fh)/2,
		W: fw,
		H: fh,
	}
}
