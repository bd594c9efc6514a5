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

// Cursor tracks the vertical writing position on the current page.
//
// Y is the distance of the writing position from the bottom edge of the
// page.  Content is added downwards, so Y decreases as blocks are placed.
type Cursor struct {
	Y float64

	// PageNumber is the 1-based number of the current page.
	PageNumber int

	// RecordsOnPage counts the records which started on the current page.
	RecordsOnPage int

	top float64
}

// NewCursor returns a cursor at the top of page pageNo.
// top is the y coordinate of the first line of content.
func NewCursor(top float64, pageNo int) *Cursor {
	return &Cursor{
		Y:          top,
		PageNumber: pageNo,
		top:        top,
	}
}

// HasRoom reports whether a block of the given height fits above the
// bottom margin.
func (c *Cursor) HasRoom(height, bottomMargin float64) bool {
	return c.Y-height >= bottomMargin
}

// Advance moves the cursor down by delta.
func (c *Cursor) Advance(delta float64) {
	c.Y -= delta
}

// NextPage moves the cursor to the top of the following page.
// The record counter is not changed.
func (c *Cursor) NextPage() {
	c.Y = c.top
	c.PageNumber++
}

// Top returns the y coordinate the cursor is reset to on a new page.
func (c *Cursor) Top() float64 {
	return c.top
}
