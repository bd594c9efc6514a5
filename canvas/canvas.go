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

// Package canvas defines the drawing surface used to render reports.
//
// A [Canvas] is a sequence of pages which can only be appended to.  Drawing
// operations always apply to the last page.  Coordinates are in PDF points,
// with the origin in the bottom-left corner of the page.
//
// Implementations are found in the sub-packages: [pdfcanvas] writes a PDF
// file, [recorder] keeps the drawing operations in memory.
//
// [pdfcanvas]: seehuhn.de/go/nssdoc/canvas/pdfcanvas
// [recorder]: seehuhn.de/go/nssdoc/canvas/recorder
package canvas

import (
	"image"
	"image/color"

	"seehuhn.de/go/nssdoc/layout"
)

// Face selects one of the type faces of a canvas.
type Face int

// These are the supported faces.
const (
	Regular Face = iota
	Bold
)

func (f Face) String() string {
	switch f {
	case Regular:
		return "regular"
	case Bold:
		return "bold"
	default:
		return "unknown"
	}
}

// Font is a face at a given size.
type Font struct {
	Face Face
	Size float64
}

// Canvas is a paged drawing surface.
//
// The drawing methods do not return errors.  Implementations keep the first
// error which occurs and report it from [Canvas.NewPage] or
// [Canvas.Finalize].
type Canvas interface {
	// PageSize returns the size of all pages.
	PageSize() layout.Paper

	// DrawText shows a single line of text.  The baseline of the text starts
	// at (x, y).
	DrawText(x, y float64, text string, f Font, col color.Color)

	// DrawRect draws a rectangle.  If fill is non-nil, the rectangle is
	// filled.  If stroke is non-nil, the outline is drawn.
	DrawRect(box layout.Box, fill, stroke color.Color)

	// DrawImage draws img into box.  If preserveAspect is true, the image is
	// scaled uniformly and centred in box.
	DrawImage(img image.Image, box layout.Box, preserveAspect bool)

	// TextWidth returns the advance width of text in the given font.
	TextWidth(text string, f Font) float64

	// NewPage finishes the current page and starts a new one.
	NewPage() error

	// Finalize finishes the last page and completes the document.
	// No methods may be called after Finalize.
	Finalize() error
}
