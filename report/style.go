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

package report

import (
	"image/color"

	"seehuhn.de/go/nssdoc/canvas"
	"seehuhn.de/go/nssdoc/layout"
)

// Style collects the geometry, fonts and colours of a report.
// All lengths are in PDF points.
type Style struct {
	Margin float64 // left, right and bottom margin, and distance of content from the page top

	// cards
	RowHeight      float64
	TextInset      float64 // horizontal distance of text from the cell border
	BaselineDrop   float64 // distance of the baseline below the row top
	CardReserve    float64 // space needed above the margin to start a card
	CardGap        float64
	DatePart       float64 // fraction of the row width used by the date cell
	DescPadding    float64 // added to the height of the wrapped description
	TitleFont      canvas.Font
	RowFont        canvas.Font
	DescFont       canvas.Font
	DescLeading    float64
	RecordGap      float64 // between the end of one record and the next card
	RecordsPerPage int

	// photo grid
	GridColumns int
	CellWidth   float64
	CellHeight  float64
	CellHGap    float64
	CellVGap    float64

	// cover page
	LogoSize         float64
	LogoGap          float64
	LogoDrop         float64 // distance of the logo bottom edge below the page top
	CoverTitleDrop   float64 // distance of the title baseline below the logo bottom
	CoverTitleFont   canvas.Font
	PlaceholderPixel int

	// footer
	FooterFont    canvas.Font
	FooterTextY   float64
	FooterNumberY float64

	Primary     color.Color
	HeaderFill  color.Color
	Border      color.Color
	Text        color.Color
	FooterColor color.Color
}

// DefaultStyle returns the standard report layout.
func DefaultStyle() *Style {
	const in = layout.Inch
	return &Style{
		Margin: in,

		RowHeight:      0.4 * in,
		TextInset:      0.1 * in,
		BaselineDrop:   0.3 * in,
		CardReserve:    2 * in,
		CardGap:        0.2 * in,
		DatePart:       0.6,
		DescPadding:    0.2 * in,
		TitleFont:      canvas.Font{Face: canvas.Bold, Size: 12},
		RowFont:        canvas.Font{Face: canvas.Regular, Size: 11},
		DescFont:       canvas.Font{Face: canvas.Regular, Size: 11},
		DescLeading:    14,
		RecordGap:      0.3 * in,
		RecordsPerPage: 2,

		GridColumns: 2,
		CellWidth:   2.5 * in,
		CellHeight:  2 * in,
		CellHGap:    0.3 * in,
		CellVGap:    0.2 * in,

		LogoSize:         1.5 * in,
		LogoGap:          0.5 * in,
		LogoDrop:         2.5 * in,
		CoverTitleDrop:   2 * in,
		CoverTitleFont:   canvas.Font{Face: canvas.Bold, Size: 24},
		PlaceholderPixel: 200,

		FooterFont:    canvas.Font{Face: canvas.Regular, Size: 9},
		FooterTextY:   0.5 * in,
		FooterNumberY: 0.25 * in,

		Primary:     color.RGBA{R: 0x1a, G: 0x23, B: 0x7e, A: 0xff},
		HeaderFill:  color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff},
		Border:      color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
		Text:        color.Black,
		FooterColor: color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	}
}

// GridHeight returns the vertical space taken by a photo grid with n
// photos, not counting the gap below the grid.
func (s *Style) GridHeight(n int) float64 {
	if n <= 0 {
		return 0
	}
	rows := (n + s.GridColumns - 1) / s.GridColumns
	return float64(rows) * (s.CellHeight + s.CellVGap)
}

// Cell returns the box of grid cell (row, col) for a grid whose top edge
// is at y.
func (s *Style) Cell(y float64, row, col int) layout.Box {
	return layout.Box{
		X: s.Margin + float64(col)*(s.CellWidth+s.CellHGap),
		Y: y - float64(row)*(s.CellHeight+s.CellVGap) - s.CellHeight,
		W: s.CellWidth,
		H: s.CellHeight,
	}
}
