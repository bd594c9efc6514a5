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

// Package recorder implements a [canvas.Canvas] which keeps all drawing
// operations in memory.
//
// A Recorder can be used to inspect the layout of a report without
// producing a PDF file.
package recorder

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"unicode/utf8"

	"seehuhn.de/go/nssdoc/canvas"
	"seehuhn.de/go/nssdoc/layout"
)

// Kind identifies the type of a drawing operation.
type Kind int

// These are the possible values of [Op.Kind].
const (
	Text Kind = iota
	Rect
	Image
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Rect:
		return "rect"
	case Image:
		return "image"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Op is a recorded drawing operation.
type Op struct {
	Kind Kind

	// Box is the area covered by a rectangle or an image.
	// For text, X and Y give the start of the baseline and W the
	// advance width.
	Box layout.Box

	Text string
	Font canvas.Font

	Fill, Stroke color.Color

	// ImageSize is the size of a drawn image, in pixels.
	ImageSize image.Point

	PreserveAspect bool
}

// Recorder is an in-memory [canvas.Canvas].
type Recorder struct {
	Paper layout.Paper

	// Pages holds the operations of every page, in order.
	Pages [][]Op

	// GlyphWidth is the advance width of every character, as a fraction of
	// the font size.
	GlyphWidth float64

	finalized bool
}

var _ canvas.Canvas = (*Recorder)(nil)

var errFinalized = errors.New("canvas already finalized")

// New returns a Recorder with a single, empty page.
func New(paper layout.Paper) *Recorder {
	return &Recorder{
		Paper:      paper,
		Pages:      [][]Op{nil},
		GlyphWidth: 0.5,
	}
}

// PageSize implements the [canvas.Canvas] interface.
func (r *Recorder) PageSize() layout.Paper {
	return r.Paper
}

func (r *Recorder) add(op Op) {
	if r.finalized {
		return
	}
	last := len(r.Pages) - 1
	r.Pages[last] = append(r.Pages[last], op)
}

// DrawText implements the [canvas.Canvas] interface.
func (r *Recorder) DrawText(x, y float64, text string, f canvas.Font, col color.Color) {
	r.add(Op{
		Kind: Text,
		Box:  layout.Box{X: x, Y: y, W: r.TextWidth(text, f)},
		Text: text,
		Font: f,
		Fill: col,
	})
}

// DrawRect implements the [canvas.Canvas] interface.
func (r *Recorder) DrawRect(box layout.Box, fill, stroke color.Color) {
	r.add(Op{Kind: Rect, Box: box, Fill: fill, Stroke: stroke})
}

// DrawImage implements the [canvas.Canvas] interface.
func (r *Recorder) DrawImage(img image.Image, box layout.Box, preserveAspect bool) {
	r.add(Op{
		Kind:           Image,
		Box:            box,
		ImageSize:      img.Bounds().Size(),
		PreserveAspect: preserveAspect,
	})
}

// TextWidth implements the [canvas.Canvas] interface.
// All characters have the same width.
func (r *Recorder) TextWidth(text string, f canvas.Font) float64 {
	return float64(utf8.RuneCountInString(text)) * r.GlyphWidth * f.Size
}

// NewPage implements the [canvas.Canvas] interface.
func (r *Recorder) NewPage() error {
	if r.finalized {
		return errFinalized
	}
	r.Pages = append(r.Pages, nil)
	return nil
}

// Finalize implements the [canvas.Canvas] interface.
func (r *Recorder) Finalize() error {
	if r.finalized {
		return errFinalized
	}
	r.finalized = true
	return nil
}

// Finalized reports whether Finalize has been called.
func (r *Recorder) Finalized() bool {
	return r.finalized
}

// Find returns the operations of the given kind on page pageNo (1-based).
func (r *Recorder) Find(pageNo int, kind Kind) []Op {
	if pageNo < 1 || pageNo > len(r.Pages) {
		return nil
	}
	var res []Op
	for _, op := range r.Pages[pageNo-1] {
		if op.Kind == kind {
			res = append(res, op)
		}
	}
	return res
}

// WriteSummary writes a short, human readable description of every page.
func (r *Recorder) WriteSummary(w io.Writer) error {
	for i, page := range r.Pages {
		var nText, nRect, nImage int
		for _, op := range page {
			switch op.Kind {
			case Text:
				nText++
			case Rect:
				nRect++
			case Image:
				nImage++
			}
		}
		_, err := fmt.Fprintf(w, "page %d: %d text, %d rect, %d image\n",
			i+1, nText, nRect, nImage)
		if err != nil {
			return err
		}
		for _, op := range page {
			if op.Kind != Text {
				continue
			}
			_, err = fmt.Fprintf(w, "  %7.2f %7.2f  %s\n", op.Box.X, op.Box.Y, op.Text)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
