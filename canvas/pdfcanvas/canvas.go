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

// Package pdfcanvas implements [canvas.Canvas] on top of seehuhn.de/go/pdf.
//
// Text is set in Helvetica and Helvetica-Bold, unless a TrueType or OpenType
// font file is given for the regular face.  Images are embedded as
// Flate-compressed DeviceRGB image XObjects.  When the document is finalized,
// the document information dictionary and an XMP metadata stream are
// written.
package pdfcanvas

import (
	"errors"
	"fmt"
	"image"
	gocolor "image/color"
	"io"
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/embed"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/pdf/graphics/color"
	pdfimage "seehuhn.de/go/pdf/graphics/image"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/nssdoc/canvas"
	"seehuhn.de/go/nssdoc/layout"
)

// Options control the output file.
type Options struct {
	Paper layout.Paper

	// RegularFont, if set, is the file name of a TrueType or OpenType font
	// used for the regular face.
	RegularFont string

	// Language is the BCP 47 tag of the document language.
	Language string

	// Document information.
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string

	// Passwords for encrypting the file.  The file is only encrypted if
	// at least one of the passwords is set.
	UserPassword  string
	OwnerPassword string

	// HumanReadable makes the PDF file easier to inspect, at the cost of
	// a larger file.
	HumanReadable bool

	// Now is used for the creation date.  If zero, time.Now is used.
	Now time.Time
}

// Producer is recorded in the metadata of every file.
const Producer = "seehuhn.de/go/nssdoc"

var (
	errClosed  = errors.New("pdfcanvas: document already finalized")
	errAborted = errors.New("pdfcanvas: document aborted")
)

// Canvas writes a PDF file.
type Canvas struct {
	doc   *document.MultiPage
	page  *document.Page
	paper layout.Paper
	fonts [2]font.Layouter
	opt   Options
	lang  language.Tag
	err   error
}

var _ canvas.Canvas = (*Canvas)(nil)

// New starts a PDF document which is written to w.
// The first page is open for drawing when New returns.
func New(w io.Writer, opt *Options) (*Canvas, error) {
	if opt == nil {
		opt = &Options{}
	}
	paper := opt.Paper
	if paper.Width <= 0 || paper.Height <= 0 {
		paper = layout.A4
	}

	lang := language.English
	if opt.Language != "" {
		tag, err := language.Parse(opt.Language)
		if err != nil {
			return nil, fmt.Errorf("invalid document language %q: %w", opt.Language, err)
		}
		lang = tag
	}

	regular, err := loadRegular(opt.RegularFont, lang)
	if err != nil {
		return nil, err
	}

	wopt := &pdf.WriterOptions{
		UserPassword:  opt.UserPassword,
		OwnerPassword: opt.OwnerPassword,
		HumanReadable: opt.HumanReadable,
	}
	pageRect := paper.Box().Rect()
	mediaBox := &pdf.Rectangle{
		LLx: pageRect.LLx,
		LLy: pageRect.LLy,
		URx: pageRect.URx,
		URy: pageRect.URy,
	}
	doc, err := document.WriteMultiPage(w, mediaBox, pdf.V1_7, wopt)
	if err != nil {
		return nil, err
	}

	c := &Canvas{
		doc:   doc,
		paper: paper,
		fonts: [2]font.Layouter{regular, standard.HelveticaBold.New()},
		opt:   *opt,
		lang:  lang,
	}
	c.page = doc.AddPage()
	return c, nil
}

func loadRegular(fname string, lang language.Tag) (font.Layouter, error) {
	if fname == "" {
		return standard.Helvetica.New(), nil
	}
	info, err := sfnt.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("loading font %q: %w", fname, err)
	}
	F, err := embed.OpenTypeFont(info, &embed.Options{Language: lang})
	if err != nil {
		return nil, fmt.Errorf("embedding font %q: %w", fname, err)
	}
	return F, nil
}

// PageSize implements the [canvas.Canvas] interface.
func (c *Canvas) PageSize() layout.Paper {
	return c.paper
}

func (c *Canvas) font(f canvas.Font) font.Layouter {
	if f.Face == canvas.Bold {
		return c.fonts[1]
	}
	return c.fonts[0]
}

// DrawText implements the [canvas.Canvas] interface.
func (c *Canvas) DrawText(x, y float64, text string, f canvas.Font, col gocolor.Color) {
	if c.page == nil || text == "" {
		return
	}
	p := c.page
	p.PushGraphicsState()
	p.SetFillColor(deviceRGB(col))
	p.TextSetFont(c.font(f), f.Size)
	p.TextBegin()
	p.TextFirstLine(x, y)
	p.TextShow(text)
	p.TextEnd()
	p.PopGraphicsState()
}

// DrawRect implements the [canvas.Canvas] interface.
func (c *Canvas) DrawRect(box layout.Box, fill, stroke gocolor.Color) {
	if c.page == nil || (fill == nil && stroke == nil) {
		return
	}
	p := c.page
	p.PushGraphicsState()
	if fill != nil {
		p.SetFillColor(deviceRGB(fill))
	}
	if stroke != nil {
		p.SetStrokeColor(deviceRGB(stroke))
		p.SetLineWidth(1)
	}
	r := box.Rect()
	p.Rectangle(r.LLx, r.LLy, r.Dx(), r.Dy())
	switch {
	case fill != nil && stroke != nil:
		p.FillAndStroke()
	case fill != nil:
		p.Fill()
	default:
		p.Stroke()
	}
	p.PopGraphicsState()
}

// DrawImage implements the [canvas.Canvas] interface.
func (c *Canvas) DrawImage(img image.Image, box layout.Box, preserveAspect bool) {
	if c.page == nil {
		return
	}
	size := img.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return
	}
	if preserveAspect {
		box = box.Fit(float64(size.X), float64(size.Y))
	}

	r := box.Rect()
	p := c.page
	p.PushGraphicsState()
	p.Transform(matrix.Matrix{r.Dx(), 0, 0, r.Dy(), r.LLx, r.LLy})
	p.DrawXObject(pdfimage.FromImage(img, color.SpaceDeviceRGB, 8))
	p.PopGraphicsState()
}

// TextWidth implements the [canvas.Canvas] interface.
func (c *Canvas) TextWidth(text string, f canvas.Font) float64 {
	if text == "" {
		return 0
	}
	return c.font(f).Layout(nil, f.Size, text).TotalWidth()
}

// NewPage implements the [canvas.Canvas] interface.
func (c *Canvas) NewPage() error {
	if c.err != nil {
		return c.err
	}
	if c.page == nil {
		return errClosed
	}
	err := c.page.Close()
	if err != nil {
		c.err = err
		return err
	}
	c.page = c.doc.AddPage()
	return nil
}

// Finalize implements the [canvas.Canvas] interface.
// The document is written to the underlying writer.
func (c *Canvas) Finalize() error {
	if c.err != nil {
		return c.err
	}
	if c.page == nil {
		return errClosed
	}

	err := c.page.Close()
	c.page = nil
	if err != nil {
		c.err = err
		return err
	}

	err = c.writeMetadata()
	if err != nil {
		c.err = err
		return err
	}

	err = c.doc.Close()
	if err != nil {
		c.err = err
		return err
	}
	return nil
}

// Abort discards the document without writing the remaining parts of the
// file.  After Abort, drawing operations are ignored and NewPage and
// Finalize return an error.  Abort has no effect on a finalized canvas.
func (c *Canvas) Abort() {
	if c.page == nil {
		return
	}
	c.page = nil
	c.doc = nil
	c.err = errAborted
}

func deviceRGB(col gocolor.Color) color.Color {
	r, g, b, _ := col.RGBA()
	return color.DeviceRGB{float64(r) / 0xffff, float64(g) / 0xffff, float64(b) / 0xffff}
}
