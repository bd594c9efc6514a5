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
	"context"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"

	"seehuhn.de/go/nssdoc/asset"
	"seehuhn.de/go/nssdoc/canvas"
	"seehuhn.de/go/nssdoc/layout"
	"seehuhn.de/go/nssdoc/program"
	"seehuhn.de/go/nssdoc/textwrap"
)

// RenderContext holds the state of one rendering pass: the canvas, the
// writing position and the style.  A RenderContext is used by a single
// goroutine.
type RenderContext struct {
	ctx    context.Context
	canvas canvas.Canvas
	paper  layout.Paper
	cursor *layout.Cursor
	style  *Style
	opt    *Options
	log    hclog.Logger

	summary Summary
}

func newRenderContext(ctx context.Context, c canvas.Canvas, opt *Options) *RenderContext {
	paper := c.PageSize()
	return &RenderContext{
		ctx:    ctx,
		canvas: c,
		paper:  paper,
		cursor: layout.NewCursor(paper.Height-opt.Style.Margin, 1),
		style:  opt.Style,
		opt:    opt,
		log:    opt.Logger,
	}
}

func (rc *RenderContext) tableWidth() float64 {
	return rc.paper.Width - 2*rc.style.Margin
}

func (rc *RenderContext) drawCentred(y float64, text string, f canvas.Font, col color.Color) {
	w := rc.canvas.TextWidth(text, f)
	rc.canvas.DrawText((rc.paper.Width-w)/2, y, text, f, col)
}

func (rc *RenderContext) fetch(ref string, timeout time.Duration) (image.Image, error) {
	img, err := rc.opt.Assets.Fetch(rc.ctx, ref, timeout)
	if err != nil {
		rc.log.Warn("image not available", "ref", ref, "error", err)
		return nil, err
	}
	return img, nil
}

// drawCover fills the first page and moves on to the second one.
func (rc *RenderContext) drawCover() error {
	s := rc.style
	logos := rc.opt.Logos

	logoY := rc.paper.Height - s.LogoDrop
	if n := len(logos); n > 0 {
		total := float64(n)*s.LogoSize + float64(n-1)*s.LogoGap
		x := (rc.paper.Width - total) / 2
		for _, ref := range logos {
			box := layout.Box{X: x, Y: logoY, W: s.LogoSize, H: s.LogoSize}
			rc.canvas.DrawImage(rc.logo(ref), box, true)
			x += s.LogoSize + s.LogoGap
		}
	}

	rc.drawCentred(logoY-s.CoverTitleDrop, rc.opt.Title, s.CoverTitleFont, s.Primary)

	err := rc.canvas.NewPage()
	if err != nil {
		return err
	}
	rc.cursor.NextPage()
	return nil
}

// logo returns the logo image at ref, or a placeholder if the logo
// cannot be loaded.
func (rc *RenderContext) logo(ref string) image.Image {
	if ref != "" {
		img, err := rc.fetch(ref, rc.opt.LogoTimeout)
		if err == nil {
			return img
		}
	}
	rc.summary.PlaceholderLogos++
	return asset.Placeholder(rc.opt.LogoInitials, rc.style.PlaceholderPixel)
}

// drawFooter draws the footer of the current page.
// The cover page has no footer.
func (rc *RenderContext) drawFooter() {
	if rc.cursor.PageNumber <= 1 {
		return
	}
	s := rc.style
	rc.drawCentred(s.FooterTextY, rc.opt.FooterText, s.FooterFont, s.FooterColor)
	rc.drawCentred(s.FooterNumberY, strconv.Itoa(rc.cursor.PageNumber), s.FooterFont, s.FooterColor)
}

// breakPage finishes the current content page and starts the next one.
func (rc *RenderContext) breakPage() error {
	rc.drawFooter()
	err := rc.canvas.NewPage()
	if err != nil {
		return err
	}
	rc.cursor.NextPage()
	return nil
}

// drawCard draws the title row, the date and hours row and the
// description of a record.  The height of the description is not checked
// against the space left on the page.
func (rc *RenderContext) drawCard(rec *program.Record, ordinal int) error {
	s := rc.style
	if !rc.cursor.HasRoom(s.CardReserve, s.Margin) {
		err := rc.breakPage()
		if err != nil {
			return err
		}
	}

	x := s.Margin
	w := rc.tableWidth()
	y := rc.cursor.Y

	row := layout.Box{X: x, Y: y - s.RowHeight, W: w, H: s.RowHeight}
	rc.canvas.DrawRect(row, s.HeaderFill, nil)
	title := fmt.Sprintf("%d. %s", ordinal, rec.Name)
	rc.canvas.DrawText(x+s.TextInset, y-s.BaselineDrop, title, s.TitleFont, s.Primary)
	rc.canvas.DrawRect(row, nil, s.Border)
	y -= s.RowHeight

	dateW := w * s.DatePart
	rc.canvas.DrawRect(layout.Box{X: x, Y: y - s.RowHeight, W: dateW, H: s.RowHeight}, nil, s.Border)
	rc.canvas.DrawText(x+s.TextInset, y-s.BaselineDrop, "Date: "+rec.Date.String(), s.RowFont, s.Primary)
	rc.canvas.DrawRect(layout.Box{X: x + dateW, Y: y - s.RowHeight, W: w - dateW, H: s.RowHeight}, nil, s.Border)
	rc.canvas.DrawText(x+dateW+s.TextInset, y-s.BaselineDrop, "Hours: "+rec.Hours.String(), s.RowFont, s.Primary)
	y -= s.RowHeight

	measure := func(text string) float64 {
		return rc.canvas.TextWidth(text, s.DescFont)
	}
	para := textwrap.Layout(rec.Description, measure, s.DescLeading, w-2*s.TextInset)
	h := para.Height + s.DescPadding
	rc.canvas.DrawRect(layout.Box{X: x, Y: y - h, W: w, H: h}, nil, s.Border)
	baseline := y - s.DescPadding/2 - s.DescFont.Size
	for i, line := range para.Lines {
		rc.canvas.DrawText(x+s.TextInset, baseline-float64(i)*s.DescLeading, line, s.DescFont, s.Text)
	}

	rc.cursor.Advance(2*s.RowHeight + h + s.CardGap)
	return nil
}

// drawImageGrid draws the photos of a record in a grid below the card.
// The grid is never split across pages.  A photo which cannot be loaded
// leaves its cell empty.
func (rc *RenderContext) drawImageGrid(photos []string) error {
	if len(photos) == 0 {
		return nil
	}

	s := rc.style
	total := s.GridHeight(len(photos))
	if !rc.cursor.HasRoom(total, s.Margin) {
		err := rc.breakPage()
		if err != nil {
			return err
		}
	}

	top := rc.cursor.Y
	for i, ref := range photos {
		img, err := rc.fetch(ref, rc.opt.PhotoTimeout)
		if err != nil {
			rc.summary.FailedPhotos++
			continue
		}
		cell := s.Cell(top, i/s.GridColumns, i%s.GridColumns)
		rc.canvas.DrawImage(img, cell, true)
		rc.summary.Photos++
	}

	rc.cursor.Advance(total + s.CellVGap)
	return nil
}
