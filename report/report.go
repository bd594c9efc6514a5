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

// Package report lays out program records as a paginated document.
//
// The first page of a report is a cover page with logos and a title.  It
// is followed by content pages, each starting at most two records.  Every
// record is shown as a card with its name, date, hours and description,
// followed by a grid of its photos.  Content pages carry a footer with
// the page number.
package report

import (
	"bytes"
	"context"
	"image"
	"time"

	"github.com/hashicorp/go-hclog"

	"seehuhn.de/go/nssdoc/asset"
	"seehuhn.de/go/nssdoc/canvas"
	"seehuhn.de/go/nssdoc/canvas/pdfcanvas"
	"seehuhn.de/go/nssdoc/program"
)

// AttachmentName is the file name used when a report is delivered as a
// download.
const AttachmentName = "nss_documentation.pdf"

// Default values for [Options].
const (
	DefaultTitle        = "National Service Scheme Unit 191"
	DefaultInitials     = "NSS"
	DefaultLogoTimeout  = 15 * time.Second
	DefaultPhotoTimeout = 10 * time.Second
)

// AssetSource retrieves images for logos and photos.
// [*asset.Fetcher] implements this interface.
type AssetSource interface {
	Fetch(ctx context.Context, ref string, timeout time.Duration) (image.Image, error)
}

// Options control the generation of a report.
// The zero value is valid.
type Options struct {
	// Title is shown on the cover page.
	Title string

	// FooterText is shown above the page number on content pages.
	// If empty, Title is used.
	FooterText string

	// Logos are the references of the cover page logos, left to right.
	// Empty references, and logos which cannot be loaded, are replaced by
	// a placeholder showing LogoInitials.
	Logos        []string
	LogoInitials string

	LogoTimeout  time.Duration
	PhotoTimeout time.Duration

	// Assets is used to load logos and photos.  If nil, a new
	// [asset.Fetcher] is used.
	Assets AssetSource

	// Logger receives warnings about images which could not be loaded.
	Logger hclog.Logger

	Style *Style
}

func (opt *Options) withDefaults() *Options {
	res := &Options{}
	if opt != nil {
		*res = *opt
	}
	if res.Title == "" {
		res.Title = DefaultTitle
	}
	if res.FooterText == "" {
		res.FooterText = res.Title
	}
	if res.LogoInitials == "" {
		res.LogoInitials = DefaultInitials
	}
	if res.LogoTimeout <= 0 {
		res.LogoTimeout = DefaultLogoTimeout
	}
	if res.PhotoTimeout <= 0 {
		res.PhotoTimeout = DefaultPhotoTimeout
	}
	if res.Assets == nil {
		res.Assets = asset.NewFetcher()
	}
	if res.Logger == nil {
		res.Logger = hclog.NewNullLogger()
	}
	if res.Style == nil {
		res.Style = DefaultStyle()
	}
	return res
}

// Summary describes a rendered report.
type Summary struct {
	Pages            int // including the cover page
	Records          int
	Photos           int // photos drawn
	FailedPhotos     int // photos which could not be loaded
	PlaceholderLogos int
}

// Render draws a report for the given records onto c and finalizes c.
//
// The records are drawn in the order given and are not validated.
// Images which cannot be loaded do not cause an error.  Render checks ctx
// before each record and stops if ctx is done.
func Render(ctx context.Context, c canvas.Canvas, records []program.Record, opt *Options) (*Summary, error) {
	opt = opt.withDefaults()
	rc := newRenderContext(ctx, c, opt)
	s := rc.style

	err := rc.drawCover()
	if err != nil {
		return nil, err
	}

	for i := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if rc.cursor.RecordsOnPage >= s.RecordsPerPage {
			err = rc.breakPage()
			if err != nil {
				return nil, err
			}
			rc.cursor.RecordsOnPage = 0
		}

		rec := &records[i]
		err = rc.drawCard(rec, i+1)
		if err != nil {
			return nil, err
		}
		err = rc.drawImageGrid(rec.Photos)
		if err != nil {
			return nil, err
		}
		rc.cursor.Advance(s.RecordGap)
		rc.cursor.RecordsOnPage++

		rc.log.Debug("record placed", "ordinal", i+1, "page", rc.cursor.PageNumber)
	}

	rc.drawFooter()
	err = c.Finalize()
	if err != nil {
		return nil, err
	}

	rc.summary.Pages = rc.cursor.PageNumber
	rc.summary.Records = len(records)
	return &rc.summary, nil
}

// GenerationError is returned by [Generate] when no document could be
// produced.
type GenerationError struct {
	Err error
}

func (err *GenerationError) Error() string {
	return "failed to generate report: " + err.Err.Error()
}

func (err *GenerationError) Unwrap() error {
	return err.Err
}

// Generate renders a PDF report and returns the complete file.
// If the report cannot be completed, no data is returned and the error is
// a [*GenerationError].
func Generate(ctx context.Context, records []program.Record, opt *Options, pdfOpt *pdfcanvas.Options) ([]byte, error) {
	buf := &bytes.Buffer{}
	c, err := pdfcanvas.New(buf, pdfOpt)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	summary, err := Render(ctx, c, records, opt)
	if err != nil {
		c.Abort()
		return nil, &GenerationError{Err: err}
	}
	if opt != nil && opt.Logger != nil {
		opt.Logger.Info("report generated",
			"pages", summary.Pages, "records", summary.Records,
			"photos", summary.Photos, "failed_photos", summary.FailedPhotos)
	}
	return buf.Bytes(), nil
}
