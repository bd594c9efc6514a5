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

package pdfcanvas

import (
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/xmp"
)

// pdfNamespace is the XMP namespace for PDF properties.
type pdfNamespace struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

// writeMetadata fills the document information dictionary and attaches an
// XMP metadata stream to the document catalog.
func (c *Canvas) writeMetadata() error {
	out := c.doc.Out
	opt := &c.opt

	now := opt.Now
	if now.IsZero() {
		now = time.Now()
	}

	out.GetMeta().Info = &pdf.Info{
		Title:    pdf.TextString(opt.Title),
		Author:   pdf.TextString(opt.Author),
		Subject:  pdf.TextString(opt.Subject),
		Keywords: pdf.TextString(opt.Keywords),
		Creator:  pdf.TextString(opt.Creator),
		Producer: Producer,
	}

	dc := &xmp.DublinCore{}
	if opt.Title != "" {
		dc.Title.Set(language.MustParse("x-default"), opt.Title)
		dc.Title.Set(c.lang, opt.Title)
	}
	if opt.Author != "" {
		dc.Creator.Append(xmp.NewProperName(opt.Author))
	}
	if opt.Subject != "" {
		dc.Description.Set(language.MustParse("x-default"), opt.Subject)
	}
	basic := &xmp.Basic{}
	basic.CreateDate = xmp.NewDate(now)
	basic.ModifyDate = xmp.NewDate(now)
	pdfInfo := &pdfNamespace{}
	if opt.Keywords != "" {
		pdfInfo.Keywords = xmp.NewText(opt.Keywords)
	}
	pdfInfo.Producer = xmp.NewAgentName(Producer)

	packet := xmp.NewPacket()
	packet.Set(dc, basic, pdfInfo)

	ref := out.Alloc()
	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	stm, err := out.OpenStream(ref, dict)
	if err != nil {
		return err
	}
	err = packet.Write(stm, &xmp.PacketOptions{Pretty: opt.HumanReadable})
	if err != nil {
		stm.Close()
		return err
	}
	err = stm.Close()
	if err != nil {
		return err
	}

	out.GetMeta().Catalog.Metadata = ref
	return nil
}
