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
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/nssdoc/canvas"
	"seehuhn.de/go/nssdoc/layout"
)

func TestWriteDocument(t *testing.T) {
	buf := &bytes.Buffer{}
	c, err := New(buf, &Options{
		Paper:  layout.Letter,
		Title:  "Test Report",
		Author: "Unit 191",
	})
	if err != nil {
		t.Fatal(err)
	}

	if c.PageSize() != layout.Letter {
		t.Errorf("wrong page size: %v", c.PageSize())
	}

	f := canvas.Font{Face: canvas.Bold, Size: 12}
	c.DrawText(72, 700, "Hello", f, color.Black)
	c.DrawRect(layout.Box{X: 72, Y: 600, W: 200, H: 30}, color.White, color.Gray{Y: 0xe0})

	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	c.DrawImage(img, layout.Box{X: 72, Y: 400, W: 180, H: 144}, true)

	err = c.NewPage()
	if err != nil {
		t.Fatal(err)
	}
	err = c.Finalize()
	if err != nil {
		t.Fatal(err)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-1.7")) {
		t.Errorf("missing PDF header: %q", out[:min(len(out), 16)])
	}
	if !bytes.Contains(out, []byte("%%EOF")) {
		t.Error("missing end-of-file marker")
	}

	if err := c.Finalize(); err == nil {
		t.Error("second Finalize succeeded")
	}
	if err := c.NewPage(); err == nil {
		t.Error("NewPage after Finalize succeeded")
	}
}

func TestAbort(t *testing.T) {
	buf := &bytes.Buffer{}
	c, err := New(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	c.DrawText(72, 700, "partial", canvas.Font{Size: 10}, color.Black)
	c.Abort()

	// drawing after Abort must not panic
	c.DrawText(72, 680, "ignored", canvas.Font{Size: 10}, color.Black)
	c.DrawRect(layout.Box{X: 72, Y: 600, W: 10, H: 10}, color.Black, nil)
	c.DrawImage(image.NewRGBA(image.Rect(0, 0, 2, 2)), layout.Box{W: 10, H: 10}, false)

	if err := c.NewPage(); !errors.Is(err, errAborted) {
		t.Errorf("NewPage after Abort: %v", err)
	}
	if err := c.Finalize(); !errors.Is(err, errAborted) {
		t.Errorf("Finalize after Abort: %v", err)
	}
	if bytes.Contains(buf.Bytes(), []byte("%%EOF")) {
		t.Error("aborted document was completed")
	}

	// Abort after Finalize keeps the finished file
	c, err = New(&bytes.Buffer{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Finalize(); err != nil {
		t.Fatal(err)
	}
	c.Abort()
	if err := c.Finalize(); !errors.Is(err, errClosed) {
		t.Errorf("Finalize after Finalize and Abort: %v", err)
	}
}

func TestDeviceRGB(t *testing.T) {
	cases := []struct {
		in   color.Color
		want pdfcolor.DeviceRGB
	}{
		{color.White, pdfcolor.DeviceRGB{1, 1, 1}},
		{color.Black, pdfcolor.DeviceRGB{0, 0, 0}},
		{color.RGBA{R: 0xff, B: 0xff, A: 0xff}, pdfcolor.DeviceRGB{1, 0, 1}},
		{color.Gray16{Y: 0x8000}, pdfcolor.DeviceRGB{0x8000 / 65535.0, 0x8000 / 65535.0, 0x8000 / 65535.0}},
	}
	for _, test := range cases {
		got := deviceRGB(test.in)
		if got != pdfcolor.Color(test.want) {
			t.Errorf("deviceRGB(%v) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestTextWidth(t *testing.T) {
	c, err := New(&bytes.Buffer{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	regular := canvas.Font{Face: canvas.Regular, Size: 10}
	bold := canvas.Font{Face: canvas.Bold, Size: 10}

	if w := c.TextWidth("", regular); w != 0 {
		t.Errorf("empty string has width %g", w)
	}
	w1 := c.TextWidth("Program", regular)
	w2 := c.TextWidth("Program Program", regular)
	if w1 <= 0 || w2 <= 2*w1 {
		t.Errorf("implausible widths %g, %g", w1, w2)
	}
	if c.TextWidth("WWW", bold) <= c.TextWidth("iii", bold) {
		t.Error("proportional widths expected")
	}
	if c.PageSize() != layout.A4 {
		t.Errorf("default paper should be A4, got %v", c.PageSize())
	}
}

func TestInvalidLanguage(t *testing.T) {
	_, err := New(&bytes.Buffer{}, &Options{Language: "not a language!"})
	if err == nil {
		t.Error("invalid language accepted")
	}
}
