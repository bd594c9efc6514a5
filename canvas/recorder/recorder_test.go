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

package recorder

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"seehuhn.de/go/nssdoc/canvas"
	"seehuhn.de/go/nssdoc/layout"
)

func TestRecorder(t *testing.T) {
	r := New(layout.A4)
	f := canvas.Font{Face: canvas.Bold, Size: 10}

	r.DrawText(10, 20, "hello", f, color.Black)
	r.DrawRect(layout.Box{X: 1, Y: 2, W: 3, H: 4}, color.White, nil)
	if err := r.NewPage(); err != nil {
		t.Fatal(err)
	}
	r.DrawImage(image.NewGray(image.Rect(0, 0, 7, 5)), layout.Box{W: 70, H: 50}, true)
	if err := r.Finalize(); err != nil {
		t.Fatal(err)
	}

	if len(r.Pages) != 2 {
		t.Fatalf("%d pages, want 2", len(r.Pages))
	}
	texts := r.Find(1, Text)
	if len(texts) != 1 || texts[0].Text != "hello" || texts[0].Box.W != 25 {
		t.Errorf("unexpected text ops %v", texts)
	}
	images := r.Find(2, Image)
	if len(images) != 1 || images[0].ImageSize != (image.Point{X: 7, Y: 5}) {
		t.Errorf("unexpected image ops %v", images)
	}
	if r.Find(3, Text) != nil {
		t.Error("ops found on non-existent page")
	}

	if err := r.NewPage(); err == nil {
		t.Error("NewPage after Finalize succeeded")
	}
	if err := r.Finalize(); err == nil {
		t.Error("second Finalize succeeded")
	}

	buf := &bytes.Buffer{}
	if err := r.WriteSummary(buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "page 2: 0 text, 0 rect, 1 image") {
		t.Errorf("unexpected summary:\n%s", buf)
	}
}
