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

package asset

import (
	"image"
	"image/color"
	"math"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Navy is the colour of the placeholder logo.
var Navy = color.RGBA{R: 0, G: 0, B: 128, A: 255}

var boldFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gobold.TTF)
})

// Placeholder returns a square logo of size×size pixels: a white
// background with a navy circular border and the given text centred inside.
func Placeholder(text string, size int) *image.RGBA {
	if size < 8 {
		size = 8
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	drawRing(img, Navy, float64(size)/50)
	if text != "" {
		drawCentred(img, text, Navy, float64(size)/4)
	}
	return img
}

// drawRing draws an anti-aliased circle of the given stroke width which
// touches the image borders.
func drawRing(img *image.RGBA, col color.RGBA, width float64) {
	b := img.Bounds()
	c := float64(b.Dx()) / 2
	r := c - width/2
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			d := math.Abs(math.Hypot(dx, dy) - r)
			alpha := width/2 - d + 0.5
			if alpha <= 0 {
				continue
			}
			if alpha > 1 {
				alpha = 1
			}
			img.SetRGBA(x, y, blend(img.RGBAAt(x, y), col, alpha))
		}
	}
}

func blend(bg, fg color.RGBA, alpha float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a)*(1-alpha) + float64(b)*alpha))
	}
	return color.RGBA{R: mix(bg.R, fg.R), G: mix(bg.G, fg.G), B: mix(bg.B, fg.B), A: 255}
}

func drawCentred(img *image.RGBA, text string, col color.Color, size float64) {
	otf, err := boldFont()
	if err != nil {
		return
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return
	}
	defer face.Close()

	bounds, _ := font.BoundString(face, text)
	textW := (bounds.Max.X - bounds.Min.X).Ceil()
	textH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	dim := img.Bounds().Dx()
	originX := (dim-textW)/2 - bounds.Min.X.Floor()
	originY := (dim-textH)/2 - bounds.Min.Y.Floor()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(originX, originY),
	}
	d.DrawString(text)
}
