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

// Package textwrap breaks paragraph text into lines of bounded width.
//
// Text is broken only at white space and words are never split.  A word
// which is wider than the available space is placed on a line of its own.
// Explicit line breaks in the input are always honoured.
package textwrap

import (
	"strings"
)

// Paragraph is the result of laying out a block of text.
type Paragraph struct {
	Lines []string

	// Height is the vertical space used by the lines,
	// i.e. len(Lines) times the leading.
	Height float64
}

// Layout parses the markup in text and wraps the result.
// width must return the advance width of a string in the font used to
// show the paragraph.
func Layout(text string, width func(string) float64, leading, maxWidth float64) *Paragraph {
	lines := Wrap(Parse(text), width, maxWidth)
	return &Paragraph{
		Lines:  lines,
		Height: float64(len(lines)) * leading,
	}
}

// Wrap breaks plain text into lines no wider than maxWidth.
// Newline characters in text start a new line.  Runs of white space
// inside a line are collapsed into a single space.
//
// Wrapping the output again, joined by newlines, gives the same lines.
func Wrap(text string, width func(string) float64, maxWidth float64) []string {
	if text == "" {
		return nil
	}

	spaceWidth := width(" ")

	var res []string
	for _, hard := range strings.Split(text, "\n") {
		words := strings.Fields(hard)
		if len(words) == 0 {
			res = append(res, "")
			continue
		}

		var line []string
		var lineWidth float64
		for _, word := range words {
			w := width(word)
			if len(line) == 0 {
				line = append(line, word)
				lineWidth = w
			} else if lineWidth+spaceWidth+w <= maxWidth {
				line = append(line, word)
				lineWidth += spaceWidth + w
			} else {
				res = append(res, strings.Join(line, " "))
				line = append(line[:0], word)
				lineWidth = w
			}
		}
		res = append(res, strings.Join(line, " "))
	}
	return res
}
