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

package textwrap

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Parse converts paragraph markup into plain text.
//
// The markup is a small subset of HTML: <br> (or <br/>) forces a line
// break, and the block elements <p>, <div> and <para> start a new line.
// All other tags are dropped while keeping their text.  Character
// references like "&amp;" are decoded.  Newline characters in the input are
// kept as line breaks.  Leading and trailing blank lines are removed and the
// result is in Unicode normalization form NFC.
func Parse(markup string) string {
	b := &strings.Builder{}
	newline := func() {
		b.WriteByte('\n')
	}

	z := html.NewTokenizer(strings.NewReader(markup))
loop:
	for {
		switch z.Next() {
		case html.ErrorToken:
			// z.Err() is io.EOF here, strings.Reader cannot fail
			break loop
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "br":
				newline()
			case "p", "div", "para":
				if b.Len() > 0 {
					newline()
				}
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "p", "div", "para":
				newline()
			}
		}
	}

	text := strings.ReplaceAll(b.String(), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.Trim(text, " \t\n")
	return norm.NFC.String(text)
}
