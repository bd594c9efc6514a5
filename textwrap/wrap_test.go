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
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

// monoWidth measures text in a fixed-pitch font with 5pt wide glyphs.
func monoWidth(s string) float64 {
	return 5 * float64(utf8.RuneCountInString(s))
}

func TestWrap(t *testing.T) {
	cases := []struct {
		text     string
		maxWidth float64
		want     []string
	}{
		{"", 100, nil},
		{"aaa bbb ccc", 40, []string{"aaa bbb", "ccc"}},
		{"aaa bbb ccc", 55, []string{"aaa bbb ccc"}},
		{"  aaa   bbb  ", 100, []string{"aaa bbb"}},
		{"a verylongword b", 20, []string{"a", "verylongword", "b"}},
		{"one\n\ntwo", 100, []string{"one", "", "two"}},
		{"one two\nthree", 100, []string{"one two", "three"}},
	}
	for _, test := range cases {
		got := Wrap(test.text, monoWidth, test.maxWidth)
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("Wrap(%q, %g): %s", test.text, test.maxWidth, d)
		}
	}
}

func TestWrapWidth(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 20)
	for _, line := range Wrap(text, monoWidth, 120) {
		if w := monoWidth(line); w > 120 {
			t.Errorf("line %q is %gpt wide", line, w)
		}
	}
}

// TestWrapIdempotent checks that wrapping already wrapped lines at the same
// width reproduces the same line breaks.
func TestWrapIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	words := strings.Fields("the NSS unit organised a blood donation camp " +
		"tree planting drive and an awareness rally on road safety " +
		"with participation from local schools")

	for i := 0; i < 200; i++ {
		var parts []string
		n := rng.Intn(40)
		for j := 0; j < n; j++ {
			w := words[rng.Intn(len(words))]
			if rng.Intn(15) == 0 {
				w += "\n"
			}
			parts = append(parts, w)
		}
		text := strings.Join(parts, " ")
		maxWidth := float64(20 + rng.Intn(300))

		first := Wrap(text, monoWidth, maxWidth)
		second := Wrap(strings.Join(first, "\n"), monoWidth, maxWidth)
		if d := cmp.Diff(first, second); d != "" {
			t.Fatalf("text %q at width %g: %s", text, maxWidth, d)
		}
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"plain text", "plain text"},
		{"Cleaning drive<br/>at the beach &amp; park", "Cleaning drive\nat the beach & park"},
		{"line one<br>line two", "line one\nline two"},
		{"<b>bold</b> and <i>italic</i>", "bold and italic"},
		{"<p>first</p><p>second</p>", "first\n\nsecond"},
		{"\n\n  padded  \n", "padded"},
		{"windows\r\nline", "windows\nline"},
		{"cafe\u0301", "caf\u00e9"},
		{"1 < 2", "1 < 2"},
	}
	for _, test := range cases {
		got := Parse(test.in)
		if got != test.out {
			t.Errorf("Parse(%q) = %q, want %q", test.in, got, test.out)
		}
	}
}

func TestLayout(t *testing.T) {
	p := Layout("aaa bbb<br/>ccc", monoWidth, 14, 1000)
	want := &Paragraph{
		Lines:  []string{"aaa bbb", "ccc"},
		Height: 28,
	}
	if d := cmp.Diff(want, p); d != "" {
		t.Error(d)
	}

	empty := Layout("", monoWidth, 14, 1000)
	if empty.Height != 0 || len(empty.Lines) != 0 {
		t.Errorf("empty paragraph: %v", empty)
	}
}
