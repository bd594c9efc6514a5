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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/nssdoc/layout"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
	if cfg.Logos.Timeout != 15*time.Second || cfg.Photos.Timeout != 10*time.Second {
		t.Errorf("unexpected timeouts %v, %v", cfg.Logos.Timeout, cfg.Photos.Timeout)
	}
	paper, _ := cfg.Paper()
	if paper != layout.A4 {
		t.Errorf("default paper is %v", paper)
	}
	if len(cfg.LogoRefs()) != 2 {
		t.Errorf("expected two logos")
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
title: Unit 42
logos:
  left: logo.png
  timeout: 3s
page:
  paper: Letter
security:
  owner_password: "I\u00ADX"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.Title = "Unit 42"
	want.Logos.Left = "logo.png"
	want.Logos.Timeout = 3 * time.Second
	want.Page.Paper = "Letter"
	want.Security.OwnerPassword = "IX" // soft hyphen is mapped to nothing
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("config (-want +got):\n%s", d)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := []string{
		"title: \"\"\n",
		"photos:\n  timeout: 0s\n",
		"photos:\n  max_pixels: 0\n",
		"page:\n  paper: B5\n",
		"security:\n  user_password: \"a\\u0007b\"\n",
		"title: [unclosed\n",
	}
	for _, body := range cases {
		_, err := Load(writeConfig(t, body))
		if err == nil {
			t.Errorf("invalid config accepted:\n%s", body)
		}
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Default(), cfg); d != "" {
		t.Errorf("config (-want +got):\n%s", d)
	}
}
