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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/nssdoc/config"
)

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "out.pdf")

	err := writeOutput(fname, []byte("%PDF-1.7\n"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("%PDF-1.7\n")) {
		t.Errorf("wrong file contents %q", got)
	}

	err = writeOutput(fname, []byte("again"))
	if err == nil {
		t.Error("existing file overwritten without -f")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestLoadRecords(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.yaml")
	os.WriteFile(a, []byte(`[{"name": "A", "date": "2024-01-02", "hours": 2, "description": "x"}]`), 0o644)
	os.WriteFile(b, []byte("- name: B\n  date: 2024-01-01\n  hours: 1\n  description: y\n"), 0o644)

	records, err := loadRecords([]string{a, b})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 || records[0].Name != "A" || records[1].Name != "B" {
		t.Errorf("unexpected records %v", records)
	}

	_, err = loadRecords([]string{filepath.Join(dir, "missing.json")})
	if err == nil {
		t.Error("missing file accepted")
	}
}

func TestOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Page.Paper = "Letter"
	cfg.Metadata.Author = "Unit 191"

	pdfOpt, err := pdfOptions(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if pdfOpt.Paper.Width != 612 || pdfOpt.Author != "Unit 191" {
		t.Errorf("unexpected PDF options %+v", pdfOpt)
	}

	opt := reportOptions(cfg, nil)
	if len(opt.Logos) != 2 || opt.LogoInitials != "NSS" || opt.Assets == nil {
		t.Errorf("unexpected report options %+v", opt)
	}
}
