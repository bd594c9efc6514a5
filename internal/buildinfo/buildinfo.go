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

// Package buildinfo describes the running binary for version output.
package buildinfo

import (
	"runtime/debug"
	"strings"
)

// pdfModule is reported alongside the main module.
const pdfModule = "seehuhn.de/go/pdf"

// Short returns a one-line version string for a command, e.g.
// "nss-report (seehuhn.de/go/nssdoc v1.2.0, seehuhn.de/go/pdf v0.6.0)".
func Short(toolName string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return toolName
	}
	return describe(toolName, info)
}

func describe(toolName string, info *debug.BuildInfo) string {
	var parts []string
	if v := mainVersion(info); v != "" {
		parts = append(parts, info.Main.Path+" "+v)
	}
	for _, dep := range info.Deps {
		if dep.Path == pdfModule {
			parts = append(parts, dep.Path+" "+dep.Version)
			break
		}
	}
	if len(parts) == 0 {
		return toolName
	}
	return toolName + " (" + strings.Join(parts, ", ") + ")"
}

// mainVersion returns the module version, or the abbreviated VCS revision
// for development builds.
func mainVersion(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if rev != "" && dirty {
		rev += "+dirty"
	}
	return rev
}
