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

// Nss-report renders program records into a PDF report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/term"

	"seehuhn.de/go/nssdoc/asset"
	"seehuhn.de/go/nssdoc/canvas/pdfcanvas"
	"seehuhn.de/go/nssdoc/canvas/recorder"
	"seehuhn.de/go/nssdoc/config"
	"seehuhn.de/go/nssdoc/internal/buildinfo"
	"seehuhn.de/go/nssdoc/internal/profile"
	"seehuhn.de/go/nssdoc/program"
	"seehuhn.de/go/nssdoc/report"
)

const toolName = "nss-report"

var (
	configArg  = flag.String("config", "", "read settings from the YAML `file`")
	outArg     = flag.String("o", report.AttachmentName, "output `file`, or \"-\" for standard output")
	force      = flag.Bool("f", false, "overwrite output file if it exists")
	nameArg    = flag.String("name", "", "only include programs whose name contains `text`")
	dateArg    = flag.String("date", "", "only include programs on the given `date` (YYYY-MM-DD)")
	sortArg    = flag.Bool("sort", false, "sort programs by date")
	paperArg   = flag.String("paper", "", "paper size (A4, A5 or Letter)")
	fontArg    = flag.String("font", "", "TrueType or OpenType `file` for body text")
	dryRun     = flag.Bool("dry-run", false, "print the page layout instead of writing a PDF file")
	logLevel   = flag.String("log-level", "", "log level (trace, debug, info, warn, error)")
	version    = flag.Bool("version", false, "print version information and exit")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s \u2014 render program records into a PDF report\n", toolName)
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short(toolName))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  %s [options] <records.json|records.yaml>...\n\n", toolName)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s programs.json\n", toolName)
		fmt.Fprintf(os.Stderr, "  %s -sort -date 2024-07-15 -o july.pdf programs.yaml\n", toolName)
		fmt.Fprintf(os.Stderr, "  %s -dry-run programs.json\n", toolName)
	}
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Short(toolName))
		return
	}
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() (err error) {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, stop())
	}()

	cfg, err := config.LoadOrDefault(*configArg)
	if err != nil {
		return err
	}
	err = applyFlags(cfg)
	if err != nil {
		return err
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   toolName,
		Level:  hclog.LevelFromString(cfg.Log.Level),
		Output: os.Stderr,
	})

	records, err := loadRecords(flag.Args())
	if err != nil {
		return err
	}
	if *nameArg != "" || *dateArg != "" {
		var date program.Date
		if *dateArg != "" {
			date, err = program.ParseDate(*dateArg)
			if err != nil {
				return err
			}
		}
		records = program.Filter(records, *nameArg, date)
	}
	if *sortArg {
		program.SortByDate(records)
	}
	logger.Debug("records loaded", "count", len(records))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	opt := reportOptions(cfg, logger)
	if *dryRun {
		paper, _ := cfg.Paper()
		rec := recorder.New(paper)
		summary, err := report.Render(ctx, rec, records, opt)
		if err != nil {
			return err
		}
		logger.Info("dry run", "pages", summary.Pages, "photos", summary.Photos,
			"failed_photos", summary.FailedPhotos)
		return rec.WriteSummary(os.Stdout)
	}

	pdfOpt, err := pdfOptions(cfg)
	if err != nil {
		return err
	}
	data, err := report.Generate(ctx, records, opt, pdfOpt)
	if err != nil {
		return err
	}
	return writeOutput(*outArg, data)
}

// applyFlags overrides configuration settings with command line flags.
func applyFlags(cfg *config.Config) error {
	if *paperArg != "" {
		cfg.Page.Paper = *paperArg
	}
	if *fontArg != "" {
		cfg.Page.Font = *fontArg
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if hclog.LevelFromString(cfg.Log.Level) == hclog.NoLevel {
		return fmt.Errorf("invalid log level %q", cfg.Log.Level)
	}
	return cfg.Validate()
}

func loadRecords(files []string) ([]program.Record, error) {
	var all []program.Record
	for _, fname := range files {
		records, err := program.LoadFile(fname)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return all, nil
}

func reportOptions(cfg *config.Config, logger hclog.Logger) *report.Options {
	fetcher := asset.NewFetcher()
	fetcher.MaxBytes = cfg.Photos.MaxBytes
	fetcher.MaxSide = cfg.Photos.MaxSide
	fetcher.MaxPixels = cfg.Photos.MaxPixels

	return &report.Options{
		Title:        cfg.Title,
		FooterText:   cfg.Footer,
		Logos:        cfg.LogoRefs(),
		LogoInitials: cfg.Logos.Initials,
		LogoTimeout:  cfg.Logos.Timeout,
		PhotoTimeout: cfg.Photos.Timeout,
		Assets:       fetcher,
		Logger:       logger,
	}
}

func pdfOptions(cfg *config.Config) (*pdfcanvas.Options, error) {
	paper, err := cfg.Paper()
	if err != nil {
		return nil, err
	}
	return &pdfcanvas.Options{
		Paper:         paper,
		RegularFont:   cfg.Page.Font,
		Language:      cfg.Metadata.Language,
		Title:         cfg.Title,
		Author:        cfg.Metadata.Author,
		Subject:       cfg.Metadata.Subject,
		Keywords:      cfg.Metadata.Keywords,
		Creator:       buildinfo.Short(toolName),
		UserPassword:  cfg.Security.UserPassword,
		OwnerPassword: cfg.Security.OwnerPassword,
	}, nil
}

// writeOutput writes data to the named file.  The data is written to a
// temporary file in the same directory, which is then renamed.
func writeOutput(fname string, data []byte) error {
	if fname == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write PDF data to a terminal")
		}
		_, err := os.Stdout.Write(data)
		return err
	}

	if !*force {
		if _, err := os.Stat(fname); !os.IsNotExist(err) {
			return fmt.Errorf("output file %q already exists", fname)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(fname), ".nss-report-*.pdf")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	_, err = tmp.Write(data)
	if err != nil {
		tmp.Close()
		return err
	}
	err = tmp.Close()
	if err != nil {
		return err
	}
	return os.Rename(tmpName, fname)
}
