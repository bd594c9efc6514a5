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

// Package asset retrieves and prepares the images shown in a report.
//
// Images are fetched from http(s) URLs or read from the local file system,
// decoded, and normalized into opaque RGB bitmaps.  Every problem is
// reported as a [*Failure]; it is up to the caller to decide whether a
// missing image is replaced by a [Placeholder] or simply left out.
package asset

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Default limits for a [Fetcher].
const (
	DefaultMaxBytes  = 32 << 20
	DefaultMaxSide   = 2000
	DefaultMaxPixels = 40_000_000
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Phase identifies the step in which retrieving an image failed.
type Phase string

// These are the possible values for [Failure.Phase].
const (
	PhaseRequest Phase = "request"
	PhaseStatus  Phase = "status"
	PhaseRead    Phase = "read"
	PhaseDecode  Phase = "decode"
)

// Failure describes an image which could not be retrieved.
type Failure struct {
	Ref   string
	Phase Phase
	Err   error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("asset %q: %s: %v", f.Ref, f.Phase, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

var errTooLarge = errors.New("image data exceeds size limit")

// Fetcher retrieves images.
//
// Every call to [Fetcher.Fetch] makes exactly one attempt; there are no
// retries.
type Fetcher struct {
	// Client is used for http and https references.
	Client *http.Client

	// UserAgent is sent with every request.
	UserAgent string

	// MaxBytes limits the size of the encoded image.
	MaxBytes int64

	// MaxSide is the maximal width and height of a normalized image, in
	// pixels.  Larger images are scaled down.
	MaxSide int

	// MaxPixels limits the width times height of an image before it is
	// decoded.  Zero means no limit.
	MaxPixels int
}

// NewFetcher returns a Fetcher with default limits.
//
// The HTTP client does not verify TLS certificates.
func NewFetcher() *Fetcher {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	return &Fetcher{
		Client:    &http.Client{Transport: tr},
		UserAgent: DefaultUserAgent,
		MaxBytes:  DefaultMaxBytes,
		MaxSide:   DefaultMaxSide,
		MaxPixels: DefaultMaxPixels,
	}
}

// Fetch retrieves, decodes and normalizes the image at ref.
// ref is either an http(s) URL, a file URL, or a local file name.
//
// The whole operation is bounded by timeout, if positive.  All errors are of
// type [*Failure].
func (f *Fetcher) Fetch(ctx context.Context, ref string, timeout time.Duration) (image.Image, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	data, err := f.load(ctx, ref)
	if err != nil {
		return nil, err
	}

	img, err := Decode(data, f.MaxPixels)
	if err != nil {
		return nil, &Failure{Ref: ref, Phase: PhaseDecode, Err: err}
	}
	return Normalize(img, f.MaxSide), nil
}

func (f *Fetcher) load(ctx context.Context, ref string) ([]byte, error) {
	u, err := url.Parse(ref)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// no scheme, or a Windows drive letter
		return f.readFile(ref, ref)
	}

	switch strings.ToLower(u.Scheme) {
	case "file":
		return f.readFile(ref, u.Path)
	case "http", "https":
		return f.get(ctx, ref)
	default:
		return nil, &Failure{
			Ref:   ref,
			Phase: PhaseRequest,
			Err:   fmt.Errorf("unsupported scheme %q", u.Scheme),
		}
	}
}

func (f *Fetcher) get(ctx context.Context, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, &Failure{Ref: ref, Phase: PhaseRequest, Err: err}
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &Failure{Ref: ref, Phase: PhaseRequest, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Failure{
			Ref:   ref,
			Phase: PhaseStatus,
			Err:   fmt.Errorf("unexpected status %q", resp.Status),
		}
	}

	data, err := f.readAll(resp.Body)
	if err != nil {
		return nil, &Failure{Ref: ref, Phase: PhaseRead, Err: err}
	}
	return data, nil
}

func (f *Fetcher) readFile(ref, name string) ([]byte, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, &Failure{Ref: ref, Phase: PhaseRequest, Err: err}
	}
	defer fd.Close()

	data, err := f.readAll(fd)
	if err != nil {
		return nil, &Failure{Ref: ref, Phase: PhaseRead, Err: err}
	}
	return data, nil
}

func (f *Fetcher) readAll(r io.Reader) ([]byte, error) {
	limit := f.MaxBytes
	if limit <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, errTooLarge
	}
	return data, nil
}
