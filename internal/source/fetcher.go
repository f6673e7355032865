package source

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	wxerrors "github.com/alexisbeaulieu97/wxaverages/pkg/errors"
)

// maxPayloadBytes bounds how much of a response body is read.
const maxPayloadBytes = 8 << 20

// Fetcher retrieves the raw bytes of a source document.
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// HTTPFetcher loads documents over HTTP(S). Relative locations are resolved
// against BaseURL when it is set.
type HTTPFetcher struct {
	Client  *http.Client
	BaseURL *url.URL
}

// Fetch issues a single GET. Any non-2xx status is a *errors.FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	target, err := f.resolve(location)
	if err != nil {
		return nil, wxerrors.NewFetchError(location, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, wxerrors.NewFetchError(target, err)
	}
	req.Header.Set("Accept", "application/json")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, wxerrors.NewFetchError(target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, wxerrors.NewStatusError(target, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, wxerrors.NewFetchError(target, err)
	}
	return body, nil
}

func (f *HTTPFetcher) resolve(location string) (string, error) {
	ref, err := url.Parse(location)
	if err != nil {
		return "", err
	}
	if f.BaseURL == nil || ref.IsAbs() {
		return ref.String(), nil
	}
	return f.BaseURL.ResolveReference(ref).String(), nil
}

// FileFetcher reads documents from disk. Relative paths are resolved against
// Root.
type FileFetcher struct {
	Root string
}

func (f *FileFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, wxerrors.NewFetchError(location, err)
	}

	path := location
	if !filepath.IsAbs(path) && f.Root != "" {
		path = filepath.Join(f.Root, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, wxerrors.NewFetchError(path, err)
	}
	defer file.Close()

	body, err := io.ReadAll(io.LimitReader(file, maxPayloadBytes))
	if err != nil {
		return nil, wxerrors.NewFetchError(path, err)
	}
	return body, nil
}

// LocationFetcher dispatches http and https locations to HTTP and everything
// else to File.
type LocationFetcher struct {
	HTTP *HTTPFetcher
	File *FileFetcher
}

// NewFetcher returns a LocationFetcher reading local paths relative to root.
func NewFetcher(root string, client *http.Client) *LocationFetcher {
	return &LocationFetcher{
		HTTP: &HTTPFetcher{Client: client},
		File: &FileFetcher{Root: root},
	}
}

func (f *LocationFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if IsRemote(location) {
		return f.HTTP.Fetch(ctx, location)
	}
	return f.File.Fetch(ctx, strings.TrimPrefix(location, "file://"))
}

// IsRemote reports whether location is an http or https URL.
func IsRemote(location string) bool {
	lower := strings.ToLower(strings.TrimSpace(location))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

var (
	_ Fetcher = (*HTTPFetcher)(nil)
	_ Fetcher = (*FileFetcher)(nil)
	_ Fetcher = (*LocationFetcher)(nil)
)
