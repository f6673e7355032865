package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	wxerrors "github.com/alexisbeaulieu97/wxaverages/pkg/errors"
)

func TestHTTPFetcherReturnsBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/json/averages.json", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(minimalDocument))
	}))
	t.Cleanup(srv.Close)

	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)

	f := &HTTPFetcher{Client: srv.Client(), BaseURL: base}
	body, err := f.Fetch(context.Background(), "json/averages.json")
	require.NoError(t, err)
	require.JSONEq(t, minimalDocument, string(body))
}

func TestHTTPFetcherNon2xxIsFetchError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	f := &HTTPFetcher{Client: srv.Client()}
	body, err := f.Fetch(context.Background(), srv.URL+"/json/averages.json")
	require.Nil(t, body)

	var fetchErr *wxerrors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
}

func TestHTTPFetcherHonoursContextDeadline(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	f := &HTTPFetcher{Client: srv.Client()}
	_, err := f.Fetch(ctx, srv.URL)
	require.Error(t, err)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestFileFetcherResolvesAgainstRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "json"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "json", "averages.json"), []byte(minimalDocument), 0o644))

	f := &FileFetcher{Root: root}
	body, err := f.Fetch(context.Background(), "json/averages.json")
	require.NoError(t, err)
	require.Equal(t, minimalDocument, string(body))

	_, err = f.Fetch(context.Background(), "json/missing.json")
	var fetchErr *wxerrors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFileFetcherCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&FileFetcher{}).Fetch(ctx, "testdata/averages.json")
	require.True(t, errors.Is(err, context.Canceled))
}

func TestLocationFetcherDispatch(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(minimalDocument))
	}))
	t.Cleanup(srv.Close)

	f := NewFetcher("testdata", srv.Client())

	_, err := f.Fetch(context.Background(), srv.URL+"/averages.json")
	require.NoError(t, err)
	require.Equal(t, int32(1), hits.Load())

	body, err := f.Fetch(context.Background(), "averages.json")
	require.NoError(t, err)
	require.Contains(t, string(body), "temperatureplot")
	require.Equal(t, int32(1), hits.Load())
}

func TestIsRemote(t *testing.T) {
	t.Parallel()

	require.True(t, IsRemote("http://station.example/json/averages.json"))
	require.True(t, IsRemote(" HTTPS://station.example/a.json"))
	require.False(t, IsRemote("json/averages.json"))
	require.False(t, IsRemote("/var/www/json/averages.json"))
}
