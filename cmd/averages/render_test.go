package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/wxaverages/internal/binding"
)

const sourceTestdata = "../../internal/source/testdata"

func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRenderCommandWritesHTMLFromFile(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "averages.html")
	stdout, stderr, err := executeRoot(t, "render", "--base-dir", sourceTestdata, "--source", "averages.json", "--out", out)
	require.NoError(t, err, stderr)

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(page), `<div id="monthaveragesplot"></div>`)
	require.Contains(t, string(page), `"text":"Updated: 16 October 2026 06:00"`)
	require.Contains(t, string(page), `"backgroundColor":"rgb(208, 208, 208)"`)

	require.Contains(t, stdout, "Chart rendered")
	require.Contains(t, stdout, "monthaveragesplot")
	require.Contains(t, stderr, "chart rendered")
}

func TestRenderCommandWritesPNGFromServer(t *testing.T) {
	t.Parallel()

	body, err := os.ReadFile(filepath.Join(sourceTestdata, "averages.json"))
	require.NoError(t, err)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)

	out := filepath.Join(t.TempDir(), "averages.png")
	_, stderr, err := executeRoot(t, "render", "--format", "png", "--width", "640", "--height", "320",
		"--source", server.URL+"/json/averages.json", "--out", out)
	require.NoError(t, err, stderr)

	image, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(image, []byte("\x89PNG\r\n\x1a\n")))
}

func TestRenderCommandWritesPlaceholderOnFetchFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	out := filepath.Join(t.TempDir(), "averages.html")
	_, _, err := executeRoot(t, "render", "--source", server.URL+"/averages.json", "--out", out)
	require.Error(t, err)
	require.Equal(t, binding.ErrCodeFetch, binding.CodeOf(err))

	page, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	require.Contains(t, string(page), "chart-unavailable")
	require.Contains(t, string(page), "503")
	require.NotContains(t, string(page), "Highcharts.Chart")
}

func TestRenderCommandPNGFailureWritesNothing(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "averages.png")
	_, _, err := executeRoot(t, "render", "--format", "png", "--base-dir", t.TempDir(), "--source", "missing.json", "--out", out)
	require.Error(t, err)
	require.Equal(t, binding.ErrCodeFetch, binding.CodeOf(err))
	require.NoFileExists(t, out)
}

func TestRenderCommandWritesToStdout(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := executeRoot(t, "render", "--base-dir", sourceTestdata, "--source", "averages.json", "--no-theme")
	require.NoError(t, err, stderr)
	require.Contains(t, stdout, "new Highcharts.Chart(options)")
	require.NotContains(t, stdout, "rgb(208, 208, 208)")
	require.NotContains(t, stdout, "Chart rendered")
}

func TestRenderCommandAppliesOptionsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	optionsPath := filepath.Join(dir, "options.yaml")
	require.NoError(t, os.WriteFile(optionsPath, []byte("render_to: homeplot\njson_source: averages.json\nshow_legend: false\n"), 0o600))

	stdout, stderr, err := executeRoot(t, "render", "--options", optionsPath, "--base-dir", sourceTestdata)
	require.NoError(t, err, stderr)
	require.Contains(t, stdout, `<div id="homeplot"></div>`)
	require.Contains(t, stdout, `"enabled":false`)
}

func TestRenderCommandRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, _, err := executeRoot(t, "render", "--format", "svg")
	require.ErrorContains(t, err, "unsupported format")

	dir := t.TempDir()
	optionsPath := filepath.Join(dir, "options.yaml")
	require.NoError(t, os.WriteFile(optionsPath, []byte("updated_align: middle\n"), 0o600))
	_, _, err = executeRoot(t, "render", "--options", optionsPath)
	require.ErrorContains(t, err, "load options")
}

func TestRunRenderTimesOut(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	var stdout, stderr bytes.Buffer
	err := runRender(context.Background(), &stdout, &stderr, renderOptions{
		Source:  server.URL + "/averages.json",
		Format:  "html",
		OutPath: "-",
		Timeout: 50 * time.Millisecond,
	})
	require.Error(t, err)
	require.Equal(t, binding.ErrCodeTimeout, binding.CodeOf(err))
	require.Contains(t, stdout.String(), "chart-unavailable")
}

func TestFormatSummaryPlain(t *testing.T) {
	t.Parallel()

	text := formatSummary(renderSummary{
		RenderTo: "monthaveragesplot",
		Format:   "html",
		Bytes:    2048,
		Source:   "json/averages.json",
		OutPath:  "out.html",
		Duration: 1500 * time.Microsecond,
	}, false)

	require.Contains(t, text, "Chart rendered")
	require.Contains(t, text, "target:   monthaveragesplot")
	require.Contains(t, text, "out.html (2048 bytes)")
	require.NotContains(t, text, "\x1b[")
}

func TestRenderCommandCheck(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "averages.html")
	args := []string{"render", "--base-dir", sourceTestdata, "--source", "averages.json", "--out", out}

	stdout, _, err := executeRoot(t, append(args, "--check")...)
	require.ErrorContains(t, err, "out of date")
	require.Contains(t, stdout, "+++ rendered")
	require.NoFileExists(t, out)

	_, _, err = executeRoot(t, args...)
	require.NoError(t, err)

	stdout, _, err = executeRoot(t, append(args, "--check")...)
	require.NoError(t, err)
	require.Contains(t, stdout, "is up to date")

	require.NoError(t, os.WriteFile(out, []byte("<html>stale</html>\n"), 0o644))
	stdout, _, err = executeRoot(t, append(args, "--check")...)
	require.Error(t, err)
	require.Contains(t, stdout, "-<html>stale</html>")

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "<html>stale</html>\n", string(page))
}

func TestRenderCommandCheckNeedsOutputFile(t *testing.T) {
	t.Parallel()

	_, _, err := executeRoot(t, "render", "--check")
	require.ErrorContains(t, err, "--check needs --out")
}
