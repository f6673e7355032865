package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/wxaverages/internal/binding"
	"github.com/alexisbeaulieu97/wxaverages/internal/chart"
	"github.com/alexisbeaulieu97/wxaverages/internal/config"
	"github.com/alexisbeaulieu97/wxaverages/internal/logger"
	"github.com/alexisbeaulieu97/wxaverages/internal/render"
	"github.com/alexisbeaulieu97/wxaverages/internal/source"
	"github.com/alexisbeaulieu97/wxaverages/internal/theme"
	"github.com/alexisbeaulieu97/wxaverages/pkg/diff"
)

type renderOptions struct {
	OptionsPath string
	Source      string
	BaseDir     string
	Format      string
	OutPath     string
	Scripts     []string
	Width       int
	Height      int
	Timeout     time.Duration
	NoTheme     bool
	Check       bool
	Verbose     bool
	JSONLogs    bool
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fetch the averages document and render the chart",
		Long: `Render builds the chart from its options, fetches the averages document once,
binds it into the chart and renders the result as an HTML page or a PNG image.
When the document cannot be used an HTML render writes a placeholder page
instead and the command fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose
			opts.JSONLogs = root.jsonLogs
			return runRender(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OptionsPath, "options", "c", "", "YAML options file layered over the default chart options")
	cmd.Flags().StringVarP(&opts.Source, "source", "s", "", "Averages document URL or path; overrides json_source")
	cmd.Flags().StringVar(&opts.BaseDir, "base-dir", ".", "Directory relative document paths are read from")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", render.FormatHTML, "Output format: html or png")
	cmd.Flags().StringVarP(&opts.OutPath, "out", "o", "-", "Output file, - for stdout")
	cmd.Flags().StringSliceVar(&opts.Scripts, "script", nil, "Highcharts script URLs included by HTML pages")
	cmd.Flags().IntVar(&opts.Width, "width", render.DefaultImageWidth, "PNG width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", render.DefaultImageHeight, "PNG height in pixels")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", binding.DefaultTimeout, "Timeout for fetching the averages document; accepts Go duration strings (e.g. 10s)")
	cmd.Flags().BoolVar(&opts.NoTheme, "no-theme", false, "Render without the gray theme")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "Compare the rendered output with --out instead of writing it; fails when they differ")

	return cmd
}

func runRender(ctx context.Context, stdout, stderr io.Writer, opts renderOptions) error {
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format != render.FormatHTML && format != render.FormatPNG {
		return fmt.Errorf("unsupported format %q: use %s or %s", opts.Format, render.FormatHTML, render.FormatPNG)
	}
	if opts.Check && (opts.OutPath == "" || opts.OutPath == "-") {
		return fmt.Errorf("--check needs --out to name the published file")
	}

	chartOpts := chart.DefaultOptions()
	if opts.OptionsPath != "" {
		loaded, err := config.LoadOptions(opts.OptionsPath)
		if err != nil {
			return fmt.Errorf("load options: %w", err)
		}
		chartOpts = loaded
	}
	if opts.Source != "" {
		chartOpts.JSONSource = opts.Source
	}

	showProgress := !opts.Verbose && !opts.JSONLogs && isTerminal(stderr)
	level := "info"
	switch {
	case opts.Verbose:
		level = "debug"
	case showProgress:
		level = "warn"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: !opts.JSONLogs,
		Writer:        stderr,
		Component:     "render",
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	var out bytes.Buffer
	var engine render.Engine
	switch format {
	case render.FormatPNG:
		engine = render.NewImageEngine(&out, opts.Width, opts.Height)
	default:
		engine = render.NewHTMLEngine(&out, opts.Scripts...)
	}
	if !opts.NoTheme {
		theme.Apply(engine)
	}

	cfg := chart.Build(chartOpts)
	fetcher := source.NewFetcher(opts.BaseDir, &http.Client{})
	pipeline := binding.New(fetcher, engine,
		binding.WithTimeout(opts.Timeout),
		binding.WithLogger(log),
	)

	started := time.Now()
	var handle *render.Chart
	var runErr error
	if showProgress {
		task := runWithProgress(ctx, stderr, chartOpts.JSONSource, func(ctx context.Context) *binding.Task {
			return pipeline.Start(ctx, cfg, chartOpts.JSONSource)
		})
		handle, runErr = task.Wait(context.Background())
	} else {
		handle, runErr = pipeline.BindAndRender(ctx, cfg, chartOpts.JSONSource)
	}
	if runErr != nil {
		log.Error(ctx, "chart unavailable", "code", string(binding.CodeOf(runErr)), "error", runErr)
		if format == render.FormatHTML && !opts.Check {
			out.Reset()
			if err := render.WritePlaceholder(&out, chartOpts.RenderTo, chartOpts.Title, runErr); err != nil {
				return fmt.Errorf("write placeholder: %w", err)
			}
			if err := writeOutput(stdout, opts.OutPath, out.Bytes()); err != nil {
				return err
			}
		}
		return runErr
	}

	if opts.Check {
		return checkOutput(stdout, opts.OutPath, out.Bytes())
	}

	if err := writeOutput(stdout, opts.OutPath, out.Bytes()); err != nil {
		return err
	}

	if opts.OutPath != "" && opts.OutPath != "-" {
		fmt.Fprintln(stdout, formatSummary(renderSummary{
			RenderTo: handle.RenderTo,
			Format:   handle.Format,
			Bytes:    handle.Bytes,
			Source:   chartOpts.JSONSource,
			OutPath:  opts.OutPath,
			Duration: time.Since(started),
		}, isTerminal(stdout)))
	}
	return nil
}

// checkOutput reports whether the file at path already holds rendered.
func checkOutput(stdout io.Writer, path string, rendered []byte) error {
	published, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read published output: %w", err)
	}

	changes := diff.Unified(published, rendered, path, "rendered")
	if changes == "" {
		fmt.Fprintf(stdout, "%s is up to date\n", path)
		return nil
	}

	fmt.Fprint(stdout, changes)
	return fmt.Errorf("%s is out of date", path)
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
