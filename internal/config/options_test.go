package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/wxaverages/internal/chart"
	wxerrors "github.com/alexisbeaulieu97/wxaverages/pkg/errors"
)

func writeOptions(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadOptions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, opts chart.Options, err error)
	}{
		{
			name:     "empty file keeps defaults",
			contents: "",
			assert: func(t *testing.T, opts chart.Options, err error) {
				require.NoError(t, err)
				require.Equal(t, chart.DefaultOptions(), opts)
			},
		},
		{
			name: "overrides replace defaults",
			contents: `title: "Averages at Home"
show_legend: false
marker_enabled: true
marker_symbol: diamond
av_temp_range_opacity: 0.25
y_axis_title_color: "#123456"
months: [J, F, M, A, M, J, J, A, S, O, N, D]
`,
			assert: func(t *testing.T, opts chart.Options, err error) {
				require.NoError(t, err)
				require.Equal(t, "Averages at Home", opts.Title)
				require.False(t, opts.ShowLegend)
				require.True(t, opts.MarkerEnabled)
				require.Equal(t, "diamond", opts.MarkerSymbol)
				require.Equal(t, 0.25, opts.AvTempRangeOpacity)
				require.Equal(t, "#123456", opts.YAxisTitleColor)
				require.Equal(t, "J", opts.Months[0])
				require.Equal(t, "monthaveragesplot", opts.RenderTo)
				require.Equal(t, "#72B2C4", opts.AvgRainfallColor)
			},
		},
		{
			name:     "eleven months rejected",
			contents: "months: [a, b, c, d, e, f, g, h, i, j, k]\n",
			assert:   requireValidationField("months"),
		},
		{
			name:     "opacity above one rejected",
			contents: "av_temp_range_opacity: 1.5\n",
			assert:   requireValidationField("av_temp_range_opacity"),
		},
		{
			name:     "unknown alignment rejected",
			contents: "updated_align: middle\n",
			assert:   requireValidationField("updated_align"),
		},
		{
			name:     "empty render target rejected",
			contents: "render_to: \"\"\n",
			assert:   requireValidationField("render_to"),
		},
		{
			name:     "negative line width rejected",
			contents: "y_axis_line_width: -1\n",
			assert:   requireValidationField("y_axis_line_width"),
		},
		{
			name:     "malformed yaml reports line",
			contents: "title: ok\nmonths: [a, b\n",
			assert: func(t *testing.T, _ chart.Options, err error) {
				var parseErr *wxerrors.ParseError
				require.True(t, errors.As(err, &parseErr))
			},
		},
		{
			name:     "unknown key rejected",
			contents: "title: ok\ncolour: red\n",
			assert: func(t *testing.T, _ chart.Options, err error) {
				var parseErr *wxerrors.ParseError
				require.True(t, errors.As(err, &parseErr))
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "wrong type reports line",
			contents: "title: ok\nshow_legend: [1]\n",
			assert: func(t *testing.T, _ chart.Options, err error) {
				var parseErr *wxerrors.ParseError
				require.True(t, errors.As(err, &parseErr))
				require.Equal(t, 2, parseErr.Line)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			opts, err := LoadOptions(writeOptions(t, tc.contents))
			tc.assert(t, opts, err)
		})
	}
}

func requireValidationField(field string) func(t *testing.T, opts chart.Options, err error) {
	return func(t *testing.T, _ chart.Options, err error) {
		t.Helper()
		require.Error(t, err)
		var validationErr *wxerrors.ValidationError
		require.True(t, errors.As(err, &validationErr), "expected validation error, got %v", err)
		require.Equal(t, field, validationErr.Field)
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadOptions(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *wxerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateOptionsAcceptsDefaults(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateOptions(chart.DefaultOptions()))
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 7, extractLine(errors.New("yaml: line 7: did not find expected key")))
	require.Zero(t, extractLine(errors.New("no position")))
}
