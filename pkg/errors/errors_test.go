package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("options.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "options.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "options.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("temperatureplot.series.outTempMean", "is required", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "temperatureplot.series.outTempMean", validationErr.Field)
	require.Contains(t, err.Error(), "is required")
}

func TestFetchErrorVariants(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("connection refused")
	err := NewFetchError("http://example.invalid/averages.json", underlying)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Zero(t, fetchErr.StatusCode)
	require.True(t, stdErrors.Is(err, underlying))

	status := NewStatusError("http://example.invalid/averages.json", 404)
	require.ErrorAs(t, status, &fetchErr)
	require.Equal(t, 404, fetchErr.StatusCode)
	require.Contains(t, status.Error(), "unexpected status 404")
}

func TestRenderErrorIncludesTarget(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("no series")
	err := NewRenderError("monthaveragesplot", underlying)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "monthaveragesplot", renderErr.Target)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "[monthaveragesplot]")
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var fetchErr *FetchError
	require.Empty(t, parseErr.Error())
	require.Empty(t, fetchErr.Error())
	require.Nil(t, fetchErr.Unwrap())
}
