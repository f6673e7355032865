// Package config loads chart options files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/wxaverages/internal/chart"
	wxerrors "github.com/alexisbeaulieu97/wxaverages/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})

	return validateInst
}

// LoadOptions reads the options file at path and lays it over
// chart.DefaultOptions. Keys absent from the file keep their defaults.
func LoadOptions(path string) (chart.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return chart.Options{}, wxerrors.NewParseError(path, 0, err)
	}
	return ParseOptions(path, data)
}

// ParseOptions decodes YAML options named name. Unknown keys are rejected.
func ParseOptions(name string, data []byte) (chart.Options, error) {
	opts := chart.DefaultOptions()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return chart.Options{}, wxerrors.NewParseError(name, extractLine(err), err)
	}

	if err := ValidateOptions(opts); err != nil {
		return chart.Options{}, err
	}
	return opts, nil
}

// ValidateOptions checks ranges and enumerations on opts.
func ValidateOptions(opts chart.Options) error {
	if err := validatorInstance().Struct(opts); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := ve.Field()
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return wxerrors.NewValidationError(field, msg, err)
	}

	return wxerrors.NewValidationError("options", err.Error(), err)
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
