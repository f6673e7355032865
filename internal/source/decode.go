package source

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	wxerrors "github.com/alexisbeaulieu97/wxaverages/pkg/errors"
)

const payloadName = "payload"

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance reports field paths using the JSON key names so errors
// point at the payload the way its producer wrote it.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// Decode reads an averages document from r and checks its complete shape.
// Syntax problems are reported as *errors.ParseError, shape problems as
// *errors.ValidationError. A returned Record is always fully populated.
func Decode(r io.Reader) (*Record, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, wxerrors.NewParseError(payloadName, 0, err)
	}
	return Validate(doc)
}

// Validate checks that doc holds exactly one complete record.
func Validate(doc Document) (*Record, error) {
	if len(doc) != 1 {
		return nil, wxerrors.NewValidationError(payloadName, fmt.Sprintf("expected exactly one record, found %d", len(doc)), nil)
	}

	record := doc[0]
	if err := validatorInstance().Struct(&record); err != nil {
		return nil, convertValidationError(err)
	}
	return &record, nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := jsonFieldPath(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "required" {
			msg = fmt.Sprintf("%s is missing", field)
		}
		return wxerrors.NewValidationError(field, msg, err)
	}
	return wxerrors.NewValidationError(payloadName, err.Error(), err)
}

// jsonFieldPath drops the leading struct name from the validator namespace.
func jsonFieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
