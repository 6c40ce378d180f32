// Package bind decodes request bodies and runs struct validation with readable messages
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "huddle/internal/platform/errors"
	"huddle/internal/platform/logger"
	ptime "huddle/internal/platform/time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// maxBody caps a request body, schedule inputs are a few kilobytes
const maxBody = 1 << 20

var (
	once  sync.Once
	valid *validator.Validate
	trans ut.Translator
)

func validate() (*validator.Validate, ut.Translator) {
	once.Do(func() {
		loc := en.New()
		trans, _ = ut.New(loc, loc).GetTranslator("en")

		valid = validator.New(validator.WithRequiredStructEnabled())
		valid.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = en_translations.RegisterDefaultTranslations(valid, trans)

		translate(valid, "min", "{0} must be at least {1}")
		translate(valid, "max", "{0} must be at most {1}")

		_ = valid.RegisterValidation("instant", func(fl validator.FieldLevel) bool {
			_, err := ptime.ParseNaive(fl.Field().String())
			return err == nil
		})
		translate(valid, "instant", "{0} must be a datetime like 2025-01-01T09:00:00")
	})
	return valid, trans
}

// translate overrides the message for tag, {0} is the field and {1} the tag param
func translate(v *validator.Validate, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// ParseJSON decodes exactly one JSON value into T and validates it
// decode failures are ErrorCodeJSON, rule failures ErrorCodeValidation tagged with the field
func ParseJSON[T any](r *http.Request) (T, error) {
	var zero, dst T
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("close request body")
		}
	}()

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			return zero, perr.JSONErrf("empty body")
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	v, tr := validate()
	err := v.Struct(dst)
	if err == nil {
		return dst, nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		logger.C(r.Context()).Error().Err(err).Msg("validator failed")
		return zero, perr.JSONErrf("validation error")
	}
	fe := fields[0]
	return zero, perr.WithField(perr.New(perr.ErrorCodeValidation, fe.Translate(tr)), fe.Field())
}
