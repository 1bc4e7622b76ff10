// Package bind decodes and validates JSON request bodies
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"sync"

	perr "vizdash/internal/platform/errors"
	"vizdash/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ValidatorSvc is the shared validator and its english translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// columnName matches dataset column names accepted in requests
var columnName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// Get returns the validator, building it on first use
func Get() *ValidatorSvc {
	vOnce.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		translate(v, trans, "min", "{0} must be at least {1}", true)
		translate(v, trans, "max", "{0} must be at most {1}", true)

		_ = v.RegisterValidation("column", func(fl validator.FieldLevel) bool {
			return columnName.MatchString(fl.Field().String())
		})
		translate(v, trans, "column", "{0} must be a column name", false)

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// jsonName reports fields by their json name so messages match the wire
func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// translate registers a short message for tag; withParam passes the tag parameter as {1}
func translate(v *validator.Validate, trans ut.Translator, tag, text string, withParam bool) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			params := []string{fe.Field()}
			if withParam {
				params = append(params, fe.Param())
			}
			msg, _ := t.T(tag, params...)
			return msg
		},
	)
}

// JSONOptions tunes ParseJSON
type JSONOptions struct {
	MaxBytes        int64
	DisallowUnknown bool
	// RequireBody rejects an empty body instead of yielding the zero value
	RequireBody bool
}

// DefaultJSONOptions suits the filter payloads: small, strict, body optional
func DefaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 64 << 10, DisallowUnknown: true}
}

// ParseJSON decodes one JSON value into T and validates it
// an empty body yields the validated zero value unless RequireBody is set
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := DefaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}

	var body io.Reader = http.NoBody
	if r.Body != nil {
		defer func() {
			if err := r.Body.Close(); err != nil {
				logger.C(r.Context()).Debug().Err(err).Msg("close request body")
			}
		}()
		body = r.Body
	}
	if o.MaxBytes > 0 {
		// one extra byte tells an exact fit from an overflow
		body = io.LimitReader(body, o.MaxBytes+1)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return zero, perr.Wrap(err, perr.ErrorCodeJSON, "read body")
	}
	if o.MaxBytes > 0 && int64(len(raw)) > o.MaxBytes {
		return zero, perr.JSONErrf("body exceeds %d bytes", o.MaxBytes)
	}

	var dst T
	if len(strings.TrimSpace(string(raw))) == 0 {
		if o.RequireBody {
			return zero, perr.JSONErrf("empty body")
		}
	} else {
		dec := json.NewDecoder(strings.NewReader(string(raw)))
		if o.DisallowUnknown {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(&dst); err != nil {
			return zero, perr.JSONErrf("invalid JSON: %v", err)
		}
		if dec.More() {
			return zero, perr.JSONErrf("unexpected trailing data")
		}
	}

	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Validate runs struct validation and maps the first failure to a Validation error
func Validate(v any) error {
	if reflect.Indirect(reflect.ValueOf(v)).Kind() != reflect.Struct {
		return nil
	}
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Named("bind").Error().Err(inv).Msg("validator internal error")
		return perr.Internalf("validation error")
	}
	field, msg := ValidationFieldAndMessage(err)
	return perr.WithField(perr.Validationf("%s", msg), field)
}

// ValidationFieldAndMessage returns the first failing field and its translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Get().Translator)
	}
	return "", err.Error()
}
