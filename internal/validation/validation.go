package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxBodyBytes - предел размера тела запроса.
const MaxBodyBytes = 1 << 20

// FieldError описывает одно нарушение: поле и причину.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Errors - список нарушений, отдаётся клиенту как есть в поле message.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + " " + fe.Error
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field создаёт список из одного нарушения.
func Field(field, reason string) Errors {
	return Errors{{Field: field, Error: reason}}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// в ошибках используем имена из json-тегов
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Bind декодирует JSON-тело запроса в dst и проверяет его.
func Bind(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return Field("body", "must be a valid JSON object")
	}
	return Decode(http.MaxBytesReader(nil, r.Body, MaxBodyBytes), dst)
}

// Decode читает один JSON-объект из body и проверяет теги validate.
func Decode(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	// после объекта допускаются только пробелы
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Field("body", "must contain a single JSON object")
	}
	return Struct(dst)
}

// Struct проверяет уже заполненную структуру.
func Struct(dst any) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Error: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", fe.Param())
	default:
		return "is invalid"
	}
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return Field(typeErr.Field, "must be "+jsonType(typeErr.Type))
	case errors.As(err, &maxErr):
		return Field("body", fmt.Sprintf("must not exceed %d bytes", maxErr.Limit))
	default:
		return Field("body", "must be a valid JSON object")
	}
}

func jsonType(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Bool:
		return "a boolean"
	default:
		return "a " + t.Kind().String()
	}
}
