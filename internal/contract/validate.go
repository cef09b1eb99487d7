package contract

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/portfolio/backend/internal/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON names so ValidationError.Field matches the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateCreateInput decodes a POST /api/contact body and validates it.
// Any returned error is a *ValidationError.
func ValidateCreateInput(r io.Reader) (model.ContactCreateInput, error) {
	in, err := DecodeCreateInput(r)
	if err != nil {
		return model.ContactCreateInput{}, err
	}
	if err := Validate(in); err != nil {
		return model.ContactCreateInput{}, err
	}
	return in, nil
}

// DecodeCreateInput decodes a POST /api/contact body without checking field
// constraints. Malformed JSON, trailing data after the object and non-string
// fields yield a *ValidationError.
func DecodeCreateInput(r io.Reader) (model.ContactCreateInput, error) {
	var in model.ContactCreateInput
	dec := json.NewDecoder(r)
	if err := dec.Decode(&in); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return model.ContactCreateInput{}, &ValidationError{Message: "Expected string", Field: typeErr.Field}
		}
		return model.ContactCreateInput{}, &ValidationError{Message: "Invalid request"}
	}
	// The body must hold exactly one JSON value.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return model.ContactCreateInput{}, &ValidationError{Message: "Invalid request"}
	}
	return in, nil
}

// Validate checks in field by field in declaration order (name, email,
// subject, message) and reports only the first violation.
func Validate(in model.ContactCreateInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: "Invalid request"}
	}
	first := fieldErrs[0]
	return &ValidationError{Message: messageFor(first), Field: first.Field()}
}

func messageFor(fe validator.FieldError) string {
	label := fe.Field()
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		return label + " is too short"
	case "max":
		return label + " is too long"
	case "email":
		return "Enter a valid email"
	default:
		return label + " is invalid"
	}
}
