// Package validation provides a small chainable builder that accumulates
// field-keyed error messages. The message strings match the wording the
// API has always returned, so they are built here rather than derived
// from struct tags.
package validation

import (
	"fmt"
	"net/mail"

	"github.com/hrcore/hr-management/internal"
)

type ValidatorFunc func(value interface{}) (string, bool)

type FieldValidator struct {
	FieldName  string
	Value      interface{}
	Validators []ValidatorFunc
}

type Builder struct {
	fields []FieldValidator
}

func New() *Builder {
	return &Builder{fields: make([]FieldValidator, 0)}
}

func (b *Builder) Field(name string, value interface{}) *FieldValidator {
	fv := FieldValidator{
		FieldName:  name,
		Value:      value,
		Validators: make([]ValidatorFunc, 0),
	}
	b.fields = append(b.fields, fv)
	return &b.fields[len(b.fields)-1]
}

func isBlank(value interface{}) bool {
	switch v := value.(type) {
	case string:
		return v == ""
	case *string:
		return v == nil || *v == ""
	case int64:
		return v == 0
	case *int64:
		return v == nil || *v == 0
	case nil:
		return true
	}
	return false
}

func asString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	}
	return "", false
}

func (fv *FieldValidator) Required() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) (string, bool) {
		if isBlank(value) {
			return fmt.Sprintf("The %s field is required.", fv.FieldName), false
		}
		return "", true
	})
	return fv
}

func (fv *FieldValidator) MaxLength(max int) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) (string, bool) {
		if v, ok := asString(value); ok && len(v) > max {
			return fmt.Sprintf("The %s field must not be greater than %d characters.", fv.FieldName, max), false
		}
		return "", true
	})
	return fv
}

func (fv *FieldValidator) MinLength(min int) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) (string, bool) {
		if v, ok := asString(value); ok && v != "" && len(v) < min {
			return fmt.Sprintf("The %s field must be at least %d characters.", fv.FieldName, min), false
		}
		return "", true
	})
	return fv
}

func (fv *FieldValidator) Email() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) (string, bool) {
		if v, ok := asString(value); ok && v != "" {
			if _, err := mail.ParseAddress(v); err != nil {
				return fmt.Sprintf("The %s field must be a valid email address.", fv.FieldName), false
			}
		}
		return "", true
	})
	return fv
}

func (fv *FieldValidator) Custom(validator ValidatorFunc) *FieldValidator {
	fv.Validators = append(fv.Validators, validator)
	return fv
}

// Err returns a validation AppError carrying every accumulated message,
// or nil when all fields pass. A field stops at its first failing rule
// so "required" failures are not followed by length noise.
func (b *Builder) Err() *internal.AppError {
	fieldErrors := internal.FieldErrors{}

	for _, field := range b.fields {
		for _, validator := range field.Validators {
			message, ok := validator(field.Value)
			if !ok {
				fieldErrors.Add(field.FieldName, message)
				break
			}
		}
	}

	if fieldErrors.Empty() {
		return nil
	}
	return internal.NewValidationError(fieldErrors)
}

// Messages used by services for checks the builder cannot express on its
// own (uniqueness, foreign-key existence).
func TakenMessage(field string) string {
	return fmt.Sprintf("The %s has already been taken.", field)
}

func InvalidReferenceMessage(field string) string {
	return fmt.Sprintf("The selected %s is invalid.", field)
}
