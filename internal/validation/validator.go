// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// MaxSkillLength is the longest skill label accepted by the "skill" tag.
const MaxSkillLength = 100

// FieldError describes one rejected field. Field is the JSON path of the
// value, e.g. "skills[2]".
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// RequestValidationError is returned by ValidateStruct when any field fails.
type RequestValidationError struct {
	Fields []FieldError
}

func (e *RequestValidationError) Error() string {
	switch len(e.Fields) {
	case 0:
		return "validation failed"
	case 1:
		return e.Fields[0].Message
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return strings.Join(parts, "; ")
}

// Details is the payload placed in the API error envelope.
func (e *RequestValidationError) Details() map[string]interface{} {
	return map[string]interface{}{"fields": e.Fields}
}

var validatorInstance = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("skill", isSkill)
	return v
})

// Validator returns the shared validator with the custom tags registered.
func Validator() *validator.Validate {
	return validatorInstance()
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

func isSkill(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if strings.TrimSpace(s) == "" || utf8.RuneCountInString(s) > MaxSkillLength {
		return false
	}
	return strings.IndexFunc(s, unicode.IsControl) < 0
}

// ValidateStruct checks s against its validate tags. It returns nil when s
// is valid.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: s was not a struct
		return &RequestValidationError{Fields: []FieldError{{Field: "body", Tag: "struct", Message: err.Error()}}}
	}

	out := &RequestValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldPath(fe),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: describe(fe),
		})
	}
	return out
}

// fieldPath drops the root struct name from the namespace so nested and
// indexed fields keep their position, e.g. "skills[1]".
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

func describe(fe validator.FieldError) string {
	name, param := fe.Field(), fe.Param()

	var unit string
	switch fe.Kind() {
	case reflect.String:
		unit = " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		unit = " items"
	}

	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "notblank":
		return name + " must not be blank"
	case "skill":
		return fmt.Sprintf("%s must be a skill name of at most %d characters without control characters", name, MaxSkillLength)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", name, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", name, param)
	case "min":
		if unit == " items" {
			return fmt.Sprintf("%s must contain at least %s%s", name, param, unit)
		}
		return fmt.Sprintf("%s must be at least %s%s", name, param, unit)
	case "max":
		if unit == " items" {
			return fmt.Sprintf("%s must contain at most %s%s", name, param, unit)
		}
		return fmt.Sprintf("%s must be at most %s%s", name, param, unit)
	}
	return fmt.Sprintf("%s failed %s validation", name, fe.Tag())
}
