// Package boundary is the input validation layer that sits in front of the
// engine. The engine itself never clamps or rejects anything — a negative
// weight flows through its arithmetic untouched — so any screening of
// caller-supplied records has to happen here, before the data reaches
// gradebook.Aggregate.
package boundary

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/smartgrades/gradecore/gradebook"
)

// AssessmentInput is the screened form of one incoming assessment row.
type AssessmentInput struct {
	Name   string   `json:"name" validate:"required"`
	Weight float64  `json:"weight" validate:"gte=0,lte=100"`
	Score  *float64 `json:"score,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// Validator screens assessment rows and reports field errors in English.
type Validator struct {
	validate *govalidator.Validate
	trans    ut.Translator
}

// NewValidator builds a Validator with English translations registered.
func NewValidator() *Validator {
	v := govalidator.New()

	// Use JSON tag names for field names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	return &Validator{validate: v, trans: trans}
}

// Assessment validates a single row. Returns nil on success or a map of
// field name → human-readable message.
func (v *Validator) Assessment(in AssessmentInput) map[string]string {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}
	return v.translate(err)
}

// Assessments validates a whole list and converts it into engine records.
// The first invalid row aborts the conversion; its index and field errors
// come back in the returned RowError.
func (v *Validator) Assessments(in []AssessmentInput) ([]gradebook.Assessment, *RowError) {
	out := make([]gradebook.Assessment, 0, len(in))

	for i, row := range in {
		if fields := v.Assessment(row); fields != nil {
			return nil, &RowError{Row: i, Fields: fields}
		}
		if row.Score != nil {
			out = append(out, gradebook.Graded(row.Name, row.Weight, *row.Score))
		} else {
			out = append(out, gradebook.Ungraded(row.Name, row.Weight))
		}
	}

	return out, nil
}

// RowError reports which incoming row failed validation and why.
type RowError struct {
	Row    int               `json:"row"`
	Fields map[string]string `json:"fields"`
}

// Error implements error.
func (e *RowError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("row %d: %s", e.Row, strings.Join(parts, "; "))
}

// translate flattens a validation error into field → message. Non-field
// errors land under "detail".
func (v *Validator) translate(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(v.trans)
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}
