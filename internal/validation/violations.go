package validation

import (
	"errors"
	"sort"

	validation "github.com/jellydator/validation"
)

// Violation describes a single field that failed validation.
type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToViolations flattens a validation error into a list of violations sorted by field.
// Nested struct errors are reported with dotted field names. Errors that are not
// produced by the validation package become a single violation with an empty field.
func ToViolations(err error) []Violation {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return []Violation{{Code: "validation_invalid", Message: err.Error()}}
	}

	violations := make([]Violation, 0, len(errs))
	collectViolations("", errs, &violations)

	sort.Slice(violations, func(i, j int) bool {
		return violations[i].Field < violations[j].Field
	})
	return violations
}

func collectViolations(prefix string, errs validation.Errors, out *[]Violation) {
	for field, fieldErr := range errs {
		name := field
		if prefix != "" {
			name = prefix + "." + field
		}

		var nested validation.Errors
		if errors.As(fieldErr, &nested) {
			collectViolations(name, nested, out)
			continue
		}

		violation := Violation{Field: name, Code: "validation_invalid", Message: fieldErr.Error()}
		var ruleErr validation.Error
		if errors.As(fieldErr, &ruleErr) {
			violation.Code = ruleErr.Code()
		}
		*out = append(*out, violation)
	}
}
