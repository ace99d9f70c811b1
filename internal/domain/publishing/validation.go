package publishing

import "fmt"

// Length bounds for validated text fields.
const (
	minMagazineNameLen = 2
	maxMagazineNameLen = 16
	minArticleTitleLen = 5
	maxArticleTitleLen = 50
)

// validateNonEmpty checks that a text field has at least one character.
// Returns a ValidationError naming the field when the value is empty.
func validateNonEmpty(field, value string) error {
	if len(value) == 0 {
		return &ValidationError{Field: field, Message: "must be a non-empty string"}
	}
	return nil
}

// validateLengthRange checks that a text field's length falls within
// [min, max] inclusive. Lengths are byte lengths, matching how the rest of
// the system measures text.
func validateLengthRange(field, value string, min, max int) error {
	if len(value) < min || len(value) > max {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d characters", min, max),
		}
	}
	return nil
}
