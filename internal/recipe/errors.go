package recipe

import (
	"errors"
	"fmt"
)

// Reason identifies why a recipe payload was rejected. Reasons are checked
// in the order they are declared.
type Reason string

const (
	ReasonIngredientsEmpty    Reason = "ingredients_empty"
	ReasonIngredientNotFound  Reason = "ingredient_not_found"
	ReasonIngredientDuplicate Reason = "ingredient_duplicate"
	ReasonAmountInvalid       Reason = "amount_invalid"
	ReasonTagsEmpty           Reason = "tags_empty"
	ReasonTagNotFound         Reason = "tag_not_found"
	ReasonNameTaken           Reason = "name_taken"
)

var (
	ErrNotFound = errors.New("recipe not found")
	ErrNotOwned = errors.New("recipe not owned by user")
)

type ValidationError struct {
	Reason  Reason
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func newValidationError(reason Reason, field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Reason:  reason,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// AsValidationError reports whether err carries a ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
