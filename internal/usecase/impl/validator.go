package impl

import (
	domainerrors "catlog/internal/domain/errors"
)

// validate is shared by every workflow in this package. go-playground
// validators are safe for concurrent use and cache struct metadata, so one
// instance serves all requests.
var validate = domainerrors.NewValidate()

// validateInput checks input against its struct tags and converts the first
// violation into a validation error. Rejected input never reaches a
// repository.
func validateInput(input any) error {
	if err := validate.Struct(input); err != nil {
		return domainerrors.FromValidationErrors(err)
	}

	return nil
}
