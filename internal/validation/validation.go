package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/sergeii/netmon/internal/validation/validators"
)

func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("connstate", validators.ValidateConnState); err != nil {
		return nil, err
	}
	return validate, nil
}
