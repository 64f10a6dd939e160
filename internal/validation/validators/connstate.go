package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/sergeii/netmon/internal/core/entities/connstate"
)

// ValidateConnState accepts a field whose value
// names a known connectivity status, such as "online"
func ValidateConnState(fl validator.FieldLevel) bool {
	_, err := connstate.Parse(fl.Field().String())
	return err == nil
}
