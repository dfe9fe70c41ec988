package utils

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorInstance *validator.Validate
	onceValidator     sync.Once
)

func GetValidator() *validator.Validate {
	onceValidator.Do(func() {
		validatorInstance = validator.New(validator.WithRequiredStructEnabled())
	})
	return validatorInstance
}

func ValidateStruct(request interface{}) error {
	return GetValidator().Struct(request)
}
