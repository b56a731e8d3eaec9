package utils

import (
	"DocTrackerGo/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding rules to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("daytype", validateDayType)
}

func validateDayType(fl validator.FieldLevel) bool {
	return models.DayType(fl.Field().String()).Valid()
}
