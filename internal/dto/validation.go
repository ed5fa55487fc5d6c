package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"summer-success/tracker/internal/model"
)

// RegisterValidators adds the custom tags used by request DTOs to gin's
// validator engine. Safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("isodate", isoDate); err != nil {
		return err
	}
	return v.RegisterValidation("activitytype", activityType)
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(model.DateLayout, fl.Field().String())
	return err == nil
}

func activityType(fl validator.FieldLevel) bool {
	return model.ActivityType(fl.Field().String()).Valid()
}
