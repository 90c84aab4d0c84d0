package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// timeOfDayRx accepts the two clock formats the engine works with:
// HH:MM on requests and HH:MM:SS on stored values.
var timeOfDayRx = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
			return timeOfDayRx.MatchString(fl.Field().String())
		})
	}
}
