package service

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Shahd3/iCare/internal/timerule"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

var weekdayNames = map[string]struct{}{
	"Sun": {}, "Mon": {}, "Tue": {}, "Wed": {}, "Thu": {}, "Fri": {}, "Sat": {},
}

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("clock12", func(fl validator.FieldLevel) bool {
			_, _, err := timerule.ParseClock(fl.Field().String())
			return err == nil
		})
		validate.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			_, ok := weekdayNames[fl.Field().String()]
			return ok
		})
	})
}
