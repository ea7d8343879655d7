// Package validators wires the custom validation tags used by domain entities
// into a shared go-playground validator instance.
package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// FutureTolerance is how far ahead of the server clock an observed event may be
// timestamped before notfuture rejects it.
const FutureTolerance = 5 * time.Minute

var (
	instance *validator.Validate
	once     sync.Once

	timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

	// now is swapped in tests.
	now = time.Now
)

// Get returns the shared validator with all custom tags registered.
func Get() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		mustRegister(v, "notfuture", NotFutureValidation)
		mustRegister(v, "timeofday", TimeOfDayValidation)
		instance = v
	})
	return instance
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("failed to register %s validator: %v", tag, err))
	}
}

// NotFutureValidation rejects timestamps later than now plus FutureTolerance.
// Zero times pass; pair with required when the field is mandatory.
func NotFutureValidation(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	if t.IsZero() {
		return true
	}
	return !t.After(now().Add(FutureTolerance))
}

// TimeOfDayValidation accepts 24h wall-clock times such as 08:30.
func TimeOfDayValidation(fl validator.FieldLevel) bool {
	return timeOfDayPattern.MatchString(fl.Field().String())
}

// ValidateStruct runs the shared validator and flattens field errors into one message.
func ValidateStruct(s interface{}) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, describe(fieldErr))
		}
		return errors.New(strings.Join(messages, "; "))
	}
	return fmt.Errorf("validation error: %w", err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "notfuture":
		return fmt.Sprintf("%s cannot be in the future", fe.Field())
	case "gtfield":
		return fmt.Sprintf("%s must be after %s", fe.Field(), fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
