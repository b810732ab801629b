package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Dosada05/football-dashboard/league"
	"github.com/Dosada05/football-dashboard/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("position", func(fl validator.FieldLevel) bool {
		return models.Position(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, ok := league.ParseDate(fl.Field().String())
		return ok
	})
	return v
}

// validateInput runs the struct tags of input and converts failures into a
// ValidationError keyed by JSON field name.
func validateInput(ctx context.Context, input any) error {
	err := validate.StructCtx(ctx, input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	verr := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		verr.Fields[fe.Field()] = describeFieldError(fe)
	}
	return verr
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "url":
		return "must be a valid URL"
	case "position":
		return "must be one of Goalkeeper, Defender, Midfielder, Forward"
	case "date":
		return "must be a valid date"
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "is invalid"
	}
}
