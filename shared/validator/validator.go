package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"

	"clubhouse/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var (
	hourMinPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	etagPattern    = regexp.MustCompile(`^[a-fA-F0-9]{32}$`)
)

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("hourmin", func(fl val.FieldLevel) bool {
		return hourMinPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("etag", func(fl val.FieldLevel) bool {
		return etagPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
