package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"time"

	"hms/shared/constant"
	"hms/shared/failure"
	"hms/shared/role"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const phoneDigits = 11

var validate *val.Validate

func validatePhone(field val.FieldLevel) bool {
	phone := field.Field().String()
	if len(phone) != phoneDigits {
		return false
	}

	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func validateRole(field val.FieldLevel) bool {
	_, err := role.Parse(field.Field().String())

	return err == nil
}

func validateLayout(layout string) val.Func {
	return func(field val.FieldLevel) bool {
		_, err := time.Parse(layout, field.Field().String())

		return err == nil
	}
}

// decimalValue lets numeric tags such as gt=0 apply to decimal.Decimal fields.
func decimalValue(field reflect.Value) any {
	if amount, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := amount.Float64()

		return f
	}

	return nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	rules := map[string]val.Func{
		"phone11": validatePhone,
		"role":    validateRole,
		"date":    validateLayout(constant.DateOnlyFormat),
		"clock":   validateLayout(constant.ClockFormat),
		"empty": func(fl val.FieldLevel) bool {
			return fl.Field().IsZero()
		},
	}

	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

// Decode reads the JSON body into data for services that normalise before validating.
func Decode[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
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
