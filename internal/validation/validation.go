// Package validation checks request payloads and reports every failing
// field at once instead of stopping at the first error.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError describes one invalid field, named by its JSON key.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is a list of field errors. It satisfies errors.Is(err, apperrors.ErrValidation).
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) Unwrap() error {
	return apperrors.ErrValidation
}

// Result is either a valid value or the field errors that rejected it.
type Result[T any] struct {
	Value  T
	Errors Errors
}

// OK reports whether validation passed.
func (r Result[T]) OK() bool {
	return len(r.Errors) == 0
}

// Err returns the field errors as an error, or nil when validation passed.
func (r Result[T]) Err() error {
	if r.OK() {
		return nil
	}
	return r.Errors
}

var (
	once     sync.Once
	instance *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		// Decimals are validated through their canonical string form.
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})
		mustRegister(v, "money", isMoney)
		mustRegister(v, "money_nonneg", isNonNegativeMoney)
		mustRegister(v, "vatrate", isVatRate)
		instance = v
	})
	return instance
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// Validate runs the struct tags of v and returns a typed result.
func Validate[T any](v T) Result[T] {
	err := engine().Struct(v)
	if err == nil {
		return Result[T]{Value: v}
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Result[T]{Value: v, Errors: Errors{{Field: "", Message: err.Error()}}}
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldPath(fe), Message: message(fe)})
	}
	return Result[T]{Value: v, Errors: out}
}

// Field returns a single-field error list, for checks that need data the
// struct tags cannot see.
func Field(field, msg string) Errors {
	return Errors{{Field: field, Message: msg}}
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func parseDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	if fl.Field().Kind() != reflect.String {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func hasCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}

// isMoney accepts strictly positive amounts with at most two decimals.
func isMoney(fl validator.FieldLevel) bool {
	d, ok := parseDecimal(fl)
	return ok && d.IsPositive() && hasCents(d)
}

func isNonNegativeMoney(fl validator.FieldLevel) bool {
	d, ok := parseDecimal(fl)
	return ok && !d.IsNegative() && hasCents(d)
}

var maxVatRate = decimal.NewFromInt(25)

func isVatRate(fl validator.FieldLevel) bool {
	d, ok := parseDecimal(fl)
	return ok && !d.IsNegative() && d.LessThanOrEqual(maxVatRate)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "money":
		return "must be a positive amount with at most two decimals"
	case "money_nonneg":
		return "must be zero or a positive amount with at most two decimals"
	case "vatrate":
		return "must be between 0 and 25"
	case "gte", "lte":
		return fmt.Sprintf("must be %s %s", map[string]string{"gte": ">=", "lte": "<="}[fe.Tag()], fe.Param())
	}
	return "is invalid"
}
