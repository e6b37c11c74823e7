// Package validate is the input boundary: nothing reaches the calculator
// without passing Inputs first.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"sunday-pay/internal/model"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	// Report fields by their wire names.
	Validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	Validate.RegisterStructValidation(func(sl validator.StructLevel) {
		d := sl.Current().Interface().(model.Deductions)
		if total := d.Total(); total.GreaterThan(decimal.NewFromInt(1)) {
			sl.ReportError(total.InexactFloat64(), "total", "Total", "deductionsum", "")
		}
	}, model.Deductions{})
}

// Inputs validates resolved inputs and returns one critical message per
// failing field, in field order.
func Inputs(in model.ComparisonInputs) []model.CalculationMessage {
	err := Validate.Struct(in)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    "INVALID_INPUT",
			Message: err.Error(),
		}}
	}
	msgs := make([]model.CalculationMessage, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    Code(e),
			Message: Describe(e),
		})
	}
	return msgs
}

// Code turns a field error into INVALID_<FIELD_PATH>, e.g.
// INVALID_HOURLY_RATE or INVALID_DEDUCTIONS_TAX.
func Code(e validator.FieldError) string {
	return "INVALID_" + strings.ToUpper(strings.ReplaceAll(fieldPath(e), ".", "_"))
}

// Describe renders a field error for people.
func Describe(e validator.FieldError) string {
	field := fieldPath(e)
	switch e.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "deductionsum":
		return "deductions must not add up to more than 100%"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
