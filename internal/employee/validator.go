package employee

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/reban87/employee-record/internal/dto"
)

var regexEmail = regexp.MustCompile(`^[^@\s]+@[^@\s.]+(\.[^@\s.]+)+$`)

var constraints = map[string]string{
	FieldName:       "notblank",
	FieldEmail:      "notblank,email_addr",
	FieldSalary:     "gte=0",
	FieldDepartment: "notblank",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "email_addr", func(fl validator.FieldLevel) bool {
		return regexEmail.MatchString(fl.Field().String())
	})

	// salary is checked by sign so very large or very small amounts stay exact
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if s, ok := field.Interface().(Salary); ok {
			return s.Decimal().Sign()
		}

		return nil
	}, Salary{})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validator.RegisterValidation(%s): %v", tag, err))
	}
}

// New validates fields against the schema and returns the record. Every problem
// is reported in a single *dto.ValidationError; no partial record is returned.
func New(fields Fields) (Employee, error) {
	var (
		out  Employee
		verr dto.ValidationError
	)

	for _, name := range Schema {
		raw, ok := fields[name]
		if !ok || raw == nil {
			verr.Add(name, dto.ReasonMissing, "")
			continue
		}

		var (
			value  any
			reason dto.Reason
			detail string
		)

		switch name {
		case FieldName:
			out.name, reason, detail = asText(raw)
			value = out.name
		case FieldEmail:
			out.email, reason, detail = asText(raw)
			value = out.email
		case FieldDateOfBirth:
			out.dateOfBirth, reason, detail = asDate(raw)
		case FieldSalary:
			out.salary, reason, detail = asSalary(raw)
			if reason == "" {
				if err := out.salary.checkRange(); err != nil {
					reason, detail = dto.ReasonConstraint, err.Error()
				}
			}
			value = out.salary
		case FieldDepartment:
			out.department, reason, detail = asText(raw)
			value = out.department
		case FieldElectedBenefits:
			out.electedBenefits, reason, detail = asBool(raw)
		}

		if reason != "" {
			verr.Add(name, reason, detail)
			continue
		}

		if msg := checkConstraint(name, value); msg != "" {
			verr.Add(name, dto.ReasonConstraint, msg)
		}
	}

	var unexpected []string
	for name := range fields {
		if !inSchema(name) {
			unexpected = append(unexpected, name)
		}
	}
	sort.Strings(unexpected)

	for _, name := range unexpected {
		verr.Add(name, dto.ReasonUnexpected, "")
	}

	if err := verr.Err(); err != nil {
		return Employee{}, err
	}

	return out, nil
}

func inSchema(name string) bool {
	for _, f := range Schema {
		if f == name {
			return true
		}
	}

	return false
}

func checkConstraint(field string, value any) string {
	tag, ok := constraints[field]
	if !ok {
		return ""
	}

	err := validate.Var(value, tag)
	if err == nil {
		return ""
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err.Error()
	}

	switch errs[0].Tag() {
	case "notblank":
		return "must not be empty"
	case "email_addr":
		return fmt.Sprintf("%q is not a valid email address", value)
	case "gte":
		return fmt.Sprintf("must be non-negative, got %v", value)
	}

	return fmt.Sprintf("failed '%s' check", errs[0].Tag())
}

func asText(raw any) (string, dto.Reason, string) {
	s, ok := raw.(string)
	if !ok {
		return "", dto.ReasonWrongType, fmt.Sprintf("expected string, got %T", raw)
	}

	if !utf8.ValidString(s) {
		return "", dto.ReasonInvalid, fmt.Sprintf("%q is not valid UTF-8", s)
	}

	return s, "", ""
}

func asBool(raw any) (bool, dto.Reason, string) {
	b, ok := raw.(bool)
	if !ok {
		return false, dto.ReasonWrongType, fmt.Sprintf("expected bool, got %T", raw)
	}

	return b, "", ""
}

func asDate(raw any) (Date, dto.Reason, string) {
	switch v := raw.(type) {
	case string:
		d, err := ParseDate(v)
		if err != nil {
			return Date{}, dto.ReasonInvalid, err.Error()
		}

		return d, "", ""
	case Date:
		if !v.IsValid() {
			return Date{}, dto.ReasonInvalid, fmt.Sprintf("%d-%d-%d is not a calendar date", v.Year, v.Month, v.Day)
		}

		return v, "", ""
	case time.Time:
		d := DateOf(v)
		if !d.IsValid() {
			return Date{}, dto.ReasonInvalid, fmt.Sprintf("year %d out of range", d.Year)
		}

		return d, "", ""
	}

	return Date{}, dto.ReasonWrongType, fmt.Sprintf("expected ISO-8601 date string, got %T", raw)
}

func asSalary(raw any) (Salary, dto.Reason, string) {
	switch v := raw.(type) {
	case Salary:
		return v, "", ""
	case decimal.Decimal:
		return Salary{d: v}, "", ""
	case json.Number:
		// range is checked by the caller so overflow reads as a constraint
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return Salary{}, dto.ReasonInvalid, fmt.Sprintf("decimal.NewFromString: %v", err)
		}

		return Salary{d: d}, "", ""
	case float64:
		return fromFloat(v)
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return Salary{}, dto.ReasonConstraint, fmt.Sprintf("must be finite, got %v", v)
		}

		return Salary{d: decimal.NewFromFloat32(v)}, "", ""
	case int:
		return Salary{d: decimal.NewFromInt(int64(v))}, "", ""
	case int8:
		return Salary{d: decimal.NewFromInt(int64(v))}, "", ""
	case int16:
		return Salary{d: decimal.NewFromInt(int64(v))}, "", ""
	case int32:
		return Salary{d: decimal.NewFromInt(int64(v))}, "", ""
	case int64:
		return Salary{d: decimal.NewFromInt(v)}, "", ""
	case uint:
		return fromUint(uint64(v)), "", ""
	case uint8:
		return fromUint(uint64(v)), "", ""
	case uint16:
		return fromUint(uint64(v)), "", ""
	case uint32:
		return fromUint(uint64(v)), "", ""
	case uint64:
		return fromUint(v), "", ""
	}

	return Salary{}, dto.ReasonWrongType, fmt.Sprintf("expected number, got %T", raw)
}

func fromFloat(v float64) (Salary, dto.Reason, string) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Salary{}, dto.ReasonConstraint, fmt.Sprintf("must be finite, got %v", v)
	}

	return Salary{d: decimal.NewFromFloat(v)}, "", ""
}

func fromUint(v uint64) Salary {
	return Salary{d: decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)}
}
