package employee

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// maxSalaryDigits bounds both the coefficient length and the exponent, which
// keeps String output at most a few hundred bytes.
const maxSalaryDigits = 64

// Salary is a fixed-point amount. The zero value is 0.
type Salary struct {
	d decimal.Decimal
}

func NewSalary(d decimal.Decimal) Salary {
	return Salary{d: d}
}

func ParseSalary(s string) (Salary, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Salary{}, fmt.Errorf("decimal.NewFromString: %w", err)
	}

	out := Salary{d: d}
	if err := out.checkRange(); err != nil {
		return Salary{}, err
	}

	return out, nil
}

func (s Salary) Decimal() decimal.Decimal {
	return s.d
}

func (s Salary) checkRange() error {
	if s.d.NumDigits() > maxSalaryDigits {
		return fmt.Errorf("must have at most %d digits, got %d", maxSalaryDigits, s.d.NumDigits())
	}

	if exp := s.d.Exponent(); exp > maxSalaryDigits || exp < -maxSalaryDigits {
		return fmt.Errorf("exponent %d out of range [-%d, %d]", exp, maxSalaryDigits, maxSalaryDigits)
	}

	return nil
}

// Equal compares numerically: 123000 equals 123000.00.
func (s Salary) Equal(other Salary) bool {
	return s.d.Equal(other.d)
}

// String renders a plain decimal number with at least one fractional digit,
// never in exponent notation: 123000 -> "123000.0", 1.50 -> "1.5".
func (s Salary) String() string {
	if s.d.IsInteger() {
		return s.d.StringFixed(1)
	}

	return s.d.String()
}

func (s Salary) MarshalJSON() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Salary) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("decimal.UnmarshalJSON: %w", err)
	}

	if err := (Salary{d: d}).checkRange(); err != nil {
		return err
	}

	s.d = d

	return nil
}
