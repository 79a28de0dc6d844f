// Package employee holds the Employee record: a fixed six-field schema that is
// validated once on construction and serialized to a deterministic JSON object.
package employee

import (
	"encoding/json"

	"github.com/reban87/employee-record/internal/dto"
)

const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldDateOfBirth     = "date_of_birth"
	FieldSalary          = "salary"
	FieldDepartment      = "department"
	FieldElectedBenefits = "elected_benefits"
)

// Schema lists the field keys in declaration order. Serialization and error
// reporting both follow this order.
var Schema = []string{
	FieldName,
	FieldEmail,
	FieldDateOfBirth,
	FieldSalary,
	FieldDepartment,
	FieldElectedBenefits,
}

// Fields supplies raw values for New, keyed by schema field name.
type Fields map[string]any

// Employee is an immutable, validated record. Obtain one from New, FromPayload or Parse.
type Employee struct {
	name            string
	email           string
	dateOfBirth     Date
	salary          Salary
	department      string
	electedBenefits bool
}

// FromPayload builds a record from the wire struct. An empty salary counts as missing.
func FromPayload(p dto.Employee) (Employee, error) {
	fields := Fields{
		FieldName:            p.Name,
		FieldEmail:           p.Email,
		FieldDateOfBirth:     p.DateOfBirth,
		FieldDepartment:      p.Department,
		FieldElectedBenefits: p.ElectedBenefits,
	}
	if p.Salary != "" {
		fields[FieldSalary] = p.Salary
	}

	return New(fields)
}

func (e Employee) Name() string          { return e.name }
func (e Employee) Email() string         { return e.email }
func (e Employee) DateOfBirth() Date     { return e.dateOfBirth }
func (e Employee) Salary() Salary        { return e.salary }
func (e Employee) Department() string    { return e.department }
func (e Employee) ElectedBenefits() bool { return e.electedBenefits }

// Equal reports whether every field matches.
func (e Employee) Equal(other Employee) bool {
	return e.name == other.name &&
		e.email == other.email &&
		e.dateOfBirth == other.dateOfBirth &&
		e.salary.Equal(other.salary) &&
		e.department == other.department &&
		e.electedBenefits == other.electedBenefits
}

// Payload returns the wire struct with normalized values.
func (e Employee) Payload() dto.Employee {
	return dto.Employee{
		Name:            e.name,
		Email:           e.email,
		DateOfBirth:     e.dateOfBirth.String(),
		Salary:          json.Number(e.salary.String()),
		Department:      e.department,
		ElectedBenefits: e.electedBenefits,
	}
}
