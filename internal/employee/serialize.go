package employee

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/reban87/employee-record/internal/dto"
)

// Style selects the text layout produced by Format.
type Style string

const (
	// StyleCanonical is one line with ": " and ", " separators.
	StyleCanonical Style = "canonical"
	StyleCompact   Style = "compact"
	StyleIndent    Style = "indent"
)

func ParseStyle(s string) (Style, error) {
	switch st := Style(strings.ToLower(strings.TrimSpace(s))); st {
	case StyleCanonical, StyleCompact, StyleIndent:
		return st, nil
	case "":
		return StyleCanonical, nil
	}

	return "", fmt.Errorf("unknown output style %q", s)
}

type member struct {
	key   string
	value []byte
}

func (e Employee) members() []member {
	return []member{
		{FieldName, encodeString(e.name)},
		{FieldEmail, encodeString(e.email)},
		{FieldDateOfBirth, encodeString(e.dateOfBirth.String())},
		{FieldSalary, []byte(e.salary.String())},
		{FieldDepartment, encodeString(e.department)},
		{FieldElectedBenefits, []byte(strconv.FormatBool(e.electedBenefits))},
	}
}

// Serialize renders e in the canonical form, e.g.
//
//	{"name": "Chris DeTuma", "email": "cdetuma@example.com", "date_of_birth": "1998-04-02", "salary": 123000.0, "department": "IT", "elected_benefits": true}
func Serialize(e Employee) string {
	var b strings.Builder

	b.WriteByte('{')
	for i, m := range e.members() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.Write(encodeString(m.key))
		b.WriteString(": ")
		b.Write(m.value)
	}
	b.WriteByte('}')

	return b.String()
}

// Format renders e in the given style. An unknown style falls back to canonical.
func Format(e Employee, style Style) string {
	switch style {
	case StyleCompact:
		return string(e.compact())
	case StyleIndent:
		var buf bytes.Buffer
		// compact output is always valid JSON
		_ = json.Indent(&buf, e.compact(), "", "  ")

		return buf.String()
	}

	return Serialize(e)
}

func (e Employee) compact() []byte {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// strings, bools and a checked json.Number cannot fail to encode
	_ = enc.Encode(e.Payload())

	return bytes.TrimRight(buf.Bytes(), "\n")
}

func (e Employee) MarshalJSON() ([]byte, error) {
	return e.compact(), nil
}

func (e *Employee) UnmarshalJSON(b []byte) error {
	parsed, err := Parse(b)
	if err != nil {
		return err
	}

	*e = parsed

	return nil
}

// Parse reads one JSON object and validates it with New. Numbers keep their
// exact decimal text.
func Parse(data []byte) (Employee, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var fields Fields
	if err := dec.Decode(&fields); err != nil {
		return Employee{}, fmt.Errorf("%w: %v", dto.ErrInvalidJSON, err)
	}

	if fields == nil {
		return Employee{}, fmt.Errorf("%w: expected object", dto.ErrInvalidJSON)
	}

	if _, err := dec.Token(); err != io.EOF {
		return Employee{}, fmt.Errorf("%w: trailing data after object", dto.ErrInvalidJSON)
	}

	return New(fields)
}

func encodeString(s string) []byte {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// encoding a string never fails
	_ = enc.Encode(s)

	return bytes.TrimRight(buf.Bytes(), "\n")
}
