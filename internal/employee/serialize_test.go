package employee

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reban87/employee-record/internal/dto"
)

const chrisCanonical = `{"name": "Chris DeTuma", "email": "cdetuma@example.com", "date_of_birth": "1998-04-02", "salary": 123000.0, "department": "IT", "elected_benefits": true}`

func TestSerialize(t *testing.T) {
	emp, err := New(chrisFields())
	require.NoError(t, err)

	assert.Equal(t, chrisCanonical, Serialize(emp))
}

func TestSerializeKeyOrder(t *testing.T) {
	emp, err := New(chrisFields())
	require.NoError(t, err)

	out := Serialize(emp)

	last := -1
	for _, key := range Schema {
		idx := strings.Index(out, `"`+key+`":`)
		require.NotEqual(t, -1, idx, key)
		assert.Greater(t, idx, last, key)
		last = idx
	}
}

func TestSerializeEscaping(t *testing.T) {
	fields := with(chrisFields(), FieldName, "Zoë \"Z\" O'Neil <ops>\n")
	fields[FieldDepartment] = `R&D\Labs`
	fields[FieldElectedBenefits] = false

	emp, err := New(fields)
	require.NoError(t, err)

	out := Serialize(emp)
	assert.Contains(t, out, `"name": "Zoë \"Z\" O'Neil <ops>\n"`)
	assert.Contains(t, out, `"department": "R&D\\Labs"`)
	assert.Contains(t, out, `"elected_benefits": false`)

	back, err := Parse([]byte(out))
	require.NoError(t, err)
	assert.True(t, emp.Equal(back))
}

func TestSerializeSalaryForms(t *testing.T) {
	tests := []struct {
		salary any
		want   string
	}{
		{salary: 0, want: `"salary": 0.0,`},
		{salary: 50000.5, want: `"salary": 50000.5,`},
		{salary: json.Number("1.50"), want: `"salary": 1.5,`},
		{salary: json.Number("2.5e6"), want: `"salary": 2500000.0,`},
		{salary: json.Number("0.000001"), want: `"salary": 0.000001,`},
		{salary: json.Number("123456789012345678901234567890"), want: `"salary": 123456789012345678901234567890.0,`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			emp, err := New(with(chrisFields(), FieldSalary, tt.salary))
			require.NoError(t, err)

			assert.Contains(t, Serialize(emp), tt.want)
		})
	}
}

func TestFormat(t *testing.T) {
	emp, err := New(chrisFields())
	require.NoError(t, err)

	assert.Equal(t, chrisCanonical, Format(emp, StyleCanonical))
	assert.Equal(t, chrisCanonical, Format(emp, Style("unknown")))
	assert.Equal(t,
		`{"name":"Chris DeTuma","email":"cdetuma@example.com","date_of_birth":"1998-04-02","salary":123000.0,"department":"IT","elected_benefits":true}`,
		Format(emp, StyleCompact),
	)

	indented := Format(emp, StyleIndent)
	assert.True(t, strings.HasPrefix(indented, "{\n  \"name\": \"Chris DeTuma\",\n"), indented)
	assert.True(t, strings.HasSuffix(indented, "\n}"), indented)

	for _, style := range []Style{StyleCanonical, StyleCompact, StyleIndent} {
		back, err := Parse([]byte(Format(emp, style)))
		require.NoError(t, err, style)
		assert.True(t, emp.Equal(back), style)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in   string
		want Style
		err  bool
	}{
		{in: "canonical", want: StyleCanonical},
		{in: "", want: StyleCanonical},
		{in: " Compact ", want: StyleCompact},
		{in: "INDENT", want: StyleIndent},
		{in: "yaml", err: true},
	}

	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		if tt.err {
			assert.Error(t, err, tt.in)
			continue
		}

		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParse(t *testing.T) {
	emp, err := Parse([]byte(chrisCanonical))
	require.NoError(t, err)

	want, err := New(chrisFields())
	require.NoError(t, err)

	assert.True(t, want.Equal(emp))
	assert.Equal(t, chrisCanonical, Serialize(emp))
}

func TestParseInvalidJSON(t *testing.T) {
	inputs := []string{
		``,
		`{`,
		`null`,
		`[1, 2]`,
		`"employee"`,
		chrisCanonical + ` {}`,
	}

	for _, in := range inputs {
		_, err := Parse([]byte(in))
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, dto.ErrInvalidJSON), in)
		assert.False(t, errors.Is(err, dto.ErrValidation), in)
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		field  string
		reason dto.Reason
	}{
		{
			name:   "salary as string",
			in:     `{"name": "A", "email": "a@b.co", "date_of_birth": "1998-04-02", "salary": "100", "department": "IT", "elected_benefits": true}`,
			field:  FieldSalary,
			reason: dto.ReasonWrongType,
		},
		{
			name:   "null department",
			in:     `{"name": "A", "email": "a@b.co", "date_of_birth": "1998-04-02", "salary": 100, "department": null, "elected_benefits": true}`,
			field:  FieldDepartment,
			reason: dto.ReasonMissing,
		},
		{
			name:   "extra key",
			in:     `{"name": "A", "email": "a@b.co", "date_of_birth": "1998-04-02", "salary": 100, "department": "IT", "elected_benefits": true, "id": 7}`,
			field:  "id",
			reason: dto.ReasonUnexpected,
		},
		{
			name:   "salary exponent too large",
			in:     `{"name": "A", "email": "a@b.co", "date_of_birth": "1998-04-02", "salary": 1e50000000, "department": "IT", "elected_benefits": true}`,
			field:  FieldSalary,
			reason: dto.ReasonConstraint,
		},
		{
			name:   "salary exponent too small",
			in:     `{"name": "A", "email": "a@b.co", "date_of_birth": "1998-04-02", "salary": 1e-50000000, "department": "IT", "elected_benefits": true}`,
			field:  FieldSalary,
			reason: dto.ReasonConstraint,
		},
		{
			name:   "benefits as number",
			in:     `{"name": "A", "email": "a@b.co", "date_of_birth": "1998-04-02", "salary": 100, "department": "IT", "elected_benefits": 1}`,
			field:  FieldElectedBenefits,
			reason: dto.ReasonWrongType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			verr := requireValidationError(t, err)

			fe, ok := verr.Field(tt.field)
			require.True(t, ok, verr.Error())
			assert.Equal(t, tt.reason, fe.Reason)
		})
	}
}

func TestJSONMarshalling(t *testing.T) {
	emp, err := New(chrisFields())
	require.NoError(t, err)

	type envelope struct {
		Kind     string   `json:"kind"`
		Employee Employee `json:"employee"`
	}

	data, err := json.Marshal(envelope{Kind: "employee", Employee: emp})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"salary":123000.0`)

	var back envelope
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "employee", back.Kind)
	assert.True(t, emp.Equal(back.Employee))

	err = json.Unmarshal([]byte(`{"kind": "employee", "employee": {"name": "A"}}`), &back)
	assert.True(t, errors.Is(err, dto.ErrValidation))
}
