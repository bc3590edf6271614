package numword

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Words(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  float64
	}{
		{"тысяча", 1000},
		{"тысячи", 1000},
		{"тысяч", 1000},
		{"миллион", 1000000},
		{"миллионов", 1000000},
		{"сто двадцать пять", 125},
		{"триста сорок два", 342},
		{"девятьсот девяносто девять", 999},
		{"СТО", 100},
		{"две тысячи", 2000},
		{"одна тысяча", 1000},
		{"двадцать пять тысяч", 25000},
		{"девятьсот девяносто девять миллионов", 999000000},
		{"три миллиона двести", 3000200},
		{"пять тысяч триста двадцать один", 5321},
		{"одиннадцать пять", 16},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_NumericPassthrough(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  float64
	}{
		{"42", 42},
		{" 42 ", 42},
		{"0", 0},
		{"-7", -7},
		{"3.5", 3.5},
		{"007", 7},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsLiteral(tt.input))
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{name: "empty", input: "", kind: KindEmptyInput},
		{name: "whitespace", input: "   ", kind: KindEmptyInput},
		{name: "mixed letters and digits", input: "abc123", kind: KindInvalidCharacters},
		{name: "malformed literal", input: "1.2.3", kind: KindInvalidCharacters},
		{name: "exponent literal", input: "1e3", kind: KindInvalidCharacters},
		{name: "unknown words", input: "бла бла", kind: KindUnknownWord},
		{name: "two tens", input: "двадцать тридцать", kind: KindDuplicateLevel},
		{name: "zero word", input: "ноль", kind: KindZeroResult},
		{name: "huge literal", input: strings.Repeat("9", 400), kind: KindOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.input)
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "expected *ParseError, got %v", err)
			assert.Equal(t, tt.kind, pe.Kind)
			assert.NotEmpty(t, pe.Error())
		})
	}
}

func TestParseWords_RejectsLiteral(t *testing.T) {
	t.Parallel()

	_, err := ParseWords("42")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, KindInvalidCharacters, pe.Kind)
}

func TestParse_Idempotent(t *testing.T) {
	t.Parallel()

	first, err := Parse("семьсот семьдесят семь")
	require.NoError(t, err)
	second, err := Parse("семьсот семьдесят семь")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, float64(777), first)
}

func TestParseError_Messages(t *testing.T) {
	t.Parallel()

	err := &ParseError{Kind: KindUnknownWord, Word: "пят", Suggestion: "пять"}
	assert.Contains(t, err.Error(), `"пят"`)
	assert.Contains(t, err.Error(), `"пять"`)

	err = &ParseError{Kind: KindInvalidSequence, Prev: "сто", Curr: "тысяч"}
	assert.Contains(t, err.Error(), `"сто"`)
	assert.Contains(t, err.Error(), `"тысяч"`)

	assert.Equal(t, "invalid_sequence", KindInvalidSequence.String())
	assert.Equal(t, "unknown", ErrorKind(0).String())
}

func TestSelfCheck(t *testing.T) {
	t.Parallel()
	require.NoError(t, SelfCheck())
}
