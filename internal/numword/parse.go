package numword

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/heartmarshall/numcalc-backend/internal/domain"
)

var numericLiteral = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// Parse converts text into a number. A plain numeric literal is returned
// as-is; anything else must be a valid sequence of number words, whose
// value is always a positive integer.
func Parse(text string) (float64, error) {
	clean := domain.NormalizeText(text)
	if clean == "" {
		return 0, &ParseError{Kind: KindEmptyInput}
	}

	if numericLiteral.MatchString(clean) {
		v, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, &ParseError{Kind: KindOutOfRange}
			}
			return 0, &ParseError{Kind: KindInvalidCharacters}
		}
		return v, nil
	}

	n, err := ParseWords(clean)
	if err != nil {
		return 0, err
	}
	return float64(n), nil
}

// ParseWords is Parse without the numeric-literal shortcut.
func ParseWords(text string) (int64, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return 0, err
	}
	return Accumulate(tokens)
}

// IsLiteral reports whether text would take the numeric-literal path of Parse.
func IsLiteral(text string) bool {
	return numericLiteral.MatchString(domain.NormalizeText(text))
}
