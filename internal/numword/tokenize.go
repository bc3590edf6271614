package numword

import (
	"strings"

	"github.com/heartmarshall/numcalc-backend/internal/domain"
)

// Token is a classified number word.
type Token struct {
	Word  string
	Value int64
	Level Level
}

// Tokenize normalizes text, splits it into words and classifies each one.
// The returned tokens are guaranteed to satisfy the adjacency grammar.
func Tokenize(text string) ([]Token, error) {
	clean := domain.NormalizeText(text)
	if clean == "" {
		return nil, &ParseError{Kind: KindEmptyInput}
	}
	if !validCharacters(clean) {
		return nil, &ParseError{Kind: KindInvalidCharacters}
	}

	words := strings.Fields(clean)
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		v, ok := Lookup(w)
		if !ok {
			return nil, &ParseError{Kind: KindUnknownWord, Word: w, Suggestion: Suggest(w)}
		}
		tokens = append(tokens, Token{Word: w, Value: v, Level: LevelOf(v)})
	}

	if err := checkAdjacency(tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

func checkAdjacency(tokens []Token) error {
	for i := 1; i < len(tokens); i++ {
		prev, curr := tokens[i-1], tokens[i]
		if prev.Level == curr.Level && !curr.Level.IsMultiplier() {
			return &ParseError{Kind: KindDuplicateLevel, Prev: prev.Word, Curr: curr.Word}
		}
		if !prev.Level.Allows(curr.Level) {
			return &ParseError{Kind: KindInvalidSequence, Prev: prev.Word, Curr: curr.Word}
		}
	}
	return nil
}

// validCharacters accepts lowercase Cyrillic letters, whitespace and hyphens.
func validCharacters(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'а' && r <= 'я', r == 'ё', r == ' ', r == '-':
		default:
			return false
		}
	}
	return true
}
