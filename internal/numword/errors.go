package numword

import (
	"fmt"

	"github.com/heartmarshall/numcalc-backend/internal/domain"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	KindEmptyInput ErrorKind = iota + 1
	KindInvalidCharacters
	KindUnknownWord
	KindInvalidSequence
	KindDuplicateLevel
	KindZeroResult
	KindOutOfRange
)

// String returns a stable snake_case label, suitable for metrics.
func (k ErrorKind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty_input"
	case KindInvalidCharacters:
		return "invalid_characters"
	case KindUnknownWord:
		return "unknown_word"
	case KindInvalidSequence:
		return "invalid_sequence"
	case KindDuplicateLevel:
		return "duplicate_level"
	case KindZeroResult:
		return "zero_result"
	case KindOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// ParseError is returned by Tokenize, Accumulate and Parse.
// Word is set for KindUnknownWord; Prev and Curr for the adjacency kinds.
type ParseError struct {
	Kind       ErrorKind
	Word       string
	Prev       string
	Curr       string
	Suggestion string
}

// Error returns the user-facing message.
func (e *ParseError) Error() string {
	switch e.Kind {
	case KindEmptyInput:
		return "Введите текст для конвертации"
	case KindInvalidCharacters:
		return "Текст содержит недопустимые символы"
	case KindUnknownWord:
		if e.Suggestion != "" {
			return fmt.Sprintf("Не удалось распознать слово: %q (возможно, %q)", e.Word, e.Suggestion)
		}
		return fmt.Sprintf("Не удалось распознать слово: %q", e.Word)
	case KindInvalidSequence:
		return fmt.Sprintf("Некорректная структура числа: после %q не может идти %q", e.Prev, e.Curr)
	case KindDuplicateLevel:
		return fmt.Sprintf("Повторяющиеся разряды: %q и %q", e.Prev, e.Curr)
	case KindZeroResult:
		return "Не удалось преобразовать текст в число"
	case KindOutOfRange:
		return "Число слишком велико"
	default:
		return "Ошибка при конвертации числа"
	}
}

func (e *ParseError) Unwrap() error { return domain.ErrValidation }
