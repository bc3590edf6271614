package calc

import "github.com/heartmarshall/numcalc-backend/internal/domain"

// ErrorKind classifies an evaluation failure.
type ErrorKind int

const (
	KindInvalidOperand ErrorKind = iota + 1
	KindDivisionByZero
	KindUnsupportedOperation
	KindOutOfRange
)

// String returns a stable snake_case label, suitable for metrics.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidOperand:
		return "invalid_operand"
	case KindDivisionByZero:
		return "division_by_zero"
	case KindUnsupportedOperation:
		return "unsupported_operation"
	case KindOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// EvalError is returned by Evaluate for arithmetic failures. Failures to
// parse a text operand are returned as *numword.ParseError instead.
type EvalError struct {
	Kind      ErrorKind
	Operation string
}

// Error returns the user-facing message.
func (e *EvalError) Error() string {
	switch e.Kind {
	case KindInvalidOperand:
		return "Одно из чисел невалидно"
	case KindDivisionByZero:
		return "Деление на ноль невозможно"
	case KindUnsupportedOperation:
		return "Неподдерживаемая операция"
	case KindOutOfRange:
		return "Результат слишком велик"
	default:
		return "Ошибка при выполнении операции"
	}
}

func (e *EvalError) Unwrap() error { return domain.ErrValidation }
