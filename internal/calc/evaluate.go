package calc

import "math"

// Operation is an arithmetic operation tag.
type Operation string

const (
	Add      Operation = "add"
	Subtract Operation = "subtract"
	Multiply Operation = "multiply"
	Divide   Operation = "divide"
)

// Operations lists the supported tags in display order.
var Operations = []Operation{Add, Subtract, Multiply, Divide}

// ParseOperation validates an operation tag. Tags are case-sensitive.
func ParseOperation(s string) (Operation, error) {
	switch op := Operation(s); op {
	case Add, Subtract, Multiply, Divide:
		return op, nil
	default:
		return "", &EvalError{Kind: KindUnsupportedOperation, Operation: s}
	}
}

// Apply computes a op b without rounding.
func (op Operation) Apply(a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, &EvalError{Kind: KindDivisionByZero, Operation: string(op)}
		}
		return a / b, nil
	default:
		return 0, &EvalError{Kind: KindUnsupportedOperation, Operation: string(op)}
	}
}

// Evaluate coerces both operands, applies the operation and rounds the
// result to two decimal places.
func Evaluate(a, b Operand, operation string) (float64, error) {
	x, err := a.Value()
	if err != nil {
		return 0, err
	}
	y, err := b.Value()
	if err != nil {
		return 0, err
	}
	if !finite(x) || !finite(y) {
		return 0, &EvalError{Kind: KindInvalidOperand, Operation: operation}
	}

	op, err := ParseOperation(operation)
	if err != nil {
		return 0, err
	}
	res, err := op.Apply(x, y)
	if err != nil {
		return 0, err
	}

	res = Round2(res)
	if !finite(res) {
		return 0, &EvalError{Kind: KindOutOfRange, Operation: operation}
	}
	return res, nil
}

// Round2 rounds half away from zero to two decimal places.
// Negative zero is returned as zero.
func Round2(v float64) float64 {
	// Beyond 2^53/100 there are no fractional digits left to round.
	if math.Abs(v) >= 1<<53/100 {
		return v
	}
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
