package calculator

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/numcalc-backend/internal/calc"
)

// Calculate evaluates Num1 <Operation> Num2. Text operands are parsed first.
func (s *Service) Calculate(ctx context.Context, input CalculateInput) (*CalculateResult, error) {
	op := operationLabel(input.Operation)

	if err := input.validate(s.maxTextLength); err != nil {
		s.metrics.ObserveCalculation(op, outcome(err))
		return nil, err
	}

	res, err := calc.Evaluate(input.Num1, input.Num2, input.Operation)
	s.metrics.ObserveCalculation(op, outcome(err))
	if err != nil {
		s.log.DebugContext(ctx, "calculation rejected",
			slog.String("operation", input.Operation),
			slog.String("outcome", outcome(err)),
		)
		return nil, err
	}

	s.log.InfoContext(ctx, "calculated",
		slog.String("num1", preview(input.Num1.String())),
		slog.String("num2", preview(input.Num2.String())),
		slog.String("operation", input.Operation),
		slog.Float64("result", res),
	)

	return &CalculateResult{Result: res}, nil
}
