package calculator

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/numcalc-backend/internal/calc"
	"github.com/heartmarshall/numcalc-backend/internal/numword"
)

// ConvertAndCalculate parses both texts and applies Operation to them.
// Conversion failures are reported before the operation is looked at.
func (s *Service) ConvertAndCalculate(ctx context.Context, input ConvertAndCalculateInput) (*ConvertAndCalculateResult, error) {
	op := operationLabel(input.Operation)

	if err := input.validate(s.maxTextLength); err != nil {
		s.metrics.ObserveCalculation(op, outcome(err))
		return nil, err
	}

	num1, err := s.convertOperand(input.Text1)
	if err != nil {
		s.metrics.ObserveCalculation(op, outcome(err))
		return nil, err
	}
	num2, err := s.convertOperand(input.Text2)
	if err != nil {
		s.metrics.ObserveCalculation(op, outcome(err))
		return nil, err
	}

	res, err := calc.Evaluate(calc.Number(num1), calc.Number(num2), input.Operation)
	s.metrics.ObserveCalculation(op, outcome(err))
	if err != nil {
		s.log.DebugContext(ctx, "calculation rejected",
			slog.String("operation", input.Operation),
			slog.String("outcome", outcome(err)),
		)
		return nil, err
	}

	s.log.InfoContext(ctx, "converted and calculated",
		slog.Float64("num1", num1),
		slog.Float64("num2", num2),
		slog.String("operation", input.Operation),
		slog.Float64("result", res),
	)

	return &ConvertAndCalculateResult{
		Num1:      num1,
		Num2:      num2,
		Operation: input.Operation,
		Result:    res,
	}, nil
}

func (s *Service) convertOperand(text string) (float64, error) {
	n, err := numword.Parse(text)
	s.metrics.ObserveConversion(outcome(err))
	return n, err
}
