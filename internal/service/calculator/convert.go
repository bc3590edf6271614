package calculator

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/numcalc-backend/internal/numword"
)

// Convert parses Russian number words (or a numeric literal) into a number.
func (s *Service) Convert(ctx context.Context, input ConvertInput) (*ConvertResult, error) {
	if err := input.validate(s.maxTextLength); err != nil {
		s.metrics.ObserveConversion(outcome(err))
		return nil, err
	}

	n, err := numword.Parse(input.Text)
	s.metrics.ObserveConversion(outcome(err))
	if err != nil {
		s.log.DebugContext(ctx, "conversion rejected",
			slog.String("text", preview(input.Text)),
			slog.String("outcome", outcome(err)),
		)
		return nil, err
	}

	s.log.InfoContext(ctx, "text converted",
		slog.String("text", preview(input.Text)),
		slog.Float64("result", n),
	)

	return &ConvertResult{Original: input.Text, Result: n}, nil
}

const previewLen = 50

// preview truncates s to previewLen runes for logging.
func preview(s string) string {
	r := []rune(s)
	if len(r) > previewLen {
		return string(r[:previewLen])
	}
	return s
}
