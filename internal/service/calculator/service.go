package calculator

import (
	"errors"
	"log/slog"

	"github.com/heartmarshall/numcalc-backend/internal/calc"
	"github.com/heartmarshall/numcalc-backend/internal/config"
	"github.com/heartmarshall/numcalc-backend/internal/domain"
	"github.com/heartmarshall/numcalc-backend/internal/numword"
)

// DefaultMaxTextLength is the text limit used when no config value is given.
const DefaultMaxTextLength = 500

const (
	outcomeOK           = "ok"
	outcomeInvalidInput = "invalid_input"
	outcomeError        = "error"
	operationOther      = "other"
)

type metricsRecorder interface {
	ObserveConversion(outcome string)
	ObserveCalculation(operation, outcome string)
}

// Service converts Russian number words and evaluates arithmetic on them.
type Service struct {
	log           *slog.Logger
	metrics       metricsRecorder
	maxTextLength int
}

// NewService creates a new Calculator service. metrics may be nil.
func NewService(
	log *slog.Logger,
	metrics metricsRecorder,
	cfg config.CalculatorConfig,
) *Service {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	maxLen := cfg.MaxTextLength
	if maxLen <= 0 {
		maxLen = DefaultMaxTextLength
	}
	return &Service{
		log:           log.With("service", "calculator"),
		metrics:       metrics,
		maxTextLength: maxLen,
	}
}

// outcome labels err for metrics and logs.
func outcome(err error) string {
	if err == nil {
		return outcomeOK
	}
	var pe *numword.ParseError
	if errors.As(err, &pe) {
		return pe.Kind.String()
	}
	var ee *calc.EvalError
	if errors.As(err, &ee) {
		return ee.Kind.String()
	}
	if errors.Is(err, domain.ErrValidation) {
		return outcomeInvalidInput
	}
	return outcomeError
}

// operationLabel keeps the metrics label set bounded.
func operationLabel(op string) string {
	if _, err := calc.ParseOperation(op); err != nil {
		return operationOther
	}
	return op
}

type nopRecorder struct{}

func (nopRecorder) ObserveConversion(string)          {}
func (nopRecorder) ObserveCalculation(string, string) {}
