package calculator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/numcalc-backend/internal/calc"
	"github.com/heartmarshall/numcalc-backend/internal/domain"
)

// ConvertInput holds the parameters for converting text to a number.
type ConvertInput struct {
	Text string
}

// Validate checks all fields against the default text limit.
func (i ConvertInput) Validate() error {
	return i.validate(DefaultMaxTextLength)
}

func (i ConvertInput) validate(maxLen int) error {
	var errs []domain.FieldError
	errs = appendTextErrors(errs, "text", i.Text, maxLen)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CalculateInput holds the parameters for evaluating one operation.
type CalculateInput struct {
	Num1      calc.Operand
	Num2      calc.Operand
	Operation string
}

// Validate checks all fields against the default text limit.
func (i CalculateInput) Validate() error {
	return i.validate(DefaultMaxTextLength)
}

func (i CalculateInput) validate(maxLen int) error {
	var errs []domain.FieldError
	errs = appendOperandErrors(errs, "num1", i.Num1, maxLen)
	errs = appendOperandErrors(errs, "num2", i.Num2, maxLen)
	if strings.TrimSpace(i.Operation) == "" {
		errs = append(errs, domain.FieldError{Field: "operation", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ConvertAndCalculateInput holds two texts and the operation to apply.
type ConvertAndCalculateInput struct {
	Text1     string
	Text2     string
	Operation string
}

// Validate checks all fields against the default text limit.
func (i ConvertAndCalculateInput) Validate() error {
	return i.validate(DefaultMaxTextLength)
}

func (i ConvertAndCalculateInput) validate(maxLen int) error {
	var errs []domain.FieldError
	errs = appendTextErrors(errs, "text1", i.Text1, maxLen)
	errs = appendTextErrors(errs, "text2", i.Text2, maxLen)
	if strings.TrimSpace(i.Operation) == "" {
		errs = append(errs, domain.FieldError{Field: "operation", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendTextErrors(errs []domain.FieldError, field, text string, maxLen int) []domain.FieldError {
	if strings.TrimSpace(text) == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(text) > maxLen {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", maxLen)})
	}
	return errs
}

func appendOperandErrors(errs []domain.FieldError, field string, op calc.Operand, maxLen int) []domain.FieldError {
	if op.IsZero() {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if op.IsText() {
		return appendTextErrors(errs, field, op.String(), maxLen)
	}
	return errs
}
