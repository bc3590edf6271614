package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/numcalc-backend/internal/calc"
	"github.com/heartmarshall/numcalc-backend/internal/domain"
	"github.com/heartmarshall/numcalc-backend/internal/service/calculator"
)

const (
	msgConvertMissing    = "Введите текст для конвертации"
	msgCalculateMissing  = "Необходимо указать два числа и операцию"
	msgCombinedMissing   = "Необходимо указать два текстовых числа и операцию"
	msgTextTooLong       = "Текст слишком длинный"
	msgInvalidBody       = "invalid request body"
	msgBodyTooLarge      = "request body too large"
	msgInternal          = "internal server error"
	fieldMessageRequired = "required"
)

// calculatorService defines the minimal interface needed by CalculatorHandler.
type calculatorService interface {
	Convert(ctx context.Context, input calculator.ConvertInput) (*calculator.ConvertResult, error)
	Calculate(ctx context.Context, input calculator.CalculateInput) (*calculator.CalculateResult, error)
	ConvertAndCalculate(ctx context.Context, input calculator.ConvertAndCalculateInput) (*calculator.ConvertAndCalculateResult, error)
}

// CalculatorHandler serves the conversion and arithmetic endpoints.
type CalculatorHandler struct {
	svc calculatorService
	log *slog.Logger
}

// NewCalculatorHandler creates a CalculatorHandler.
func NewCalculatorHandler(svc calculatorService, logger *slog.Logger) *CalculatorHandler {
	return &CalculatorHandler{svc: svc, log: logger.With("handler", "calculator")}
}

type convertRequest struct {
	Text string `json:"text"`
}

type calculateRequest struct {
	Num1      calc.Operand `json:"num1"`
	Num2      calc.Operand `json:"num2"`
	Operation string       `json:"operation"`
}

type convertAndCalculateRequest struct {
	Text1     string `json:"text1"`
	Text2     string `json:"text2"`
	Operation string `json:"operation"`
}

type convertResponse struct {
	Success  bool    `json:"success"`
	Original string  `json:"original"`
	Result   float64 `json:"result"`
}

type calculateResponse struct {
	Success bool    `json:"success"`
	Result  float64 `json:"result"`
}

type convertAndCalculateResponse struct {
	Success   bool    `json:"success"`
	Num1      float64 `json:"num1"`
	Num2      float64 `json:"num2"`
	Operation string  `json:"operation"`
	Result    float64 `json:"result"`
}

// Convert handles POST /api/convert.
func (h *CalculatorHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.svc.Convert(r.Context(), calculator.ConvertInput{Text: req.Text})
	if err != nil {
		h.handleError(w, r, err, msgConvertMissing)
		return
	}

	writeJSON(w, http.StatusOK, convertResponse{
		Success:  true,
		Original: result.Original,
		Result:   result.Result,
	})
}

// Calculate handles POST /api/calculate.
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.svc.Calculate(r.Context(), calculator.CalculateInput{
		Num1:      req.Num1,
		Num2:      req.Num2,
		Operation: req.Operation,
	})
	if err != nil {
		h.handleError(w, r, err, msgCalculateMissing)
		return
	}

	writeJSON(w, http.StatusOK, calculateResponse{Success: true, Result: result.Result})
}

// ConvertAndCalculate handles POST /api/convert-and-calculate.
func (h *CalculatorHandler) ConvertAndCalculate(w http.ResponseWriter, r *http.Request) {
	var req convertAndCalculateRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.svc.ConvertAndCalculate(r.Context(), calculator.ConvertAndCalculateInput{
		Text1:     req.Text1,
		Text2:     req.Text2,
		Operation: req.Operation,
	})
	if err != nil {
		h.handleError(w, r, err, msgCombinedMissing)
		return
	}

	writeJSON(w, http.StatusOK, convertAndCalculateResponse{
		Success:   true,
		Num1:      result.Num1,
		Num2:      result.Num2,
		Operation: result.Operation,
		Result:    result.Result,
	})
}

func (h *CalculatorHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
		return false
	}
	writeError(w, http.StatusBadRequest, msgInvalidBody)
	return false
}

// handleError maps service errors to responses. missingMsg is the message
// used when a required field is absent.
func (h *CalculatorHandler) handleError(w http.ResponseWriter, r *http.Request, err error, missingMsg string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, validationResponse(ve, missingMsg))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

func validationResponse(ve *domain.ValidationError, missingMsg string) errorResponse {
	resp := errorResponse{Error: msgTextTooLong}
	for _, fe := range ve.Errors {
		if fe.Message == fieldMessageRequired {
			resp.Error = missingMsg
		}
		resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
	}
	return resp
}
