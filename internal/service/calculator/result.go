package calculator

// ConvertResult is the outcome of Convert.
type ConvertResult struct {
	Original string
	Result   float64
}

// CalculateResult is the outcome of Calculate.
type CalculateResult struct {
	Result float64
}

// ConvertAndCalculateResult carries both parsed operands and the result.
type ConvertAndCalculateResult struct {
	Num1      float64
	Num2      float64
	Operation string
	Result    float64
}
