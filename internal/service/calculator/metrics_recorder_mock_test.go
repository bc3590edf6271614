package calculator

import (
	"sync"
)

var _ metricsRecorder = &metricsRecorderMock{}

type metricsRecorderMock struct {
	ObserveCalculationFunc func(operation string, outcome string)
	ObserveConversionFunc  func(outcome string)

	calls struct {
		ObserveCalculation []struct {
			Operation string
			Outcome   string
		}
		ObserveConversion []struct {
			Outcome string
		}
	}
	lockObserveCalculation sync.RWMutex
	lockObserveConversion  sync.RWMutex
}

func (mock *metricsRecorderMock) ObserveCalculation(operation string, outcome string) {
	callInfo := struct {
		Operation string
		Outcome   string
	}{Operation: operation, Outcome: outcome}
	mock.lockObserveCalculation.Lock()
	mock.calls.ObserveCalculation = append(mock.calls.ObserveCalculation, callInfo)
	mock.lockObserveCalculation.Unlock()
	if mock.ObserveCalculationFunc == nil {
		return
	}
	mock.ObserveCalculationFunc(operation, outcome)
}

func (mock *metricsRecorderMock) ObserveCalculationCalls() []struct {
	Operation string
	Outcome   string
} {
	mock.lockObserveCalculation.RLock()
	calls := mock.calls.ObserveCalculation
	mock.lockObserveCalculation.RUnlock()
	return calls
}

func (mock *metricsRecorderMock) ObserveConversion(outcome string) {
	callInfo := struct{ Outcome string }{Outcome: outcome}
	mock.lockObserveConversion.Lock()
	mock.calls.ObserveConversion = append(mock.calls.ObserveConversion, callInfo)
	mock.lockObserveConversion.Unlock()
	if mock.ObserveConversionFunc == nil {
		return
	}
	mock.ObserveConversionFunc(outcome)
}

func (mock *metricsRecorderMock) ObserveConversionCalls() []struct{ Outcome string } {
	mock.lockObserveConversion.RLock()
	calls := mock.calls.ObserveConversion
	mock.lockObserveConversion.RUnlock()
	return calls
}
