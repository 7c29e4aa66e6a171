package analysis

import "errors"

// ErrAnalysisFailed matches every *AnalysisError with errors.Is.
var ErrAnalysisFailed = errors.New("food analysis failed")

// AnalysisError is the single failure surfaced by the pipeline.
type AnalysisError struct {
	Cause error
}

func (e *AnalysisError) Error() string {
	if e.Cause == nil {
		return ErrAnalysisFailed.Error()
	}
	return ErrAnalysisFailed.Error() + ": " + e.Cause.Error()
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

func (e *AnalysisError) Is(target error) bool {
	return target == ErrAnalysisFailed
}
