// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Caller-supplied input violates a documented bound.
	ErrCodeValidationFailed ErrorCode = "VALIDATION_ERROR"

	// Referenced entries absent from the loaded reference tables.
	ErrCodeCareerNotFound      ErrorCode = "CAREER_NOT_FOUND"
	ErrCodeSimulationNotFound  ErrorCode = "SIMULATION_NOT_FOUND"
	ErrCodeRealityDataNotFound ErrorCode = "REALITY_DATA_NOT_FOUND"
	ErrCodeTipsUnavailable     ErrorCode = "TIPS_UNAVAILABLE"

	// A reference file was absent or malformed at load time. Components fall
	// back to built-in defaults, so this surfaces as a warning, never as a
	// request failure.
	ErrCodeReferenceDataMissing ErrorCode = "REFERENCE_DATA_MISSING"

	// Anything else caught at the worker boundary.
	ErrCodeUnexpected ErrorCode = "UNEXPECTED_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	if e.ErrorVariables != nil {
		for k, v := range e.ErrorVariables {
			vars[k] = v
		}
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewValidationError creates a non-retryable input validation error.
func NewValidationError(message, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCareerNotFoundError creates a non-retryable lookup error. validNames
// carries the list of valid keys so the caller can self-correct.
func NewCareerNotFoundError(careerName string, validNames []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCareerNotFound,
		Message:   "Career not found in reference data",
		Details:   fmt.Sprintf("careerName: %s", careerName),
		Retryable: false,
		Metadata:  map[string]interface{}{"availableCareers": validNames},
		Timestamp: time.Now().UTC(),
	}
}

// NewSimulationNotFoundError creates a non-retryable simulation lookup error.
func NewSimulationNotFoundError(careerName string, validNames []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSimulationNotFound,
		Message:   fmt.Sprintf("Simulation not available for %s", careerName),
		Details:   fmt.Sprintf("careerName: %s", careerName),
		Retryable: false,
		Metadata:  map[string]interface{}{"availableCareers": validNames},
		Timestamp: time.Now().UTC(),
	}
}

// NewRealityDataNotFoundError creates a non-retryable reality-check lookup error.
func NewRealityDataNotFoundError(careerName string, validNames []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRealityDataNotFound,
		Message:   fmt.Sprintf("Career reality data not found for %q", careerName),
		Details:   fmt.Sprintf("careerName: %s", careerName),
		Retryable: false,
		Metadata:  map[string]interface{}{"availableCareers": validNames},
		Timestamp: time.Now().UTC(),
	}
}

// NewTipsUnavailableError signals that no tip survived the requested filters.
func NewTipsUnavailableError(careerFocus, mode string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTipsUnavailable,
		Message:   "No career tips available for the requested filters",
		Details:   fmt.Sprintf("careerFocus: %s, mode: %s", careerFocus, mode),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewReferenceDataMissingError records a reference file that could not be
// loaded. Load-time only; the store substitutes built-in defaults.
func NewReferenceDataMissingError(table string, err error) *StandardError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return &StandardError{
		Code:      ErrCodeReferenceDataMissing,
		Message:   fmt.Sprintf("Reference table %q unavailable, using built-in defaults", table),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnexpectedError wraps any failure not covered by the taxonomy.
func NewUnexpectedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnexpected,
		Message:   "Unexpected engine error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// GetRetryCount returns the recommended retry count. All engine operations
// are local computation over in-memory tables, so nothing is retryable.
func GetRetryCount(code ErrorCode) int {
	return 0
}

// ConvertToBPMNError converts a StandardError to a BPMNError.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           string(stdErr.Code),
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        GetRetryCount(stdErr.Code),
		ErrorVariables: vars,
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsNotFound reports whether the code belongs to the not-found family.
func IsNotFound(code ErrorCode) bool {
	return strings.HasSuffix(string(code), "_NOT_FOUND")
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "VALIDATION"):
		return "VALIDATION"
	case strings.Contains(codeStr, "NOT_FOUND") || strings.Contains(codeStr, "UNAVAILABLE"):
		return "LOOKUP"
	case strings.Contains(codeStr, "REFERENCE"):
		return "REFERENCE_DATA"
	default:
		return "OTHER"
	}
}
