// Package errors provides the typed error taxonomy for the notification
// engine. Every component returns (value, error); the assembler
// short-circuits on the first error and returns it unchanged.
package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeProgramCatalogMismatch    ErrorCode = "PROGRAM_CATALOG_MISMATCH"
	ErrCodeUnsupportedSubmissionType ErrorCode = "UNSUPPORTED_SUBMISSION_TYPE"
	ErrCodeUnsupportedEvent          ErrorCode = "UNSUPPORTED_EVENT"
	ErrCodeEmptyQuestionDivision     ErrorCode = "EMPTY_QUESTION_DIVISION"
	ErrCodeQuestionNotFound          ErrorCode = "QUESTION_NOT_FOUND"
	ErrCodeTemplateNotFound          ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrCodeInvalidTemplateName       ErrorCode = "INVALID_TEMPLATE_NAME"
	ErrCodeTemplateDataInvalid       ErrorCode = "TEMPLATE_DATA_INVALID"
	ErrCodeTemplateExecutionFailed   ErrorCode = "TEMPLATE_EXECUTION_FAILED"
	ErrCodeMissingConfigField        ErrorCode = "MISSING_CONFIG_FIELD"
)

// ValidationError reports a program-ID/catalog mismatch. Always fatal to
// the notification build; no partial send.
type ValidationError struct {
	Code         ErrorCode
	StateCode    string
	RequestedIDs []string
	Message      string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ValidationError[%s]: %s", e.Code, e.Message)
}

// RoutingError reports an unsupported submission shape or a question-round
// computation failure.
type RoutingError struct {
	Code    ErrorCode
	Message string
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("RoutingError[%s]: %s", e.Code, e.Message)
}

// RenderError reports a template lookup or execution failure. The renderer
// error, if any, is wrapped.
type RenderError struct {
	Code         ErrorCode
	TemplateName string
	Message      string
	Err          error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("RenderError[%s]: %s", e.Code, e.Message)
}

func (e *RenderError) Unwrap() error { return e.Err }

// ConfigError reports malformed configuration. Raised once at process
// start, never per notification build.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("ConfigError[%s]: %s", ErrCodeMissingConfigField, e.Message)
}

// ==========================
// Constructors
// ==========================

// NewProgramCatalogError creates the fatal catalog-mismatch error, naming
// the state and the requested ids.
func NewProgramCatalogError(stateCode string, requestedIDs []string) *ValidationError {
	return &ValidationError{
		Code:         ErrCodeProgramCatalogMismatch,
		StateCode:    stateCode,
		RequestedIDs: requestedIDs,
		Message: fmt.Sprintf("programs do not match %s state catalog: [%s]",
			stateCode, strings.Join(requestedIDs, ", ")),
	}
}

func NewUnsupportedSubmissionTypeError(submissionType string) *RoutingError {
	return &RoutingError{
		Code:    ErrCodeUnsupportedSubmissionType,
		Message: fmt.Sprintf("unsupported submission type: %q", submissionType),
	}
}

func NewUnsupportedEventError(kind, audience string) *RoutingError {
	return &RoutingError{
		Code:    ErrCodeUnsupportedEvent,
		Message: fmt.Sprintf("no dispatch entry for event %s/%s", kind, audience),
	}
}

func NewEmptyDivisionError(division string) *RoutingError {
	return &RoutingError{
		Code:    ErrCodeEmptyQuestionDivision,
		Message: fmt.Sprintf("no questions in division %s", division),
	}
}

func NewQuestionNotFoundError(questionID string) *RoutingError {
	return &RoutingError{
		Code:    ErrCodeQuestionNotFound,
		Message: fmt.Sprintf("current question not found: %s", questionID),
	}
}

func NewTemplateNotFoundError(name string) *RenderError {
	return &RenderError{
		Code:         ErrCodeTemplateNotFound,
		TemplateName: name,
		Message:      fmt.Sprintf("template not found: %s", name),
	}
}

func NewInvalidTemplateNameError(name string) *RenderError {
	return &RenderError{
		Code:         ErrCodeInvalidTemplateName,
		TemplateName: name,
		Message:      fmt.Sprintf("template name must be alphanumeric: %q", name),
	}
}

func NewTemplateDataInvalidError(name, details string) *RenderError {
	return &RenderError{
		Code:         ErrCodeTemplateDataInvalid,
		TemplateName: name,
		Message:      fmt.Sprintf("template data invalid for %s: %s", name, details),
	}
}

func NewTemplateExecutionError(name string, err error) *RenderError {
	return &RenderError{
		Code:         ErrCodeTemplateExecutionFailed,
		TemplateName: name,
		Message:      fmt.Sprintf("template %s execution failed: %v", name, err),
		Err:          err,
	}
}

func NewConfigFieldError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// CodeOf extracts the taxonomy code from any engine error, for metrics
// labels and job-layer logging.
func CodeOf(err error) ErrorCode {
	switch e := err.(type) {
	case *ValidationError:
		return e.Code
	case *RoutingError:
		return e.Code
	case *RenderError:
		return e.Code
	case *ConfigError:
		return ErrCodeMissingConfigField
	default:
		return "INTERNAL_ERROR"
	}
}
