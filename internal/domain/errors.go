package domain

import (
	"errors"
	"fmt"
)

// ErrorType classifies pipeline failures.
type ErrorType string

const (
	ErrorTypeUnsupportedFormat ErrorType = "unsupported_format"
	ErrorTypeExtraction        ErrorType = "extraction"
	ErrorTypeConversion        ErrorType = "conversion"
	ErrorTypePersist           ErrorType = "persist"
	ErrorTypeSummarization     ErrorType = "summarization"
	ErrorTypeValidation        ErrorType = "validation"
)

// DomainError represents a pipeline error with its classification and cause.
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewError creates a new domain error
func NewError(errType ErrorType, message string, err error) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

func UnsupportedFormat(message string, err error) *DomainError {
	return NewError(ErrorTypeUnsupportedFormat, message, err)
}

func ExtractionError(message string, err error) *DomainError {
	return NewError(ErrorTypeExtraction, message, err)
}

func ConversionError(message string, err error) *DomainError {
	return NewError(ErrorTypeConversion, message, err)
}

func PersistError(message string, err error) *DomainError {
	return NewError(ErrorTypePersist, message, err)
}

func SummarizationError(message string, err error) *DomainError {
	return NewError(ErrorTypeSummarization, message, err)
}

func ValidationError(message string, err error) *DomainError {
	return NewError(ErrorTypeValidation, message, err)
}

// IsType reports whether any error in err's chain is a DomainError of type t.
func IsType(err error, t ErrorType) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Type == t
	}
	return false
}
