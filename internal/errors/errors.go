// Package errors defines the typed errors raised at the facade and CLI
// boundary. The codec core itself is total (spec 7): these errors only
// ever originate from input reading, option validation, config loading,
// and output writing in the facade and the CLI.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors.
var (
	ErrEmptyInput    = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON   = errors.New("invalid JSON format")
	ErrNoInput       = errors.New("no input provided: please specify a file with -i or pipe data to stdin")
	ErrFileNotFound  = errors.New("file not found")
	ErrFileEmpty     = errors.New("file is empty")
	ErrInvalidOption = errors.New("invalid option value")
)

// ErrorType categorizes errors raised by the facade, CLI, and config layers.
type ErrorType string

const (
	ErrorTypeInput   ErrorType = "input"
	ErrorTypeDecode  ErrorType = "decode"
	ErrorTypeEncode  ErrorType = "encode"
	ErrorTypeConfig  ErrorType = "config"
	ErrorTypeOutput  ErrorType = "output"
	ErrorTypeUnknown ErrorType = "unknown"
)

// CodecError is an application-specific error carrying a category and an
// optional wrapped cause.
type CodecError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CodecError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error, if any.
func (e *CodecError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is by comparing error types.
func (e *CodecError) Is(target error) bool {
	t, ok := target.(*CodecError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates an error related to reading input.
func NewInputError(message string, err error) *CodecError {
	return &CodecError{Type: ErrorTypeInput, Message: message, Err: err}
}

// NewDecodeError creates an error related to decoding TOON text.
func NewDecodeError(message string, err error) *CodecError {
	return &CodecError{Type: ErrorTypeDecode, Message: message, Err: err}
}

// NewEncodeError creates an error related to encoding a value tree.
func NewEncodeError(message string, err error) *CodecError {
	return &CodecError{Type: ErrorTypeEncode, Message: message, Err: err}
}

// NewConfigError creates an error related to loading or merging config.
func NewConfigError(message string, err error) *CodecError {
	return &CodecError{Type: ErrorTypeConfig, Message: message, Err: err}
}

// NewOutputError creates an error related to writing output.
func NewOutputError(message string, err error) *CodecError {
	return &CodecError{Type: ErrorTypeOutput, Message: message, Err: err}
}

// UserFriendlyError renders err as a message suitable for the CLI to print.
func UserFriendlyError(err error) string {
	var codecErr *CodecError
	if errors.As(err, &codecErr) {
		switch codecErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", codecErr.Message)
		case ErrorTypeDecode:
			return fmt.Sprintf("Decode error: %s", codecErr.Message)
		case ErrorTypeEncode:
			return fmt.Sprintf("Encode error: %s", codecErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Config error: %s", codecErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", codecErr.Message)
		default:
			return fmt.Sprintf("Error: %s", codecErr.Message)
		}
	}

	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid TOON or JSON data."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe data to stdin."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty."
	}
	if errors.Is(err, ErrInvalidOption) {
		return "Error: One of the supplied options is invalid."
	}

	return fmt.Sprintf("Error: %v", err)
}
