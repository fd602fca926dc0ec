package loxerrors

import (
	"errors"
	"fmt"
)

var (
	ErrScanUnexpectedCharacter = errors.New("Unexpected character")
	ErrScanUnterminatedString  = errors.New("Unterminated string.")
)

type ScannerError struct {
	line    int
	cause   error
	details string
}

func NewScanError(line int, cause error, details string) *ScannerError {
	return &ScannerError{line: line, cause: cause, details: details}
}

// Line is the source line the lexical error was detected on.
func (s *ScannerError) Line() int {
	return s.line
}

// Message is the error text without the location prefix.
func (s *ScannerError) Message() string {
	if s.details == "" {
		return s.cause.Error()
	}
	return fmt.Sprintf("%v: %s", s.cause, s.details)
}

// Error implements error.
func (s *ScannerError) Error() string {
	return formatReport(s.line, "", s.Message())
}

func (s *ScannerError) Unwrap() error {
	return s.cause
}

var _ error = (*ScannerError)(nil)
