// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrDiverged         = errors.New("simulation diverged")
	ErrScenarioNotFound = errors.New("scenario not found")
	ErrScenarioExists   = errors.New("scenario already exists")
	ErrDatabaseError    = errors.New("database error")
	ErrConfigInvalid    = errors.New("invalid configuration")
)

// ValidationError represents a rejected simulation parameter.
type ValidationError struct {
	Field   string
	Value   float64
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value float64, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// DivergenceError reports that the defensive trade cap was exceeded before
// the balance reached the target.
type DivergenceError struct {
	Trades  int
	Balance float64
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("simulation exceeded %d trades without reaching target (balance: %.2f)", e.Trades, e.Balance)
}

func (e *DivergenceError) Unwrap() error {
	return ErrDiverged
}

// NewDivergenceError creates a new DivergenceError.
func NewDivergenceError(trades int, balance float64) *DivergenceError {
	return &DivergenceError{
		Trades:  trades,
		Balance: balance,
	}
}

// StoreError represents an error from the scenario store.
type StoreError struct {
	Op   string
	Name string
	Err  error
}

func (e *StoreError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("store error [%s] %s: %v", e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("store error [%s]: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(op, name string, err error) *StoreError {
	return &StoreError{
		Op:   op,
		Name: name,
		Err:  err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
