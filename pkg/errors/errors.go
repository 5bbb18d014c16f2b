package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNumber     = errors.New("invalid number")
	ErrMalformedInput    = errors.New("malformed puzzle input")
	ErrUnknownPuzzle     = errors.New("unknown puzzle")
	ErrInputNotFound     = errors.New("input not found")
	ErrInvalidPattern    = errors.New("invalid split pattern")
	ErrConfigInvalid     = errors.New("invalid configuration")
	ErrExpectationFailed = errors.New("expectation failed")
	ErrNotImplemented    = errors.New("not implemented")
)

func NewNumberError(tok string) error {
	return fmt.Errorf("%w: %q", ErrInvalidNumber, tok)
}

// NewInputError reports malformed puzzle input with the reason and offending text.
// NewInputError 报告格式错误的谜题输入。
func NewInputError(reason string, text string) error {
	return fmt.Errorf("%w: %s: %q", ErrMalformedInput, reason, text)
}

func NewPuzzleError(id string) error {
	return fmt.Errorf("%w: %s", ErrUnknownPuzzle, id)
}

func NewFileError(path string, reason error) error {
	return fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, reason)
}

func NewPatternError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidPattern, reason)
}

func NewConfigError(field string, value interface{}) error {
	return fmt.Errorf("%w: field=%s value=%v", ErrConfigInvalid, field, value)
}

func NewExpectationError(id string, expr string) error {
	return fmt.Errorf("%w: %s: %s", ErrExpectationFailed, id, expr)
}

// Is, As and Join re-export the standard helpers so callers need a single import.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target any) bool { return errors.As(err, target) }

func Join(errs ...error) error { return errors.Join(errs...) }

// Must returns v, panicking if err is non-nil.
// It marks places where an error means a programming bug.
// Must 在 err 非 nil 时 panic，用于不变量被破坏的场景。
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
