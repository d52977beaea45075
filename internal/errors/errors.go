package errors

import (
	stderrors "errors"
	"fmt"
)

type Kind string

const (
	ConfigMissing        Kind = "config_missing"
	ConfigIncomplete     Kind = "config_incomplete"
	UnmountedDestination Kind = "unmounted_destination"
	InvokeFailure        Kind = "invoke_failure"
	IOFailure            Kind = "io_failure"
	Internal             Kind = "internal"
)

type AppError struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *AppError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Wrap(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Kind: kind,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

func UserMessage(err error) string {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return err.Error()
	}
	switch appErr.Kind {
	case ConfigMissing:
		return fmt.Sprintf("Configuration file not found: %s", appErr.Path)
	case ConfigIncomplete:
		return fmt.Sprintf("Incomplete configuration in %s: %v", appErr.Path, appErr.Err)
	case UnmountedDestination:
		return fmt.Sprintf("Destination %s does not look like a mounted volume: %v", appErr.Path, appErr.Err)
	case InvokeFailure:
		return fmt.Sprintf("Mirroring tool failed: %v", appErr.Err)
	case IOFailure:
		return fmt.Sprintf("I/O error: %s: %v", appErr.Path, appErr.Err)
	default:
		return fmt.Sprintf("Unexpected error: %v", appErr.Err)
	}
}
