package docent

import (
	"errors"
	"fmt"
)

// ErrorCode classifies tour errors.
type ErrorCode int

const (
	// ErrCodeUnknown is the zero code for errors outside the taxonomy.
	ErrCodeUnknown ErrorCode = iota

	// ErrCodeInvalidStatus marks an operation not allowed in the
	// tour's current status.
	ErrCodeInvalidStatus

	// ErrCodeStepNotFound marks navigation to an index outside the
	// step list.
	ErrCodeStepNotFound

	// ErrCodeTransitionPending marks navigation attempted while a step
	// change is still awaiting its before-hooks.
	ErrCodeTransitionPending

	// ErrCodeHookFailed marks a step lifecycle hook returning an
	// error.
	ErrCodeHookFailed

	// ErrCodeInvalidConfiguration marks invalid construction input.
	ErrCodeInvalidConfiguration

	// ErrCodeAlreadyAttached marks a second Attach without a Detach in
	// between.
	ErrCodeAlreadyAttached
)

// NavigationError reports a navigation operation rejected by the
// lifecycle guards.
type NavigationError struct {
	Code   ErrorCode
	Op     string
	Status Status
	Reason string
}

// NewNavigationError creates a NavigationError.
func NewNavigationError(code ErrorCode, op string, status Status, reason string) *NavigationError {
	return &NavigationError{Code: code, Op: op, Status: status, Reason: reason}
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("docent: %s: %s (status %s)", e.Op, e.Reason, e.Status)
}

// HookError reports a step lifecycle hook failure.
type HookError struct {
	StepID string
	Phase  HookPhase
	Err    error
}

// NewHookError wraps a hook failure with its step and phase.
func NewHookError(stepID string, phase HookPhase, err error) *HookError {
	return &HookError{StepID: stepID, Phase: phase, Err: err}
}

func (e *HookError) Error() string {
	return fmt.Sprintf("docent: step %q %s hook: %v", e.StepID, e.Phase, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports invalid tour construction input.
type ConfigurationError struct {
	Component string
	Issue     string
}

// NewConfigurationError creates a ConfigurationError.
func NewConfigurationError(component, issue string) *ConfigurationError {
	return &ConfigurationError{Component: component, Issue: issue}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("docent: invalid %s: %s", e.Component, e.Issue)
}

// IsNavigationError reports whether err is a NavigationError.
func IsNavigationError(err error) bool {
	var e *NavigationError
	return errors.As(err, &e)
}

// IsHookError reports whether err is a HookError.
func IsHookError(err error) bool {
	var e *HookError
	return errors.As(err, &e)
}

// IsConfigurationError reports whether err is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

// GetErrorCode extracts the ErrorCode carried by err, or
// ErrCodeUnknown when err is outside the taxonomy.
func GetErrorCode(err error) ErrorCode {
	var nav *NavigationError
	if errors.As(err, &nav) {
		return nav.Code
	}
	var hook *HookError
	if errors.As(err, &hook) {
		return ErrCodeHookFailed
	}
	var conf *ConfigurationError
	if errors.As(err, &conf) {
		return ErrCodeInvalidConfiguration
	}
	return ErrCodeUnknown
}
