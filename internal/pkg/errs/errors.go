package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Every concrete error
// type in this package unwraps to one of these, plus its cause when one
// was attached, so callers can match on either.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrObjectUnavailable = errors.New("object unavailable")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")
	ErrForbidden         = errors.New("forbidden")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrInvalidState      = errors.New("invalid state")
)

// sanitize flattens values destined for error messages so multi-line input
// cannot break log lines.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError indicates that an object could not be resolved by its
// identifier (order, product, user).
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrObjectNotFound, e.Cause}
	}
	return []error{ErrObjectNotFound}
}

// ObjectUnavailableError indicates that an object exists but is not currently
// orderable or usable, such as a product flagged unavailable.
type ObjectUnavailableError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectUnavailableError(paramName string, id any) *ObjectUnavailableError {
	return &ObjectUnavailableError{ParamName: paramName, ID: id}
}

func NewObjectUnavailableErrorWithCause(paramName string, id any, cause error) *ObjectUnavailableError {
	return &ObjectUnavailableError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectUnavailable, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectUnavailable, e.ID)
}

func (e *ObjectUnavailableError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrObjectUnavailable, e.Cause}
	}
	return []error{ErrObjectUnavailable}
}

// ValueIsInvalidError indicates a malformed or out-of-domain value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrValueIsInvalid, e.Cause}
	}
	return []error{ErrValueIsInvalid}
}

// ValueIsOutOfRangeError indicates a numeric value outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrValueIsOutOfRange, e.Cause}
	}
	return []error{ErrValueIsOutOfRange}
}

// ValueIsRequiredError indicates a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrValueIsRequired, e.Cause}
	}
	return []error{ErrValueIsRequired}
}

// VersionIsInvalidError indicates a stale or malformed aggregate version.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrVersionIsInvalid, e.Cause}
	}
	return []error{ErrVersionIsInvalid}
}

// ForbiddenError indicates that the acting identity lacks the rights for the
// requested mutation.
type ForbiddenError struct {
	Actor  string
	Action string
	Cause  error
}

func NewForbiddenError(actor, action string) *ForbiddenError {
	return &ForbiddenError{Actor: actor, Action: action}
}

func NewForbiddenErrorWithCause(actor, action string, cause error) *ForbiddenError {
	return &ForbiddenError{Actor: actor, Action: action, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s may not %s (cause: %s)", ErrForbidden, e.Actor, e.Action, e.Cause)
	}
	return fmt.Sprintf("%s: %s may not %s", ErrForbidden, e.Actor, e.Action)
}

func (e *ForbiddenError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrForbidden, e.Cause}
	}
	return []error{ErrForbidden}
}

// IllegalTransitionError indicates a status change that is not reachable from
// the current status per the transition table.
type IllegalTransitionError struct {
	From  string
	To    string
	Cause error
}

func NewIllegalTransitionError(from, to string) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

func NewIllegalTransitionErrorWithCause(from, to string, cause error) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to, Cause: cause}
}

func (e *IllegalTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s to %s (cause: %s)", ErrIllegalTransition, e.From, e.To, e.Cause)
	}
	return fmt.Sprintf("%s: %s to %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrIllegalTransition, e.Cause}
	}
	return []error{ErrIllegalTransition}
}

// InvalidStateError indicates an operation that is not permitted while the
// aggregate is in its current state, such as assigning a courier to an order
// that is already on the road.
type InvalidStateError struct {
	Operation string
	State     string
	Cause     error
}

func NewInvalidStateError(operation, state string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, State: state}
}

func NewInvalidStateErrorWithCause(operation, state string, cause error) *InvalidStateError {
	return &InvalidStateError{Operation: operation, State: state, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is not allowed in state %s (cause: %s)",
			ErrInvalidState, e.Operation, e.State, e.Cause)
	}
	return fmt.Sprintf("%s: %s is not allowed in state %s", ErrInvalidState, e.Operation, e.State)
}

func (e *InvalidStateError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrInvalidState, e.Cause}
	}
	return []error{ErrInvalidState}
}
