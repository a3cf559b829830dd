package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound          = errors.New("object not found")
	ErrValueIsInvalid          = errors.New("value is invalid")
	ErrValueIsOutOfRange       = errors.New("value is out of range")
	ErrValueIsRequired         = errors.New("value is required")
	ErrVersionIsInvalid        = errors.New("version is invalid")
	ErrTransitionIsInvalid     = errors.New("transition is invalid")
	ErrObjectIsAlreadyAssigned = errors.New("object is already assigned")
	ErrObjectIsNotEligible     = errors.New("object is not eligible")
	ErrStateIsInvalid          = errors.New("state is invalid")
	ErrActionIsForbidden       = errors.New("action is forbidden")
)

func sanitize(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return sanitize(msg)
	}
	return sanitize(fmt.Sprintf("%s (cause: %v)", msg, cause))
}

// ObjectNotFoundError is returned when a lookup by identifier yields nothing.
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
		return withCause(
			fmt.Sprintf("%s: param is: %s, ID is: %s", ErrObjectNotFound, e.ParamName, e.ID), e.Cause)
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a value fails a business rule.
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
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError carries the rejected value together with the accepted bounds.
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
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max), e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a mandatory value is missing.
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
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause keeps its historical name; it builds the error without a cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName), e.Cause)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// TransitionIsInvalidError is returned when a state machine has no edge from From to To for Role.
type TransitionIsInvalidError struct {
	From  string
	To    string
	Role  string
	Cause error
}

func NewTransitionIsInvalidError(from, to, role string) *TransitionIsInvalidError {
	return &TransitionIsInvalidError{From: from, To: to, Role: role}
}

func NewTransitionIsInvalidErrorWithCause(from, to, role string, cause error) *TransitionIsInvalidError {
	return &TransitionIsInvalidError{From: from, To: to, Role: role, Cause: cause}
}

func (e *TransitionIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s -> %s is not allowed for %s",
		ErrTransitionIsInvalid, e.From, e.To, e.Role), e.Cause)
}

func (e *TransitionIsInvalidError) Unwrap() error {
	return ErrTransitionIsInvalid
}

// ObjectIsAlreadyAssignedError is returned when a job was bound to another assignee first.
type ObjectIsAlreadyAssignedError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectIsAlreadyAssignedError(paramName string, id any) *ObjectIsAlreadyAssignedError {
	return &ObjectIsAlreadyAssignedError{ParamName: paramName, ID: id}
}

func NewObjectIsAlreadyAssignedErrorWithCause(paramName string, id any, cause error) *ObjectIsAlreadyAssignedError {
	return &ObjectIsAlreadyAssignedError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectIsAlreadyAssignedError) Error() string {
	return withCause(fmt.Sprintf("%s: param is: %s, ID is: %v",
		ErrObjectIsAlreadyAssigned, e.ParamName, e.ID), e.Cause)
}

func (e *ObjectIsAlreadyAssignedError) Unwrap() error {
	return ErrObjectIsAlreadyAssigned
}

// ObjectIsNotEligibleError is returned when an otherwise valid object may not take part in an operation.
type ObjectIsNotEligibleError struct {
	ParamName string
	ID        any
	Reason    string
}

func NewObjectIsNotEligibleError(paramName string, id any, reason string) *ObjectIsNotEligibleError {
	return &ObjectIsNotEligibleError{ParamName: paramName, ID: id, Reason: reason}
}

func (e *ObjectIsNotEligibleError) Error() string {
	return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v, reason is: %s",
		ErrObjectIsNotEligible, e.ParamName, e.ID, e.Reason))
}

func (e *ObjectIsNotEligibleError) Unwrap() error {
	return ErrObjectIsNotEligible
}

// StateIsInvalidError is returned when an object's current state does not permit an operation.
type StateIsInvalidError struct {
	ParamName string
	State     any
	Cause     error
}

func NewStateIsInvalidError(paramName string, state any) *StateIsInvalidError {
	return &StateIsInvalidError{ParamName: paramName, State: state}
}

func NewStateIsInvalidErrorWithCause(paramName string, state any, cause error) *StateIsInvalidError {
	return &StateIsInvalidError{ParamName: paramName, State: state, Cause: cause}
}

func (e *StateIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s is %v", ErrStateIsInvalid, e.ParamName, e.State), e.Cause)
}

func (e *StateIsInvalidError) Unwrap() error {
	return ErrStateIsInvalid
}

// ActionIsForbiddenError is returned when the caller's role lacks permission for an action.
type ActionIsForbiddenError struct {
	Role   string
	Action string
}

func NewActionIsForbiddenError(role, action string) *ActionIsForbiddenError {
	return &ActionIsForbiddenError{Role: role, Action: action}
}

func (e *ActionIsForbiddenError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s cannot %s", ErrActionIsForbidden, e.Role, e.Action))
}

func (e *ActionIsForbiddenError) Unwrap() error {
	return ErrActionIsForbidden
}
