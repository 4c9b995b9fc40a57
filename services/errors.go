package services

import "fmt"

// ValidationError indicates a syntactically invalid request field.
type ValidationError struct {
	message string
}

// Error returns the error message for a ValidationError.
func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError returns a new ValidationError.
func NewValidationError(formatString string, a ...interface{}) *ValidationError {
	return &ValidationError{message: fmt.Sprintf(formatString, a...)}
}

// SelfActionError indicates a user tried to act on their own profile.
type SelfActionError struct {
	message string
}

func (e *SelfActionError) Error() string {
	return e.message
}

// NewSelfActionError returns a new SelfActionError.
func NewSelfActionError(formatString string, a ...interface{}) *SelfActionError {
	return &SelfActionError{message: fmt.Sprintf(formatString, a...)}
}

// NotFoundError indicates the target profile does not exist.
type NotFoundError struct {
	message string
}

func (e *NotFoundError) Error() string {
	return e.message
}

// NewNotFoundError returns a new NotFoundError.
func NewNotFoundError(formatString string, a ...interface{}) *NotFoundError {
	return &NotFoundError{message: fmt.Sprintf(formatString, a...)}
}

// DuplicateActionError indicates the ordered pair already has an action row.
type DuplicateActionError struct {
	message string
}

func (e *DuplicateActionError) Error() string {
	return e.message
}

// NewDuplicateActionError returns a new DuplicateActionError.
func NewDuplicateActionError(formatString string, a ...interface{}) *DuplicateActionError {
	return &DuplicateActionError{message: fmt.Sprintf(formatString, a...)}
}

// QuotaExceededError indicates the daily like limit has been reached.
// Remaining is always zero when this error is returned.
type QuotaExceededError struct {
	Remaining int
	message   string
}

func (e *QuotaExceededError) Error() string {
	return e.message
}

// NewQuotaExceededError returns a new QuotaExceededError.
func NewQuotaExceededError(formatString string, a ...interface{}) *QuotaExceededError {
	return &QuotaExceededError{Remaining: 0, message: fmt.Sprintf(formatString, a...)}
}

// TransientStoreError indicates an I/O failure or timeout talking to the
// record store. Retryable by the caller; the write is attempted exactly once.
type TransientStoreError struct {
	message string
	cause   error
}

func (e *TransientStoreError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *TransientStoreError) Unwrap() error {
	return e.cause
}

// NewTransientStoreError wraps a store failure.
func NewTransientStoreError(cause error, formatString string, a ...interface{}) *TransientStoreError {
	return &TransientStoreError{message: fmt.Sprintf(formatString, a...), cause: cause}
}

// NotificationDispatchError indicates a best-effort notification write or
// push failed. Never surfaced to the caller; collected in the dispatch
// outcome and logged.
type NotificationDispatchError struct {
	RecipientID string
	message     string
	cause       error
}

func (e *NotificationDispatchError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *NotificationDispatchError) Unwrap() error {
	return e.cause
}

// NewNotificationDispatchError wraps a notification delivery failure.
func NewNotificationDispatchError(recipientID string, cause error, formatString string, a ...interface{}) *NotificationDispatchError {
	return &NotificationDispatchError{
		RecipientID: recipientID,
		message:     fmt.Sprintf(formatString, a...),
		cause:       cause,
	}
}
