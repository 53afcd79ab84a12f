package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned across layers. Handlers map them to HTTP status codes.
var (
	// ErrInvalidRequest indicates malformed or invalid input
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidID indicates an identifier that the store cannot address
	ErrInvalidID = errors.New("invalid id format")

	// ErrNotFound is the parent of all not-found errors
	ErrNotFound = errors.New("not found")

	ErrHotelNotFound   = fmt.Errorf("hotel %w", ErrNotFound)
	ErrBookingNotFound = fmt.Errorf("booking %w", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)

	// ErrUserExists is returned when registering an email that is already taken
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned for unknown emails and wrong passwords alike
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized indicates a missing, invalid or expired token
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates an authenticated principal lacking the required role
	ErrForbidden = errors.New("access denied")

	// ErrStorage wraps any failure of the storage collaborator
	ErrStorage = errors.New("storage failure")

	// ErrUploadFailed wraps failures of the media collaborator
	ErrUploadFailed = errors.New("image upload failed")

	// ErrPaymentFailed wraps failures of the payment collaborator
	ErrPaymentFailed = errors.New("payment collaborator failure")

	// ErrPaymentMismatch is returned when an intent belongs to another hotel or user
	ErrPaymentMismatch = errors.New("payment intent mismatch")

	// ErrPaymentNotSucceeded is returned when an intent has not been captured
	ErrPaymentNotSucceeded = errors.New("payment intent not succeeded")

	// ErrNotificationFailed wraps failures of the email collaborator
	ErrNotificationFailed = errors.New("notification failed")
)

// Collaborator names used in CollaboratorError.
const (
	CollaboratorStorage = "storage"
	CollaboratorMedia   = "media"
	CollaboratorPayment = "payment"
	CollaboratorMail    = "mail"
)

// CollaboratorError records which external system failed and why.
type CollaboratorError struct {
	// Collaborator is the name of the failing external system
	Collaborator string

	// Kind is the sentinel classifying the failure (e.g., ErrStorage)
	Kind error

	// Err is the underlying error
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Collaborator, e.Kind, e.Err)
}

// Unwrap exposes both the classifying sentinel and the cause.
func (e *CollaboratorError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// NewStorageError wraps a storage failure.
func NewStorageError(err error) error {
	return &CollaboratorError{Collaborator: CollaboratorStorage, Kind: ErrStorage, Err: err}
}

// NewUploadError wraps a media failure.
func NewUploadError(err error) error {
	return &CollaboratorError{Collaborator: CollaboratorMedia, Kind: ErrUploadFailed, Err: err}
}

// NewPaymentError wraps a payment failure.
func NewPaymentError(err error) error {
	return &CollaboratorError{Collaborator: CollaboratorPayment, Kind: ErrPaymentFailed, Err: err}
}

// NewNotificationError wraps a mail failure.
func NewNotificationError(err error) error {
	return &CollaboratorError{Collaborator: CollaboratorMail, Kind: ErrNotificationFailed, Err: err}
}

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap lets errors.Is(err, ErrInvalidRequest) hold for validation errors.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// NewValidationError creates a field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest formats a message and wraps ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest checks whether err is an invalid request error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsNotFound checks whether err is any not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsCollaboratorFailure checks whether err came from an external system.
func IsCollaboratorFailure(err error) bool {
	var ce *CollaboratorError
	return errors.As(err, &ce)
}

// ValidationErrors collects field validation failures in the order they were found.
type ValidationErrors struct {
	Errors []*ValidationError
}

// Add records a failure for field.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, NewValidationError(field, message))
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// Err returns v as an error, or nil when nothing failed.
func (v *ValidationErrors) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return v
}

func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Error()
}

// Unwrap lets errors.Is(err, ErrInvalidRequest) hold for collected validation errors.
func (v *ValidationErrors) Unwrap() error {
	return ErrInvalidRequest
}

// ToMap converts validation errors to a field to message map.
// When a field fails more than once the first message wins.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		if _, ok := result[e.Field]; !ok {
			result[e.Field] = e.Message
		}
	}
	return result
}

// ValidationDetails extracts per-field details from err, or nil when err carries none.
func ValidationDetails(err error) map[string]string {
	var many *ValidationErrors
	if errors.As(err, &many) {
		return many.ToMap()
	}
	var one *ValidationError
	if errors.As(err, &one) {
		return map[string]string{one.Field: one.Message}
	}
	return nil
}
