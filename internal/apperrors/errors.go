package apperrors

import "fmt"

// ErrValidation represents a rejected user-supplied value (template, rule,
// mode) with the reason shown to the user.
type ErrValidation struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ErrValidation) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return e.Reason
}

// Is allows for error checking with errors.Is().
func (e *ErrValidation) Is(target error) bool {
	_, ok := target.(*ErrValidation)
	return ok
}

// NewValidationError creates a new ErrValidation.
func NewValidationError(field, reason string) *ErrValidation {
	return &ErrValidation{
		Field:  field,
		Reason: reason,
	}
}

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// NewSettingsNotFoundError creates a specific error for a user whose rename
// settings were expected to exist.
func NewSettingsNotFoundError(userID int64) *ErrNotFound {
	return &ErrNotFound{
		Resource: "rename settings",
		ID:       userID,
	}
}

// ErrStore wraps a settings-store failure with the operation that hit it.
type ErrStore struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *ErrStore) Error() string {
	return fmt.Sprintf("settings store %s failed: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying failure for errors.Is/As chains.
func (e *ErrStore) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrStore) Is(target error) bool {
	_, ok := target.(*ErrStore)
	return ok
}

// NewStoreError creates a new ErrStore.
func NewStoreError(op string, err error) *ErrStore {
	return &ErrStore{
		Op:  op,
		Err: err,
	}
}

// ErrUnknownProvider is returned when the cache factory is asked for a
// provider name that was never registered.
type ErrUnknownProvider struct {
	Provider string
}

// Error implements the error interface.
func (e *ErrUnknownProvider) Error() string {
	return fmt.Sprintf("unknown cache provider: %s", e.Provider)
}

// Is allows for error checking with errors.Is().
func (e *ErrUnknownProvider) Is(target error) bool {
	_, ok := target.(*ErrUnknownProvider)
	return ok
}

// NewUnknownProviderError creates a new ErrUnknownProvider.
func NewUnknownProviderError(provider string) *ErrUnknownProvider {
	return &ErrUnknownProvider{Provider: provider}
}
