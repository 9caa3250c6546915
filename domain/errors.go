package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrInvalidOperation will throw if the action breaks a business rule
	ErrInvalidOperation = errors.New("operation is not allowed")
	// ErrCacheMiss is returned by cache implementations when the key is absent
	ErrCacheMiss = errors.New("cache miss")
	// ErrNoUnitOfWork is returned when a deferred change is staged outside a unit of work
	ErrNoUnitOfWork = errors.New("no unit of work in context")

	// ErrFeedbackAttemptsExceeded is returned once a user used up MaxArticleFeedbackAttempts
	ErrFeedbackAttemptsExceeded = fmt.Errorf("%w: user has exceeded max feedback attempts", ErrInvalidOperation)
)

// EntityNotFoundError carries the entity kind and id that could not be found.
// It matches ErrNotFound with errors.Is.
type EntityNotFoundError struct {
	Entity string
	ID     int64
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d was not found", e.Entity, e.ID)
}

func (e *EntityNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewEntityNotFound builds an EntityNotFoundError
func NewEntityNotFound(entity string, id int64) error {
	return &EntityNotFoundError{Entity: entity, ID: id}
}

// DuplicateTitleError is returned when another article already uses the title.
type DuplicateTitleError struct {
	Title string
}

func (e *DuplicateTitleError) Error() string {
	return fmt.Sprintf("article with title '%s' already exists", e.Title)
}

func (e *DuplicateTitleError) Is(target error) bool {
	return target == ErrInvalidOperation
}

// InvalidArgument wraps ErrBadParamInput with the offending parameter name.
func InvalidArgument(name string) error {
	return fmt.Errorf("%w: %s", ErrBadParamInput, name)
}
