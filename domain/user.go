package domain

import "context"

type UserType int8

const (
	UserTypeEmployee  UserType = 1
	UserTypePublisher UserType = 2
)

func (t UserType) String() string {
	switch t {
	case UserTypeEmployee:
		return "Employee"
	case UserTypePublisher:
		return "Publisher"
	default:
		return "Unknown"
	}
}

// User represents a user entity in the system.
// Users own articles and leave feedback on them.
type User struct {
	ID       int64    // Unique identifier
	Name     string   // Display name
	Email    string   // Contact email
	UserType UserType // Employee or Publisher
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns an EntityNotFoundError if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// IsValidID reports whether exactly one user has the id.
	IsValidID(ctx context.Context, id int64) (bool, error)
}
