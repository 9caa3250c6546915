package domain

import (
	"context"
	"time"
)

// Auditable is implemented by entities that keep created/modified stamps.
// The entity store stamps them on create and update.
type Auditable interface {
	SetCreated(at time.Time)
	SetModified(at time.Time)
}

// Transactor runs fn inside one database transaction. Changes staged with
// deferred persistence are flushed before commit; any error rolls back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// AfterCommit defers fn until the transaction carried by ctx commits.
	// Without a transaction fn runs immediately.
	AfterCommit(ctx context.Context, fn func())
}

// Paging is a validated 1-based page request
type Paging struct {
	PageNumber int
	PageSize   int
}

// Offset returns how many rows are skipped before the page starts
func (p Paging) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// Valid reports whether both values are positive
func (p Paging) Valid() bool {
	return p.PageNumber >= 1 && p.PageSize >= 1
}

// SortBy is the ordering requested for article listings
type SortBy string

const (
	SortByNone       SortBy = "none"
	SortByMostRecent SortBy = "recent"
	SortByMostLikes  SortBy = "likes"
)
