package domain

import "context"

// BloomRepository is a probabilistic set of known article ids, used to answer
// "definitely absent" without touching the cache or the database.
type BloomRepository interface {
	// Add records one article id
	Add(ctx context.Context, id int64) error

	// Exists reports whether the id may exist.
	// false means the article definitely does not exist.
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd records many ids in one round trip, used when warming up
	BulkAdd(ctx context.Context, ids []int64) error
}
