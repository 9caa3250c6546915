package cache

import "time"

// DataWithLogicalExpire wraps a cached value with a soft deadline. Readers
// keep serving an expired value while one of them rebuilds it.
type DataWithLogicalExpire[T any] struct {
	Data      T         `json:"data"`
	ExpireAt  time.Time `json:"expire_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsLogicalExpired reports whether the soft deadline has passed at now
func (d *DataWithLogicalExpire[T]) IsLogicalExpired(now time.Time) bool {
	return now.After(d.ExpireAt)
}

func NewDataWithLogicalExpire[T any](data T, now time.Time, ttl time.Duration) *DataWithLogicalExpire[T] {
	return &DataWithLogicalExpire[T]{
		Data:      data,
		ExpireAt:  now.Add(ttl),
		CreatedAt: now,
	}
}
