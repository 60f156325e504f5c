package domain

import "time"

// CacheEntry is an encoded response stored in the response cache. Entries are
// never mutated after they are stored; a new Put for the same URL replaces the
// whole entry.
type CacheEntry struct {
	URL      string
	Body     []byte
	StoredAt time.Time
}

// Size returns the number of body bytes accounted against a cache budget.
func (e CacheEntry) Size() int64 {
	return int64(len(e.Body))
}
