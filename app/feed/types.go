package feed

import (
	"sort"
	"strconv"
	"time"
)

// Entry is one news item. Identity is the (timestamp, title) pair; the
// source feeds expose no stable numeric IDs.
type Entry struct {
	Title     string
	Timestamp time.Time
	Body      string
}

// Key renders the composite identity used by the read-marker list.
func (e Entry) Key() string {
	return strconv.FormatInt(e.Timestamp.Unix(), 10) + "|" + e.Title
}

// Merge concatenates entries from every source and sorts them newest
// first. The sort is stable so that equal timestamps keep their source
// order. This is the canonical ordering every command works against;
// index arguments to 'read' address positions in it.
func Merge(lists ...[]Entry) []Entry {
	var merged []Entry
	for _, entries := range lists {
		merged = append(merged, entries...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})

	return merged
}

// Cache holds the per-source fetch state persisted between runs,
// enough to skip a request entirely (max-age) or turn it into a
// conditional one (etag).
type Cache struct {
	ETag        string    `json:"etag"`
	Body        []byte    `json:"body"`
	LastRequest time.Time `json:"last_request"`
	MaxAge      int       `json:"max_age"` // seconds
}

// Fresh reports whether the cached body can be reused without a request.
func (c *Cache) Fresh(now time.Time) bool {
	if c == nil || len(c.Body) == 0 || c.MaxAge <= 0 {
		return false
	}
	return now.Before(c.LastRequest.Add(time.Duration(c.MaxAge) * time.Second))
}
