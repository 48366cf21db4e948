// internal/utils/id.go
package utils

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	idMtx  sync.Mutex
	lastID int64
)

// NewID returns a timestamp-derived string id. Two calls inside the
// same millisecond get consecutive values, so ids stay unique for the
// session's lifetime.
func NewID() string {
	idMtx.Lock()
	defer idMtx.Unlock()

	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return strconv.FormatInt(now, 10)
}

// Slugify lowercases the title and collapses whitespace runs into
// single hyphens. The transform is lossy: titles differing only in
// case or punctuation can collide.
func Slugify(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), "-"))
}
