package utils

import (
	"strconv"
	"time"
)

// NewTimeID returns the epoch-millisecond timestamp of now as a decimal
// string, bumped by one millisecond at a time until taken reports it free.
func NewTimeID(now time.Time, taken func(string) bool) string {
	ms := now.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if taken == nil || !taken(id) {
			return id
		}
		ms++
	}
}
