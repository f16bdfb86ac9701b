package models

import "time"

// Lock is the row held by the active broker instance when the database lock
// is enabled.
type Lock struct {
	Owner                 string
	LastModifiedTimestamp time.Time
	Ttl                   time.Duration
}
