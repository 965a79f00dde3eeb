// Package content holds the pure classification and ordering rules applied
// to artworks and events before they are shown: temporal buckets for events
// and the priority-then-recency rank of artworks.
//
// Functions without an explicit instant read the package clock.
package content

import "time"

var now = time.Now
