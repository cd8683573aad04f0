// Package domain holds the presence contracts shared with other modules
package domain

import "context"

// Tracker records polls and counts recently active users
type Tracker interface {
	// Touch marks userID as having polled now
	Touch(ctx context.Context, userID int64) error

	// Active counts users whose last poll is within the active window
	Active(ctx context.Context) (int, error)
}
