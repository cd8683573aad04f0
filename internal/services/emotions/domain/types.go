// Package domain holds DTOs and ports for the emotions http and service contracts
package domain

import (
	"context"

	"moodroom/internal/core/mood"
)

// Summary is the rolling distribution plus the derived room mood
type Summary struct {
	mood.Distribution
	Mood mood.Bucket `json:"mood"`
}

// Announcement is a resolved announcer reaction: a clip URL or synthesized audio
type Announcement struct {
	Bucket      mood.Bucket
	Kind        mood.Kind
	URL         string
	Audio       []byte
	ContentType string
}

// ActiveCounter counts recently polling users
type ActiveCounter interface {
	Active(ctx context.Context) (int, error)
}

// Synthesizer renders a line with a voice
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, v mood.Voice) ([]byte, error)
}

// ClipResolver turns a clip key into a fetchable URL
type ClipResolver interface {
	Resolve(ctx context.Context, key string) (string, error)
}

// ServicePort is the emotions service contract
type ServicePort interface {
	Summary(ctx context.Context) (Summary, error)
	Announce(ctx context.Context) (Announcement, error)
}
