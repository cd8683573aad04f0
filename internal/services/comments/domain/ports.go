package domain

import (
	"context"

	"moodroom/internal/core/tone"
)

// Translator turns arbitrary text into English
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// ToneClassifier returns tone candidates in classifier order
type ToneClassifier interface {
	Classify(ctx context.Context, text string) ([]tone.Candidate, error)
}

// ServicePort is the comments service contract
type ServicePort interface {
	// Submit schedules classification and returns immediately
	Submit(ctx context.Context, userID int64, text string) (Ack, error)

	// Poll returns undelivered recent comments and advances the caller's cursor
	Poll(ctx context.Context, userID int64) ([]Comment, error)

	Translate(ctx context.Context, text string) (TranslateOut, error)
	AnalyzeTone(ctx context.Context, text string) (AnalyzeOut, error)
}
