// Package domain holds DTOs and ports for the comments http and service contracts
package domain

import (
	"time"

	"moodroom/internal/core/tone"
)

// TextInput is the body of comment submission and the direct translate and analyze calls
type TextInput struct {
	Text string `json:"text" validate:"required,notblank,max=2000" example:"c'est trop mignon"`
}

// Ack is the empty acknowledgement of a submission; persistence has not happened yet
type Ack struct{}

// Comment is a classified, persisted comment
type Comment struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Tone      tone.Tone `json:"tone"`
	Score     float64   `json:"score"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PollOut wraps a comments poll
type PollOut struct {
	Comments []Comment `json:"comments"`
}

// TranslateOut is the direct translation result
type TranslateOut struct {
	Text string `json:"text"`
}

// AnalyzeOut is the direct tone analysis result: the translated text and every raw candidate
type AnalyzeOut struct {
	Text  string           `json:"text"`
	Tones []tone.Candidate `json:"tones"`
}
