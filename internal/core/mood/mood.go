// Package mood turns recent comment counts into the rolling emotion
// distribution and the room's mood bucket
package mood

import "moodroom/internal/core/tone"

// Bucket is the room mood
type Bucket string

const (
	Low  Bucket = "low"
	Good Bucket = "good"
	Bad  Bucket = "bad"
)

// Counts is the number of recent comments per tone
type Counts map[tone.Tone]int

// Total sums every tone
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Distribution is per participant intensity for every tone of the vocabulary
type Distribution struct {
	Emotions    map[tone.Tone]float64 `json:"emotions"`
	ActiveUsers int                   `json:"active_users"`
	Total       int                   `json:"total"`
}

// Distribute divides every tone count by max(1, active); tones without comments report 0
func Distribute(c Counts, active int) Distribution {
	den := float64(max(1, active))
	out := Distribution{
		Emotions:    make(map[tone.Tone]float64, len(tone.Vocabulary())),
		ActiveUsers: active,
		Total:       c.Total(),
	}
	for _, t := range tone.Vocabulary() {
		out.Emotions[t] = float64(c[t]) / den
	}
	return out
}

// Classify is low when the room is quiet (recent <= active/2, exact half included),
// else bad when negative tones outnumber positive ones, else good
func Classify(c Counts, active int) Bucket {
	if 2*c.Total() <= active {
		return Low
	}
	var pos, neg int
	for t, n := range c {
		switch t.Polarity() {
		case tone.Positive:
			pos += n
		case tone.Negative:
			neg += n
		}
	}
	if neg > pos {
		return Bad
	}
	return Good
}
