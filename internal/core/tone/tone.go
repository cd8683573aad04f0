// Package tone holds the tone vocabulary and the rules that turn classifier
// output into a single persisted tone
package tone

// Tone is a member of the fixed tone vocabulary
type Tone string

const (
	Joy        Tone = "joy"
	Sadness    Tone = "sadness"
	Fear       Tone = "fear"
	Anger      Tone = "anger"
	Confidence Tone = "confidence"
	Tentative  Tone = "tentative"
	Analytical Tone = "analytical"
)

// vocabulary is in reporting order
var vocabulary = [...]Tone{Joy, Sadness, Fear, Anger, Confidence, Tentative, Analytical}

// Vocabulary returns every tone in reporting order
func Vocabulary() []Tone { return append([]Tone(nil), vocabulary[:]...) }

// Valid reports whether t is in the vocabulary
func (t Tone) Valid() bool {
	for _, v := range vocabulary {
		if v == t {
			return true
		}
	}
	return false
}

// Polarity buckets a tone for mood selection
type Polarity int

const (
	Neutral Polarity = iota
	Positive
	Negative
)

// Polarity returns Positive for {joy, confidence}, Negative for {sadness, fear, anger}
func (t Tone) Polarity() Polarity {
	switch t {
	case Joy, Confidence:
		return Positive
	case Sadness, Fear, Anger:
		return Negative
	}
	return Neutral
}
