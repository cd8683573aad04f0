package tone

// Candidate is one (tone, score) pair in the order the classifier returned it
type Candidate struct {
	ID    string  `json:"tone_id"`
	Name  string  `json:"tone_name,omitempty"`
	Score float64 `json:"score"`
}

// Verdict says what to do with a classification
type Verdict int

const (
	// Keep persists the winner
	Keep Verdict = iota
	// Empty means the classifier returned no candidates
	Empty
	// Degenerate is an analytical winner with score exactly 0
	Degenerate
	// Unknown is a winner whose id is outside the vocabulary
	Unknown
)

func (v Verdict) String() string {
	switch v {
	case Keep:
		return "keep"
	case Empty:
		return "empty"
	case Degenerate:
		return "degenerate"
	case Unknown:
		return "unknown"
	}
	return "invalid"
}

// Select picks the highest scoring candidate; on equal scores the first one wins
func Select(cands []Candidate) (Candidate, Verdict) {
	if len(cands) == 0 {
		return Candidate{}, Empty
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	t := Tone(best.ID)
	switch {
	case !t.Valid():
		return best, Unknown
	case t == Analytical && best.Score == 0:
		return best, Degenerate
	}
	return best, Keep
}
