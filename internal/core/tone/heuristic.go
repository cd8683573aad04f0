package tone

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// HeuristicScore is the score persisted when a heuristic phrase overrides the classifier
const HeuristicScore = 0.9

// DefaultPhrases are affectionate phrases the classifier tends to mislabel
var DefaultPhrases = []string{"cute", "adorable", "lovely", "love you", "thank you"}

// fold chains are not safe for concurrent use; pool fresh ones
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Cf)), // zero width joiners etc
			width.Fold,
		)
	},
}

// Fold returns s NFKC normalized, case folded, with format chars removed and whitespace collapsed
func Fold(s string) string {
	if s == "" {
		return ""
	}
	t := foldPool.Get().(transform.Transformer)
	defer foldPool.Put(t)
	t.Reset()
	out, _, err := transform.String(t, s)
	if err != nil {
		out = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(out), " ")
}

// Heuristic matches translated text against folded positive phrases
type Heuristic struct {
	phrases []string
}

// NewHeuristic folds phrases once; nil or empty uses DefaultPhrases
func NewHeuristic(phrases []string) *Heuristic {
	if len(phrases) == 0 {
		phrases = DefaultPhrases
	}
	h := &Heuristic{}
	for _, p := range phrases {
		if f := Fold(p); f != "" {
			h.phrases = append(h.phrases, f)
		}
	}
	return h
}

// Match reports whether text contains any phrase as whole words after folding,
// so "cute" matches "so cute!" but not "execute"
func (h *Heuristic) Match(text string) bool {
	f := Fold(text)
	for _, p := range h.phrases {
		if containsWord(f, p) {
			return true
		}
	}
	return false
}

func containsWord(s, word string) bool {
	for from := 0; from <= len(s)-len(word); {
		i := strings.Index(s[from:], word)
		if i < 0 {
			return false
		}
		start, end := from+i, from+i+len(word)
		before, _ := utf8.DecodeLastRuneInString(s[:start])
		after, _ := utf8.DecodeRuneInString(s[end:])
		if !isWordRune(before) && !isWordRune(after) {
			return true
		}
		from = start + 1
	}
	return false
}

// isWordRune treats RuneError, decoded past either end of s, as a boundary
func isWordRune(r rune) bool {
	return r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
