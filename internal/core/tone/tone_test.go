package tone

import "testing"

func TestVocabularyAndPolarity(t *testing.T) {
	v := Vocabulary()
	if len(v) != 7 || v[0] != Joy || v[6] != Analytical {
		t.Fatalf("Vocabulary = %v", v)
	}
	v[0] = "mutated"
	if Vocabulary()[0] != Joy {
		t.Fatalf("Vocabulary must return a copy")
	}
	if Tone("excited").Valid() {
		t.Fatalf("excited is not in the vocabulary")
	}

	cases := map[Tone]Polarity{
		Joy: Positive, Confidence: Positive,
		Sadness: Negative, Fear: Negative, Anger: Negative,
		Tentative: Neutral, Analytical: Neutral,
	}
	for tn, want := range cases {
		if got := tn.Polarity(); got != want {
			t.Fatalf("%s polarity = %v, want %v", tn, got, want)
		}
	}
}

func TestSelect(t *testing.T) {
	cases := []struct {
		name    string
		in      []Candidate
		wantID  string
		verdict Verdict
	}{
		{"empty", nil, "", Empty},
		{"single", []Candidate{{ID: "sadness", Score: 0.55}}, "sadness", Keep},
		{"highest wins", []Candidate{{ID: "joy", Score: 0.6}, {ID: "anger", Score: 0.8}, {ID: "fear", Score: 0.7}}, "anger", Keep},
		{"tie keeps first", []Candidate{{ID: "fear", Score: 0.2}, {ID: "joy", Score: 0.2}}, "fear", Keep},
		{"analytical zero discarded", []Candidate{{ID: "analytical", Score: 0}}, "analytical", Degenerate},
		{"analytical positive kept", []Candidate{{ID: "analytical", Score: 0.51}}, "analytical", Keep},
		{"analytical zero tie first", []Candidate{{ID: "analytical", Score: 0}, {ID: "joy", Score: 0}}, "analytical", Degenerate},
		{"unknown winner", []Candidate{{ID: "excited", Score: 0.9}, {ID: "joy", Score: 0.4}}, "excited", Unknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, v := Select(c.in)
			if v != c.verdict || got.ID != c.wantID {
				t.Fatalf("Select = %q/%v, want %q/%v", got.ID, v, c.wantID, c.verdict)
			}
		})
	}
}

func TestHeuristic(t *testing.T) {
	h := NewHeuristic(nil)
	cases := []struct {
		in   string
		want bool
	}{
		{"You are so cute!", true},
		{"ADORABLE", true},
		{"thank   you so much", true},
		{"Ｌｏｖｅｌｙ day", true},
		{"I love\u200d you", true},
		{"I love your slides", false},
		{"please execute the plan", false},
		{"cuteness overload", false},
		{"(cute)", true},
		{"boring lecture", false},
		{"", false},
	}
	for _, c := range cases {
		if got := h.Match(c.in); got != c.want {
			t.Fatalf("Match(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	custom := NewHeuristic([]string{"  ", "Bravo"})
	if !custom.Match("bravo!") || custom.Match("cute") {
		t.Fatalf("custom phrases not applied")
	}
}

func TestFold(t *testing.T) {
	if got := Fold("  Straße\tTHANK  you "); got != "strasse thank you" {
		t.Fatalf("Fold = %q", got)
	}
}
