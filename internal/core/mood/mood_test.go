package mood

import (
	"math/rand/v2"
	"testing"

	"moodroom/internal/core/tone"
)

func TestDistribute(t *testing.T) {
	d := Distribute(Counts{tone.Joy: 2, tone.Fear: 1}, 4)
	if d.ActiveUsers != 4 || d.Total != 3 {
		t.Fatalf("meta = %+v", d)
	}
	if d.Emotions[tone.Joy] != 0.5 || d.Emotions[tone.Fear] != 0.25 {
		t.Fatalf("emotions = %v", d.Emotions)
	}
	if len(d.Emotions) != len(tone.Vocabulary()) || d.Emotions[tone.Analytical] != 0 {
		t.Fatalf("every tone must be reported: %v", d.Emotions)
	}
	for tn, v := range d.Emotions {
		if v < 0 || v > 1 {
			t.Fatalf("%s out of range: %v", tn, v)
		}
	}
}

func TestDistributeFloorsDenominator(t *testing.T) {
	d := Distribute(Counts{tone.Anger: 3}, 0)
	if d.Emotions[tone.Anger] != 3 || d.ActiveUsers != 0 {
		t.Fatalf("zero active = %+v", d)
	}
	if got := Distribute(nil, 0); got.Total != 0 || got.Emotions[tone.Joy] != 0 {
		t.Fatalf("empty = %+v", got)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		counts Counts
		active int
		want   Bucket
	}{
		{"empty room", nil, 0, Low},
		{"exact half is low", Counts{tone.Joy: 2}, 4, Low},
		{"odd active rounds down", Counts{tone.Joy: 2}, 5, Low},
		{"just above half", Counts{tone.Joy: 3}, 5, Good},
		{"negative outnumbers", Counts{tone.Sadness: 2, tone.Anger: 1, tone.Joy: 2}, 2, Bad},
		{"balanced is good", Counts{tone.Fear: 2, tone.Confidence: 2}, 2, Good},
		{"neutral only is good", Counts{tone.Analytical: 3, tone.Tentative: 1}, 1, Good},
		{"low checked before bad", Counts{tone.Anger: 2}, 4, Low},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Classify(c.counts, c.active); got != c.want {
				t.Fatalf("Classify = %s, want %s", got, c.want)
			}
		})
	}
}

func seeded(seed uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, seed)) }

func TestAnnouncerRatioAndContent(t *testing.T) {
	a := NewAnnouncer(AnnouncerOptions{Rand: seeded(42)})
	clips := 0
	const n = 2000
	for range n {
		got := a.Pick(Good)
		if got.Bucket != Good {
			t.Fatalf("bucket = %s", got.Bucket)
		}
		switch got.Kind {
		case KindClip:
			clips++
			if got.ClipKey == "" || got.Text != "" {
				t.Fatalf("bad clip pick %+v", got)
			}
		case KindSpeech:
			if got.Text == "" || got.Voice.Name == "" {
				t.Fatalf("bad speech pick %+v", got)
			}
		}
	}
	if ratio := float64(clips) / n; ratio < 0.25 || ratio > 0.35 {
		t.Fatalf("clip ratio = %.3f", ratio)
	}
}

func TestAnnouncerDeterministicWithSeed(t *testing.T) {
	a := NewAnnouncer(AnnouncerOptions{Rand: seeded(7)})
	b := NewAnnouncer(AnnouncerOptions{Rand: seeded(7)})
	for range 20 {
		if a.Pick(Bad) != b.Pick(Bad) {
			t.Fatalf("same seed must give same picks")
		}
	}
}

func clipRatio(f float64) *float64 { return &f }

func TestAnnouncerEdges(t *testing.T) {
	for _, r := range []float64{0, -1} {
		speechOnly := NewAnnouncer(AnnouncerOptions{ClipRatio: clipRatio(r), Rand: seeded(1)})
		for range 50 {
			if speechOnly.Pick(Low).Kind != KindSpeech {
				t.Fatalf("ratio %v must disable clips", r)
			}
		}
	}
	allClips := NewAnnouncer(AnnouncerOptions{ClipRatio: clipRatio(5), Rand: seeded(1)})
	if allClips.Pick(Bad).Kind != KindClip {
		t.Fatalf("ratio above 1 must always clip")
	}
	clipOnly := NewAnnouncer(AnnouncerOptions{
		Table: map[Bucket]Content{Good: {Clips: []string{"x.mp3"}}},
		ClipRatio: clipRatio(0), Rand: seeded(1),
	})
	if got := clipOnly.Pick(Good); got.Kind != KindClip || got.ClipKey != "x.mp3" {
		t.Fatalf("bucket without lines must fall back to clips: %+v", got)
	}
}
