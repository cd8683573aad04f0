package mood

import "math/rand/v2"

// Kind tells the transport how to deliver an Announcement
type Kind string

const (
	// KindClip is a pre-recorded audio object
	KindClip Kind = "clip"
	// KindSpeech is a line to synthesize
	KindSpeech Kind = "speech"
)

// Voice is one synthesizer voice with an expressive style
type Voice struct {
	Name  string
	Style string
}

// Announcement is the picked reaction; ClipKey is set for clips, Text and Voice for speech
type Announcement struct {
	Bucket  Bucket
	Kind    Kind
	ClipKey string
	Text    string
	Voice   Voice
}

// Content is the pre-authored material for one bucket
type Content struct {
	Lines []string
	Clips []string
}

// DefaultTable is the static mood to content lookup
var DefaultTable = map[Bucket]Content{
	Low: {
		Lines: []string{
			"It is awfully quiet in here. Anyone still awake?",
			"Don't be shy, drop a comment or two.",
			"Hello? Is this thing on?",
		},
		Clips: []string{"low/crickets.mp3", "low/yawn.mp3"},
	},
	Good: {
		Lines: []string{
			"Great energy, everyone. Keep it coming!",
			"You are all doing wonderfully.",
			"The room is glowing today.",
		},
		Clips: []string{"good/applause.mp3", "good/cheer.mp3"},
	},
	Bad: {
		Lines: []string{
			"Rough patch? Let's take a breath together.",
			"Hang in there, it gets better.",
			"Questions are welcome, nobody is judging.",
		},
		Clips: []string{"bad/sigh.mp3", "bad/drumroll.mp3"},
	},
}

// DefaultVoices is the synthesizer roster
var DefaultVoices = []Voice{
	{Name: "en-US_AllisonV3Voice", Style: "GoodNews"},
	{Name: "en-US_AllisonV3Voice", Style: "Uncertainty"},
	{Name: "en-US_AllisonV3Voice", Style: "Apology"},
	{Name: "en-US_LisaV3Voice", Style: ""},
	{Name: "en-US_MichaelV3Voice", Style: ""},
}

// DefaultClipRatio is the share of picks that use a recorded clip
const DefaultClipRatio = 0.3

// Announcer picks reactions; not safe for concurrent use unless rnd is
type Announcer struct {
	table     map[Bucket]Content
	voices    []Voice
	clipRatio float64
	rnd       *rand.Rand
}

// AnnouncerOptions configures NewAnnouncer; zero fields use the defaults
type AnnouncerOptions struct {
	Table     map[Bucket]Content
	Voices    []Voice
	// ClipRatio nil uses DefaultClipRatio; 0 or less disables clips, above 1 always clips
	ClipRatio *float64
	Rand      *rand.Rand
}

// NewAnnouncer builds an Announcer
func NewAnnouncer(o AnnouncerOptions) *Announcer {
	if o.Table == nil {
		o.Table = DefaultTable
	}
	if len(o.Voices) == 0 {
		o.Voices = DefaultVoices
	}
	ratio := DefaultClipRatio
	if o.ClipRatio != nil {
		ratio = min(max(*o.ClipRatio, 0), 1)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Announcer{table: o.Table, voices: o.Voices, clipRatio: ratio, rnd: o.Rand}
}

// Pick chooses a clip with probability clipRatio (when the bucket has clips), otherwise
// a line with a random voice
func (a *Announcer) Pick(b Bucket) Announcement {
	c := a.table[b]
	out := Announcement{Bucket: b}
	if len(c.Clips) > 0 && (a.rnd.Float64() < a.clipRatio || len(c.Lines) == 0) {
		out.Kind = KindClip
		out.ClipKey = c.Clips[a.rnd.IntN(len(c.Clips))]
		return out
	}
	out.Kind = KindSpeech
	if len(c.Lines) > 0 {
		out.Text = c.Lines[a.rnd.IntN(len(c.Lines))]
	}
	out.Voice = a.voices[a.rnd.IntN(len(a.voices))]
	return out
}
