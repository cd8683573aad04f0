// Package service computes the rolling emotion summary and the announcer reaction
package service

import (
	"context"
	"sync"
	"time"

	"moodroom/internal/adapters/watson/tts"
	"moodroom/internal/core/mood"
	"moodroom/internal/modkit/repokit"
	"moodroom/internal/platform/clock"
	"moodroom/internal/platform/logger"
	"moodroom/internal/services/emotions/domain"
	"moodroom/internal/services/emotions/repo"
)

// DefaultWindow is the span of comments the summary covers
const DefaultWindow = 10 * time.Minute

// Service defines the service contract for emotions
type Service interface{ domain.ServicePort }

// Options carries the collaborators of Svc
type Options struct {
	DB        repokit.TxRunner
	Binder    repokit.Binder[repo.Repo]
	Active    domain.ActiveCounter
	Voice     domain.Synthesizer
	Clips     domain.ClipResolver
	Announcer *mood.Announcer
	Clock     clock.Clock
	Window    time.Duration
}

// Svc implements the Service interface
type Svc struct {
	repo   repo.Repo
	active domain.ActiveCounter
	voice  domain.Synthesizer
	clips  domain.ClipResolver
	clock  clock.Clock
	window time.Duration

	mu        sync.Mutex
	announcer *mood.Announcer
}

// New creates a new emotions service
func New(o Options) *Svc {
	switch {
	case o.DB == nil:
		panic("emotions.Service requires a non nil TxRunner")
	case o.Binder == nil:
		panic("emotions.Service requires a non nil Repo binder")
	case o.Active == nil:
		panic("emotions.Service requires an active user counter")
	case o.Voice == nil || o.Clips == nil:
		panic("emotions.Service requires a synthesizer and a clip resolver")
	}
	if o.Announcer == nil {
		o.Announcer = mood.NewAnnouncer(mood.AnnouncerOptions{})
	}
	if o.Clock == nil {
		o.Clock = clock.System{}
	}
	if o.Window <= 0 {
		o.Window = DefaultWindow
	}
	return &Svc{
		repo:      o.Binder.Bind(o.DB),
		active:    o.Active,
		voice:     o.Voice,
		clips:     o.Clips,
		clock:     o.Clock,
		window:    o.Window,
		announcer: o.Announcer,
	}
}

func (s *Svc) read(ctx context.Context) (mood.Counts, int, error) {
	counts, err := s.repo.CountSince(ctx, s.clock.Now().Add(-s.window))
	if err != nil {
		return nil, 0, err
	}
	active, err := s.active.Active(ctx)
	if err != nil {
		return nil, 0, err
	}
	return counts, active, nil
}

// Summary reports per participant tone intensity over the window
func (s *Svc) Summary(ctx context.Context) (domain.Summary, error) {
	counts, active, err := s.read(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summary{Distribution: mood.Distribute(counts, active), Mood: mood.Classify(counts, active)}, nil
}

// Announce picks a reaction for the current mood and resolves it to a clip URL or audio
func (s *Svc) Announce(ctx context.Context) (domain.Announcement, error) {
	counts, active, err := s.read(ctx)
	if err != nil {
		return domain.Announcement{}, err
	}
	s.mu.Lock()
	pick := s.announcer.Pick(mood.Classify(counts, active))
	s.mu.Unlock()

	out := domain.Announcement{Bucket: pick.Bucket, Kind: pick.Kind}
	log := logger.C(ctx)
	if pick.Kind == mood.KindClip {
		url, err := s.clips.Resolve(ctx, pick.ClipKey)
		if err != nil {
			log.Warn().Err(err).Str("clip", pick.ClipKey).Msg("clip unavailable")
			return domain.Announcement{}, err
		}
		out.URL = url
		return out, nil
	}
	audio, err := s.voice.Synthesize(ctx, pick.Text, pick.Voice)
	if err != nil {
		log.Warn().Err(err).Str("voice", pick.Voice.Name).Msg("speech synthesis failed")
		return domain.Announcement{}, err
	}
	out.Audio, out.ContentType = audio, tts.ContentType
	return out, nil
}
