// Package service contains the comments workflows: submission, polling and the direct gateway calls
package service

import (
	"context"
	"time"

	"moodroom/internal/core/tone"
	"moodroom/internal/modkit/repokit"
	"moodroom/internal/platform/clock"
	"moodroom/internal/platform/logger"
	"moodroom/internal/platform/workers"
	"moodroom/internal/services/comments/domain"
	"moodroom/internal/services/comments/repo"
)

// defaults for Options
const (
	DefaultWindow          = 10 * time.Minute
	DefaultUpstreamTimeout = 10 * time.Second
)

// Queue accepts background tasks; false means the task was dropped
type Queue interface {
	Submit(task workers.Task) bool
}

// Service defines the service contract for comments
type Service interface{ domain.ServicePort }

// Options carries the collaborators of Svc
type Options struct {
	DB         repokit.TxRunner
	Binder     repokit.Binder[repo.Repo]
	Translator domain.Translator
	Classifier domain.ToneClassifier
	Queue      Queue
	Clock      clock.Clock

	// Heuristic overrides the classifier; nil uses tone.DefaultPhrases
	Heuristic *tone.Heuristic

	// Window bounds how old a polled comment may be
	Window time.Duration

	// UpstreamTimeout bounds each gateway call of the pipeline
	UpstreamTimeout time.Duration
}

// Svc implements the Service interface
type Svc struct {
	db         repokit.TxRunner
	binder     repokit.Binder[repo.Repo]
	translator domain.Translator
	classifier domain.ToneClassifier
	queue      Queue
	clock      clock.Clock
	heuristic  *tone.Heuristic
	window     time.Duration
	timeout    time.Duration
	log        *logger.Logger
}

// New creates a new comments service
func New(o Options) *Svc {
	switch {
	case o.DB == nil:
		panic("comments.Service requires a non nil TxRunner")
	case o.Binder == nil:
		panic("comments.Service requires a non nil Repo binder")
	case o.Translator == nil || o.Classifier == nil:
		panic("comments.Service requires a translator and a tone classifier")
	case o.Queue == nil:
		panic("comments.Service requires a task queue")
	}
	if o.Clock == nil {
		o.Clock = clock.System{}
	}
	if o.Heuristic == nil {
		o.Heuristic = tone.NewHeuristic(tone.DefaultPhrases)
	}
	if o.Window <= 0 {
		o.Window = DefaultWindow
	}
	if o.UpstreamTimeout <= 0 {
		o.UpstreamTimeout = DefaultUpstreamTimeout
	}
	return &Svc{
		db:         o.DB,
		binder:     o.Binder,
		translator: o.Translator,
		classifier: o.Classifier,
		queue:      o.Queue,
		clock:      o.Clock,
		heuristic:  o.Heuristic,
		window:     o.Window,
		timeout:    o.UpstreamTimeout,
		log:        logger.Named("pipeline"),
	}
}

// Submit enqueues classification of text for userID
// a full queue drops the comment, which looks the same to the caller as a failed classification
func (s *Svc) Submit(ctx context.Context, userID int64, text string) (domain.Ack, error) {
	reqID := logger.RequestIDFrom(ctx)
	ok := s.queue.Submit(func(ctx context.Context) {
		s.Process(logger.WithUser(logger.WithRequest(ctx, reqID), userID), userID, text)
	})
	if !ok {
		logger.C(ctx).Warn().Int64("user_id", userID).Msg("comment dropped: pipeline queue full")
	}
	return domain.Ack{}, nil
}

// Poll returns comments newer than the caller's cursor inside the window, then moves the
// cursor to the globally latest id; every step shares one transaction
func (s *Svc) Poll(ctx context.Context, userID int64) ([]domain.Comment, error) {
	now := s.clock.Now()
	return repokit.InTx(ctx, s.db, s.binder, func(r repo.Repo) ([]domain.Comment, error) {
		cursor, err := r.Cursor(ctx, userID)
		if err != nil {
			return nil, err
		}
		rows, err := r.After(ctx, cursor, now.Add(-s.window))
		if err != nil {
			return nil, err
		}
		// the latest id may exceed every returned row; that skew is kept
		latest, err := r.LatestID(ctx)
		if err != nil {
			return nil, err
		}
		if err := r.Advance(ctx, userID, latest, now); err != nil {
			return nil, err
		}
		out := make([]domain.Comment, 0, len(rows))
		for _, row := range rows {
			out = append(out, domain.Comment{
				ID:        row.ID,
				Text:      row.Text,
				Tone:      tone.Tone(row.Tone),
				Score:     row.Score,
				UserID:    row.UserID,
				CreatedAt: row.CreatedAt,
			})
		}
		return out, nil
	})
}

// Translate calls the translation gateway directly
func (s *Svc) Translate(ctx context.Context, text string) (domain.TranslateOut, error) {
	en, err := s.translator.Translate(ctx, text)
	if err != nil {
		return domain.TranslateOut{}, err
	}
	return domain.TranslateOut{Text: en}, nil
}

// AnalyzeTone translates then classifies, returning every candidate untouched
func (s *Svc) AnalyzeTone(ctx context.Context, text string) (domain.AnalyzeOut, error) {
	en, err := s.translator.Translate(ctx, text)
	if err != nil {
		return domain.AnalyzeOut{}, err
	}
	cands, err := s.classifier.Classify(ctx, en)
	if err != nil {
		return domain.AnalyzeOut{}, err
	}
	return domain.AnalyzeOut{Text: en, Tones: cands}, nil
}
