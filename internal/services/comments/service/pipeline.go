package service

import (
	"context"

	"moodroom/internal/core/tone"
	"moodroom/internal/platform/logger"
	str "moodroom/internal/platform/strings"
	"moodroom/internal/services/comments/repo"
)

// Outcome reports how one pipeline run ended
type Outcome int

const (
	// Stored means a comment row was written
	Stored Outcome = iota
	// TranslateFailed means the translation gateway errored
	TranslateFailed
	// ClassifyFailed means the tone classifier errored
	ClassifyFailed
	// Unclassified means the classifier returned no candidates
	Unclassified
	// Discarded means the winner was analytical/0 or outside the vocabulary
	Discarded
	// StoreFailed means the insert errored
	StoreFailed
)

func (o Outcome) String() string {
	switch o {
	case Stored:
		return "stored"
	case TranslateFailed:
		return "translate_failed"
	case ClassifyFailed:
		return "classify_failed"
	case Unclassified:
		return "unclassified"
	case Discarded:
		return "discarded"
	case StoreFailed:
		return "store_failed"
	}
	return "invalid"
}

// Process runs the classification pipeline for one comment; failures are logged, never retried
func (s *Svc) Process(ctx context.Context, userID int64, text string) Outcome {
	log := logger.C(ctx).With().Str("component", "pipeline").Str("text", str.Excerpt(text, 80)).Logger()

	tctx, cancel := context.WithTimeout(ctx, s.timeout)
	en, err := s.translator.Translate(tctx, text)
	cancel()
	if err != nil {
		log.Warn().Err(err).Msg("translation failed; comment dropped")
		return TranslateFailed
	}

	winner := tone.Candidate{ID: string(tone.Joy), Score: tone.HeuristicScore}
	if !s.heuristic.Match(en) {
		tctx, cancel := context.WithTimeout(ctx, s.timeout)
		cands, err := s.classifier.Classify(tctx, en)
		cancel()
		if err != nil {
			log.Warn().Err(err).Msg("tone classification failed; comment dropped")
			return ClassifyFailed
		}
		var verdict tone.Verdict
		winner, verdict = tone.Select(cands)
		switch verdict {
		case tone.Empty:
			log.Debug().Msg("no tone candidates; comment dropped")
			return Unclassified
		case tone.Degenerate:
			log.Debug().Msg("analytical winner with zero score; comment dropped")
			return Discarded
		case tone.Unknown:
			log.Warn().Str("tone_id", winner.ID).Msg("tone outside vocabulary; comment dropped")
			return Discarded
		}
	}

	id, err := s.binder.Bind(s.db).Insert(ctx, repo.NewComment{
		Text:   text,
		Tone:   tone.Tone(winner.ID),
		Score:  winner.Score,
		UserID: userID,
		At:     s.clock.Now(),
	})
	if err != nil {
		log.Error().Err(err).Msg("comment insert failed")
		return StoreFailed
	}
	log.Debug().Int64("comment_id", id).Str("tone", winner.ID).Float64("score", winner.Score).Msg("comment stored")
	return Stored
}
