// Package digest implements the news relevance pipeline: fetch,
// time-window filter, keyword scoring, categorization, deduplication,
// ranking and chat-markup rendering. Every stage except the fetch is
// pure over its inputs and a supplied clock.
package digest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/keenanbraz/merch-digest-bot/internal/models"
	"github.com/keenanbraz/merch-digest-bot/internal/rules"
)

// Options are the tunable knobs of the pipeline.
type Options struct {
	MinScore            int
	TrendingCap         int
	DomainFilter        bool
	ImportantInjuryOnly bool
}

// Pipeline applies the relevance policy from a Ruleset to article
// lists. It holds no per-request state, so one instance serves
// concurrent requests.
type Pipeline struct {
	rules *rules.Ruleset
	opts  Options
}

func NewPipeline(rs *rules.Ruleset, opts Options) *Pipeline {
	if opts.TrendingCap <= 0 {
		opts.TrendingCap = 10
	}
	return &Pipeline{rules: rs, opts: opts}
}

// Summarizer can replace the templated summary sentence with a
// generated one. It is optional; any failure falls back to the
// template.
type Summarizer interface {
	SummarizeTrending(ctx context.Context, league string, trending []models.ScoredArticle) (string, error)
}

// Builder runs the full pipeline for one command.
type Builder struct {
	fetcher    models.Fetcher
	pipeline   *Pipeline
	summarizer Summarizer
	now        func() time.Time
}

func NewBuilder(fetcher models.Fetcher, pipeline *Pipeline) *Builder {
	return &Builder{
		fetcher:  fetcher,
		pipeline: pipeline,
		now:      time.Now,
	}
}

// WithSummarizer attaches an optional summary generator.
func (b *Builder) WithSummarizer(s Summarizer) *Builder {
	b.summarizer = s
	return b
}

// WithClock fixes the pipeline's notion of now, for tests.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Build fetches candidates for the command's window and runs them
// through filter, classifier and ranker. The only error it returns is
// an upstream fetch failure; everything downstream is total.
func (b *Builder) Build(ctx context.Context, cmd models.Command) (models.Digest, error) {
	now := b.now().UTC()
	from := now.AddDate(0, 0, -cmd.LookbackDays)

	articles, err := b.fetcher.FetchArticles(ctx, cmd.League, from)
	if err != nil {
		return models.Digest{}, fmt.Errorf("fetch failed: %w", err)
	}
	slog.Debug("fetched candidates", "source", b.fetcher.GetName(), "count", len(articles))

	fresh := b.pipeline.Filter(articles, from, now)
	scored := b.pipeline.Classify(cmd, fresh, now)
	trending, injuries := b.pipeline.Rank(scored)

	d := models.Digest{
		League:       cmd.League,
		LookbackDays: cmd.LookbackDays,
		Summary:      Summarize(trending),
		Trending:     trending,
		Injuries:     injuries,
		Featured:     b.pipeline.Feature(trending, injuries),
	}

	if b.summarizer != nil && len(trending) > 0 {
		if summary, err := b.summarizer.SummarizeTrending(ctx, cmd.League, trending); err != nil {
			slog.Warn("ai summary failed, keeping template", "error", err)
		} else if summary != "" {
			d.Summary = summary
		}
	}

	slog.Info("digest built",
		"league", cmd.League,
		"lookback_days", cmd.LookbackDays,
		"candidates", len(articles),
		"kept", len(fresh),
		"trending", len(trending),
		"injuries", len(injuries),
	)

	return d, nil
}
