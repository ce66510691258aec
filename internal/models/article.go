package models

import (
	"context"
	"time"
)

// Command is the structured form of one slash-command invocation.
// Built once by the command parser and immutable afterwards.
type Command struct {
	League       string
	LookbackDays int
	Watchlist    map[string]struct{}
}

// WatchTerms returns the watchlist as a slice, mainly for logging and
// cache keys.
func (c Command) WatchTerms() []string {
	terms := make([]string, 0, len(c.Watchlist))
	for t := range c.Watchlist {
		terms = append(terms, t)
	}
	return terms
}

// Article is the partially trusted shape returned by the news search
// upstream. Description may be empty and PublishedAt may be the zero
// time when the upstream omits or mangles the field.
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	SourceName  string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
}

// Category buckets an article by its dominant storyline.
type Category string

const (
	CategoryTransaction Category = "transaction"
	CategoryInjury      Category = "injury"
	CategoryMedia       Category = "media"
	CategoryPlayer      Category = "player"
	CategoryTeam        Category = "team"
)

// HeatTag is the three-level recency/impact classification.
type HeatTag string

const (
	HeatHot       HeatTag = "HOT"
	HeatWatch     HeatTag = "WATCH"
	HeatEvergreen HeatTag = "EVERGREEN"
)

// ScoredArticle is an Article that survived the relevance filter,
// enriched by the classifier. Immutable once computed.
type ScoredArticle struct {
	Article
	RelevanceScore int
	Category       Category
	Heat           HeatTag
	MerchAngle     string
	WatchHits      []string
}

// FeaturedPlayer is one name surfaced in the players-to-feature line,
// carrying the heat of the hottest story that mentioned it.
type FeaturedPlayer struct {
	Name string
	Heat HeatTag
}

// Digest is the final ranked, classified result set for one command.
type Digest struct {
	League       string
	LookbackDays int
	Summary      string
	Trending     []ScoredArticle
	Injuries     []ScoredArticle
	Featured     []FeaturedPlayer
}

// Empty reports whether nothing survived filtering and ranking.
func (d Digest) Empty() bool {
	return len(d.Trending) == 0 && len(d.Injuries) == 0
}

// Fetcher is the gateway to the external news search service. It is the
// only pipeline stage with side effects, so it stays behind an
// interface for testing.
type Fetcher interface {
	FetchArticles(ctx context.Context, league string, from time.Time) ([]Article, error)
	GetName() string
}
