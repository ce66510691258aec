package digest

import (
	"sort"
	"strings"
	"unicode"

	"github.com/keenanbraz/merch-digest-bot/internal/models"
	"github.com/keenanbraz/merch-digest-bot/internal/rules"
)

// dedupeKey collapses near-identical stories: lower-cased
// title+description with everything non-alphanumeric stripped, so
// punctuation and casing differences do not split a story.
func dedupeKey(a models.Article) string {
	var b strings.Builder
	for _, r := range strings.ToLower(a.Title + a.Description) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Dedupe keeps the first-seen article per key, preserving input order.
// First occurrence wins, not best-scoring: the fetch order is already
// newest-first and determinism matters more than cherry-picking.
func Dedupe(articles []models.ScoredArticle) []models.ScoredArticle {
	seen := make(map[string]struct{}, len(articles))
	kept := make([]models.ScoredArticle, 0, len(articles))
	for _, a := range articles {
		key := dedupeKey(a.Article)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, a)
	}
	return kept
}

// Rank dedupes, partitions into trending/injuries, sorts trending by
// score (publish time breaking ties, newer first) and truncates to the
// trending cap. Injury stories never appear in trending.
func (p *Pipeline) Rank(articles []models.ScoredArticle) (trending, injuries []models.ScoredArticle) {
	deduped := Dedupe(articles)

	for _, a := range deduped {
		if a.Category == models.CategoryInjury {
			if p.opts.ImportantInjuryOnly && !rules.ContainsAny(haystack(a.Article), p.rules.ImportantInjuryMarkers) {
				continue
			}
			injuries = append(injuries, a)
			continue
		}
		if a.RelevanceScore >= p.opts.MinScore {
			trending = append(trending, a)
		}
	}

	sort.SliceStable(trending, func(i, j int) bool {
		if trending[i].RelevanceScore != trending[j].RelevanceScore {
			return trending[i].RelevanceScore > trending[j].RelevanceScore
		}
		// Zero publish times sort last.
		if trending[j].PublishedAt.IsZero() {
			return !trending[i].PublishedAt.IsZero()
		}
		if trending[i].PublishedAt.IsZero() {
			return false
		}
		return trending[i].PublishedAt.After(trending[j].PublishedAt)
	})

	sort.SliceStable(injuries, func(i, j int) bool {
		return injuries[i].PublishedAt.After(injuries[j].PublishedAt)
	})

	if p.opts.TrendingCap > 0 && len(trending) > p.opts.TrendingCap {
		trending = trending[:p.opts.TrendingCap]
	}

	return trending, injuries
}

// featureCap bounds the players-to-feature line.
const featureCap = 5

// Feature pulls the player names behind the ranked stories, trending
// first so the list reads hottest-to-coldest. A story with no known
// player falls back to its first watchlist hit. Each name appears once.
func (p *Pipeline) Feature(trending, injuries []models.ScoredArticle) []models.FeaturedPlayer {
	seen := make(map[string]struct{})
	var featured []models.FeaturedPlayer

	consider := func(a models.ScoredArticle) {
		name := rules.FirstMatch(haystack(a.Article), p.rules.Players)
		if name == "" && len(a.WatchHits) > 0 {
			name = a.WatchHits[0]
		}
		if name == "" {
			return
		}
		display := titleCase(name)
		if _, dup := seen[display]; dup {
			return
		}
		seen[display] = struct{}{}
		featured = append(featured, models.FeaturedPlayer{Name: display, Heat: a.Heat})
	}

	for _, a := range trending {
		if len(featured) >= featureCap {
			return featured
		}
		consider(a)
	}
	for _, a := range injuries {
		if len(featured) >= featureCap {
			return featured
		}
		consider(a)
	}
	return featured
}

// titleCase upper-cases the first letter of each word, turning the
// lower-cased rule terms back into display names ("bo nix" -> "Bo Nix").
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
