package digest

import (
	"sort"
	"time"

	"github.com/keenanbraz/merch-digest-bot/internal/models"
	"github.com/keenanbraz/merch-digest-bot/internal/rules"
)

type ageBucket int

const (
	ageDay  ageBucket = iota // published within 24h
	ageWeek                  // within 7 days
	ageOlder
)

type termClass int

const (
	termsNone termClass = iota
	termsDeveloping
	termsHighImpact
	termsBoth
)

// heatTable enumerates every (age, term) combination so the tagging
// policy has no hidden priority order. HOT requires a high-impact term
// inside 24h; WATCH requires a developing term inside the week.
var heatTable = map[ageBucket]map[termClass]models.HeatTag{
	ageDay: {
		termsBoth:       models.HeatHot,
		termsHighImpact: models.HeatHot,
		termsDeveloping: models.HeatWatch,
		termsNone:       models.HeatEvergreen,
	},
	ageWeek: {
		termsBoth:       models.HeatWatch,
		termsHighImpact: models.HeatEvergreen,
		termsDeveloping: models.HeatWatch,
		termsNone:       models.HeatEvergreen,
	},
	ageOlder: {
		termsBoth:       models.HeatEvergreen,
		termsHighImpact: models.HeatEvergreen,
		termsDeveloping: models.HeatEvergreen,
		termsNone:       models.HeatEvergreen,
	},
}

// Classify scores and tags every article. Articles reach this stage
// already filtered, but a zero publish time is still treated as age 0
// rather than trusted arithmetic on a zero Time.
func (p *Pipeline) Classify(cmd models.Command, articles []models.Article, now time.Time) []models.ScoredArticle {
	scored := make([]models.ScoredArticle, 0, len(articles))
	for _, a := range articles {
		hs := haystack(a)

		sa := models.ScoredArticle{
			Article:    a,
			Category:   p.categorize(hs),
			Heat:       p.heat(a, hs, now),
			MerchAngle: p.merchAngle(hs),
		}

		if rules.ContainsAny(hs, p.rules.Teams) || rules.ContainsAny(hs, p.rules.Players) {
			sa.RelevanceScore += 2
		}
		if rules.ContainsAny(hs, p.rules.AllowTerms) {
			sa.RelevanceScore++
		}
		if hits := watchHits(hs, cmd.Watchlist); len(hits) > 0 {
			sa.RelevanceScore++
			sa.WatchHits = hits
		}

		scored = append(scored, sa)
	}
	return scored
}

// categorize picks the first matching category in fixed priority
// order; everything else is a team/story piece.
func (p *Pipeline) categorize(hs string) models.Category {
	switch {
	case rules.ContainsAny(hs, p.rules.TransactionTerms):
		return models.CategoryTransaction
	case rules.ContainsAny(hs, p.rules.InjuryTerms):
		return models.CategoryInjury
	case rules.ContainsAny(hs, p.rules.MediaTerms):
		return models.CategoryMedia
	case rules.ContainsAny(hs, p.rules.PlayerTerms):
		return models.CategoryPlayer
	default:
		return models.CategoryTeam
	}
}

func (p *Pipeline) heat(a models.Article, hs string, now time.Time) models.HeatTag {
	age := ageDay
	if !a.PublishedAt.IsZero() {
		switch hours := now.Sub(a.PublishedAt).Hours(); {
		case hours <= 24:
			age = ageDay
		case hours <= 7*24:
			age = ageWeek
		default:
			age = ageOlder
		}
	}

	terms := termsNone
	high := rules.ContainsAny(hs, p.rules.HighImpactTerms)
	developing := rules.ContainsAny(hs, p.rules.DevelopingTerms)
	switch {
	case high && developing:
		terms = termsBoth
	case high:
		terms = termsHighImpact
	case developing:
		terms = termsDeveloping
	}

	return heatTable[age][terms]
}

func (p *Pipeline) merchAngle(hs string) string {
	for _, angle := range p.rules.MerchAngles {
		if rules.ContainsAny(hs, angle.Terms) {
			return angle.Text
		}
	}
	return p.rules.FallbackAngle
}

func watchHits(hs string, watchlist map[string]struct{}) []string {
	var hits []string
	for term := range watchlist {
		if rules.ContainsAny(hs, []string{term}) {
			hits = append(hits, term)
		}
	}
	sort.Strings(hits)
	return hits
}
