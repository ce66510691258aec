package digest

import (
	"net/url"
	"strings"
	"time"

	"github.com/keenanbraz/merch-digest-bot/internal/models"
	"github.com/keenanbraz/merch-digest-bot/internal/rules"
)

// haystack builds the lower-cased search text for an article. Absent
// descriptions contribute an empty string.
func haystack(a models.Article) string {
	return strings.ToLower(a.Title + " " + a.Description)
}

// Filter drops articles that are stale, off-domain or off-topic. Order
// is preserved. The upstream date filter is advisory, so freshness is
// re-validated here: articles without a verifiable publish time are
// dropped rather than assumed recent.
func (p *Pipeline) Filter(articles []models.Article, from, now time.Time) []models.Article {
	kept := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if a.PublishedAt.IsZero() {
			continue
		}
		if a.PublishedAt.Before(from) || a.PublishedAt.After(now) {
			continue
		}

		if p.opts.DomainFilter && !p.allowedDomain(a.URL) {
			continue
		}

		hs := haystack(a)

		// Deny veto wins over any allow match.
		if rules.ContainsAny(hs, p.rules.DenyTerms) {
			continue
		}

		if !rules.ContainsAny(hs, p.rules.Teams) &&
			!rules.ContainsAny(hs, p.rules.Players) &&
			!rules.ContainsAny(hs, p.rules.AllowTerms) {
			continue
		}

		kept = append(kept, a)
	}
	return kept
}

func (p *Pipeline) allowedDomain(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(strings.TrimPrefix(u.Host, "www."))
	for _, domain := range p.rules.DomainAllowlist {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}
