// Package rules holds the keyword tables driving relevance filtering,
// classification and merch angles. Defaults are compiled in; a YAML
// file pointed at by RULES_CONFIG overrides individual tables so the
// policy can be tuned without a rebuild.
package rules

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// MerchAngle maps a trigger term set to a short display rationale.
// Angles are evaluated in order, first match wins.
type MerchAngle struct {
	Terms []string `yaml:"terms"`
	Text  string   `yaml:"text"`
}

// Ruleset is the full relevance/classification policy for one league.
type Ruleset struct {
	Teams   []string `yaml:"teams"`
	Players []string `yaml:"players"`

	AllowTerms []string `yaml:"allowTerms"`
	DenyTerms  []string `yaml:"denyTerms"`

	TransactionTerms []string `yaml:"transactionTerms"`
	InjuryTerms      []string `yaml:"injuryTerms"`
	MediaTerms       []string `yaml:"mediaTerms"`
	PlayerTerms      []string `yaml:"playerTerms"`

	HighImpactTerms []string `yaml:"highImpactTerms"`
	DevelopingTerms []string `yaml:"developingTerms"`

	ImportantInjuryMarkers []string `yaml:"importantInjuryMarkers"`

	DomainAllowlist []string `yaml:"domainAllowlist"`
	QueryTerms      []string `yaml:"queryTerms"`

	MerchAngles   []MerchAngle `yaml:"merchAngles"`
	FallbackAngle string       `yaml:"fallbackAngle"`
}

// Load returns the compiled-in defaults, overlaid with any tables set
// in the YAML file at path. An unreadable or unparsable file keeps the
// defaults; tuning mistakes must never take the digest down.
func Load(path string) *Ruleset {
	rs := Defaults()
	if path == "" {
		return rs
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("rules: cannot read config, using defaults", "path", path, "error", err)
		return rs
	}

	var override Ruleset
	if err := yaml.Unmarshal(raw, &override); err != nil {
		slog.Warn("rules: cannot parse config, using defaults", "path", path, "error", err)
		return rs
	}

	rs.merge(&override)
	slog.Info("rules: loaded overrides", "path", path)
	return rs
}

// merge replaces each table that the override actually sets. Empty
// tables in the file keep the defaults, so a file can tune one list
// without restating the rest.
func (r *Ruleset) merge(o *Ruleset) {
	if len(o.Teams) > 0 {
		r.Teams = o.Teams
	}
	if len(o.Players) > 0 {
		r.Players = o.Players
	}
	if len(o.AllowTerms) > 0 {
		r.AllowTerms = o.AllowTerms
	}
	if len(o.DenyTerms) > 0 {
		r.DenyTerms = o.DenyTerms
	}
	if len(o.TransactionTerms) > 0 {
		r.TransactionTerms = o.TransactionTerms
	}
	if len(o.InjuryTerms) > 0 {
		r.InjuryTerms = o.InjuryTerms
	}
	if len(o.MediaTerms) > 0 {
		r.MediaTerms = o.MediaTerms
	}
	if len(o.PlayerTerms) > 0 {
		r.PlayerTerms = o.PlayerTerms
	}
	if len(o.HighImpactTerms) > 0 {
		r.HighImpactTerms = o.HighImpactTerms
	}
	if len(o.DevelopingTerms) > 0 {
		r.DevelopingTerms = o.DevelopingTerms
	}
	if len(o.ImportantInjuryMarkers) > 0 {
		r.ImportantInjuryMarkers = o.ImportantInjuryMarkers
	}
	if len(o.DomainAllowlist) > 0 {
		r.DomainAllowlist = o.DomainAllowlist
	}
	if len(o.QueryTerms) > 0 {
		r.QueryTerms = o.QueryTerms
	}
	if len(o.MerchAngles) > 0 {
		r.MerchAngles = o.MerchAngles
	}
	if o.FallbackAngle != "" {
		r.FallbackAngle = o.FallbackAngle
	}
}

// ContainsAny reports whether the lower-cased haystack contains any of
// the given terms. Phrases match as substrings; very short tokens match
// on word boundaries so "qb" cannot hit inside "bbq".
func ContainsAny(haystack string, terms []string) bool {
	return firstMatch(haystack, terms) != ""
}

// FirstMatch returns the first term from terms found in the haystack,
// or "" when none match. The haystack is expected to be lower-cased
// already.
func FirstMatch(haystack string, terms []string) string {
	return firstMatch(haystack, terms)
}

func firstMatch(haystack string, terms []string) string {
	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t == "" {
			continue
		}
		if strings.Contains(t, " ") {
			if strings.Contains(haystack, t) {
				return term
			}
			continue
		}
		if len(t) <= 3 {
			re := regexp.MustCompile(`\b` + regexp.QuoteMeta(t) + `\b`)
			if re.MatchString(haystack) {
				return term
			}
			continue
		}
		if strings.Contains(haystack, t) {
			return term
		}
	}
	return ""
}

// Validate reports structural problems in a ruleset that would make
// the pipeline useless (no allow signal at all, or no deny policy).
func (r *Ruleset) Validate() error {
	if len(r.Teams) == 0 && len(r.Players) == 0 && len(r.AllowTerms) == 0 {
		return fmt.Errorf("ruleset has no teams, players or allow terms")
	}
	if len(r.QueryTerms) == 0 {
		return fmt.Errorf("ruleset has no upstream query terms")
	}
	return nil
}
