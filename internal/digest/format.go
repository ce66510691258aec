package digest

import (
	"fmt"
	"strings"

	"github.com/keenanbraz/merch-digest-bot/internal/models"
)

// Render produces the Slack mrkdwn block for a finished digest.
func Render(d models.Digest) string {
	if d.Empty() {
		return fmt.Sprintf("No relevant stories found in the past %s.", dayWindow(d.LookbackDays))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*🏈 %s Merch Digest — past %s*\n", d.League, dayWindow(d.LookbackDays))

	if d.Summary != "" {
		fmt.Fprintf(&b, "_%s_\n", d.Summary)
	}

	if len(d.Trending) > 0 {
		b.WriteString("\n*🔥 Trending*\n")
		for _, a := range d.Trending {
			fmt.Fprintf(&b, "• <%s|%s> — _%s_", a.URL, a.Title, a.MerchAngle)
			if len(a.WatchHits) > 0 {
				fmt.Fprintf(&b, " (watch: %s)", strings.Join(a.WatchHits, ", "))
			}
			fmt.Fprintf(&b, " [%s] — %s\n", a.Heat, a.SourceName)
		}
	}

	if len(d.Injuries) > 0 {
		b.WriteString("\n*🏥 Injuries*\n")
		for _, a := range d.Injuries {
			fmt.Fprintf(&b, "• <%s|%s> — injury update — %s\n", a.URL, a.Title, a.SourceName)
		}
	}

	if len(d.Featured) > 0 {
		b.WriteString("\n*👀 Players to Feature*\n")
		names := make([]string, 0, len(d.Featured))
		for _, f := range d.Featured {
			names = append(names, fmt.Sprintf("%s (%s)", f.Name, f.Heat))
		}
		b.WriteString(strings.Join(names, ", ") + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// Summarize builds the one-line digest summary from trending counts,
// omitting any zero-count clause. All-zero counts fall back to a
// generic sentence.
func Summarize(trending []models.ScoredArticle) string {
	var hot, developing, rookies int
	for _, a := range trending {
		switch a.Heat {
		case models.HeatHot:
			hot++
		case models.HeatWatch:
			developing++
		}
		if strings.Contains(haystack(a.Article), "rookie") {
			rookies++
		}
	}

	var clauses []string
	if hot > 0 {
		clauses = append(clauses, fmt.Sprintf("%d HOT %s", hot, plural(hot, "storyline", "storylines")))
	}
	if developing > 0 {
		clauses = append(clauses, fmt.Sprintf("%d developing %s", developing, plural(developing, "story", "stories")))
	}
	if rookies > 0 {
		clauses = append(clauses, fmt.Sprintf("%d rookie buzz", rookies))
	}

	if len(clauses) == 0 {
		return "Steady news cycle, no breakout storylines."
	}
	return strings.Join(clauses, ", ") + "."
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

func dayWindow(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
