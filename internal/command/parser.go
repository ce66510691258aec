// Package command turns raw slash-command text into a structured
// request. Parsing never fails: malformed fragments degrade to
// defaults so a typo in chat still yields a digest.
package command

import (
	"strconv"
	"strings"

	"github.com/keenanbraz/merch-digest-bot/internal/models"
)

// timeframes maps the recognized natural-language window tokens to a
// day count. Anything else falls back to the parser default.
var timeframes = map[string]int{
	"today":     1,
	"yesterday": 1,
	"week":      7,
	"month":     30,
	"year":      365,
}

type Parser struct {
	defaultLeague string
	defaultDays   int
}

func NewParser(defaultLeague string, defaultDays int) *Parser {
	if defaultLeague == "" {
		defaultLeague = "NFL"
	}
	if defaultDays <= 0 {
		defaultDays = 7
	}
	return &Parser{defaultLeague: defaultLeague, defaultDays: defaultDays}
}

// Parse builds a Command from free text. Token 0 is the league, token 1
// the timeframe (numeric or natural-language), and a trailing
// watch=a,b,c token seeds the watchlist.
func (p *Parser) Parse(text string) models.Command {
	cmd := models.Command{
		League:       p.defaultLeague,
		LookbackDays: p.defaultDays,
		Watchlist:    map[string]struct{}{},
	}

	tokens := strings.Fields(text)
	positional := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if terms, ok := parseWatchToken(tok); ok {
			for _, t := range terms {
				cmd.Watchlist[t] = struct{}{}
			}
			continue
		}
		positional = append(positional, tok)
	}

	if len(positional) > 0 {
		cmd.League = strings.ToUpper(positional[0])
	}
	if len(positional) > 1 {
		cmd.LookbackDays = p.parseTimeframe(positional[1])
	}

	return cmd
}

func (p *Parser) parseTimeframe(token string) int {
	if n, err := strconv.Atoi(token); err == nil {
		if n > 0 {
			return n
		}
		return p.defaultDays
	}
	if days, ok := timeframes[strings.ToLower(token)]; ok {
		return days
	}
	return p.defaultDays
}

func parseWatchToken(token string) ([]string, bool) {
	key, value, found := strings.Cut(token, "=")
	if !found || !strings.EqualFold(key, "watch") {
		return nil, false
	}
	var terms []string
	for _, part := range strings.Split(value, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			terms = append(terms, part)
		}
	}
	return terms, true
}

// IsHelp reports whether the user asked for usage guidance.
func IsHelp(text string) bool {
	tokens := strings.Fields(text)
	return len(tokens) > 0 && strings.EqualFold(tokens[0], "help")
}

// Usage is the ephemeral help text for the slash command.
func Usage() string {
	return "Usage: `/digest [league] [days|today|week|month|year] [watch=term1,term2]`\n" +
		"Examples: `/digest NFL 7`, `/digest NFL week watch=mahomes,chiefs`"
}
