package rules

// Defaults returns the built-in NFL policy. Kept as data, not logic, so
// a RULES_CONFIG file can swap any table for another league or a tuned
// variant of this one.
func Defaults() *Ruleset {
	return &Ruleset{
		Teams: []string{
			"cardinals", "falcons", "ravens", "bills", "panthers", "bears",
			"bengals", "browns", "cowboys", "broncos", "lions", "packers",
			"texans", "colts", "jaguars", "chiefs", "raiders", "chargers",
			"rams", "dolphins", "vikings", "patriots", "saints", "giants",
			"jets", "eagles", "steelers", "49ers", "seahawks", "buccaneers",
			"titans", "commanders",
		},
		Players: []string{
			"mahomes", "allen", "burrow", "jackson", "hurts", "herbert",
			"stroud", "lawrence", "tua", "prescott", "love", "goff",
			"jefferson", "chase", "lamb", "hill", "kelce", "andrews",
			"mcaffrey", "barkley", "henry", "bijan", "nabers", "bo nix",
			"caleb williams", "jayden daniels", "aaron rodgers", "purdy",
		},
		AllowTerms: []string{
			"quarterback", "touchdown", "interception", "playoffs",
			"super bowl", "training camp", "depth chart", "roster",
			"draft", "rookie", "pro bowl", "all-pro", "mvp",
			"trade", "signed", "extension", "waived", "released",
			"jersey", "merch", "apparel", "uniform", "helmet",
			"game-winning", "record", "comeback", "walk-off", "hail mary",
		},
		DenyTerms: []string{
			"taylor swift", "kardashian", "celebrity", "red carpet",
			"nba", "mlb", "nhl", "premier league", "soccer", "cricket",
			"betting odds", "sportsbook", "parlay", "dfs picks",
			"stock price", "earnings call", "lawsuit settlement",
			"election", "congress", "senate", "white house",
			"recipe", "horoscope",
		},
		TransactionTerms: []string{
			"trade", "traded", "signs", "signed", "signing", "extension",
			"waived", "released", "franchise tag", "free agent", "free agency",
			"acquire", "acquired", "contract",
		},
		InjuryTerms: []string{
			"injury", "injured", "questionable", "doubtful", "ruled out",
			"out for season", "season-ending", "acl", "mcl", "hamstring",
			"concussion", "ir ", "injured reserve", "surgery", "sidelined",
		},
		MediaTerms: []string{
			"podcast", "interview", "documentary", "broadcast", "press conference",
			"presser", "mic'd up", "netflix", "prime video", "sunday night football",
			"monday night football",
		},
		PlayerTerms: []string{
			"quarterback", "running back", "wide receiver", "tight end",
			"linebacker", "cornerback", "safety", "edge rusher",
			"mvp", "offensive player of the year", "defensive player of the year",
			"rookie of the year", "pro bowl", "all-pro",
		},
		HighImpactTerms: []string{
			"record", "record-breaking", "walk-off", "comeback", "viral",
			"game-winning", "historic", "milestone", "hail mary",
		},
		DevelopingTerms: []string{
			"rookie", "injury", "trade", "signed", "extension", "debut",
			"breakout", "benched", "starting",
		},
		ImportantInjuryMarkers: []string{
			"starter", "starting", "star", "mvp", "pro bowl", "all-pro",
			"qb", "quarterback", "running back", "wide receiver",
		},
		DomainAllowlist: []string{
			"espn.com", "nfl.com", "cbssports.com", "foxsports.com",
			"si.com", "theathletic.com", "yahoo.com", "bleacherreport.com",
			"profootballtalk.nbcsports.com", "usatoday.com",
		},
		QueryTerms: []string{
			"quarterback", "touchdown", "playoffs", "injury", "trade",
			"rookie", "super bowl",
		},
		MerchAngles: []MerchAngle{
			{
				Terms: []string{"record", "record-breaking", "historic", "milestone"},
				Text:  "record chase drives jersey demand",
			},
			{
				Terms: []string{"rookie", "debut", "first career"},
				Text:  "rookie buzz, early window for new names",
			},
			{
				Terms: []string{"comeback", "walk-off", "game-winning", "clutch", "hail mary"},
				Text:  "clutch moment, spike in player gear",
			},
			{
				Terms: []string{"trade", "traded", "signed", "extension", "free agent"},
				Text:  "roster move, new-team jersey opportunity",
			},
			{
				Terms: []string{"jersey", "uniform", "helmet", "apparel", "merch", "throwback"},
				Text:  "gear story, direct merchandising hook",
			},
		},
		FallbackAngle: "steady storyline, monitor demand",
	}
}
