package ocr

import (
	"fmt"
	"strings"

	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/teams"
)

// Outcome tags how much of the slip was recovered, so callers do not have to
// string-match the sentinel placeholders to detect degraded results.
type Outcome string

const (
	OutcomeParsed   Outcome = "parsed"
	OutcomePartial  Outcome = "partial"
	OutcomeUnparsed Outcome = "unparsed"
)

// Sentinels carried by the fallback leg. Kept alongside Outcome for callers
// that only look at the leg text.
const (
	SentinelPick    = "Could not parse pick"
	SentinelMatchup = "Could not parse matchup"
)

// BetLeg is one wagered selection. Every field is always populated; absence
// is expressed with explicit placeholders, never an empty branch point.
type BetLeg struct {
	PickLine string `json:"pick_line"`
	BetType  string `json:"bet_type"`
	Matchup  string `json:"matchup"`
	AwayTeam string `json:"away_team"`
	HomeTeam string `json:"home_team"`
	Odds     string `json:"odds"`
	FullPick string `json:"full_pick"`
	RawText  string `json:"raw_text"`
}

// BetSlip is the assembled recognition result. Legs is never empty: when
// nothing could be extracted a single fallback leg carries the raw filtered
// text for human review.
type BetSlip struct {
	Legs     []BetLeg `json:"legs"`
	RawLines []string `json:"raw_lines"`
	Outcome  Outcome  `json:"outcome"`
}

// Assemble combines the four independent extractions into a BetSlip. It never
// fails; parsing gaps degrade to placeholders in place.
func Assemble(lines []string, reg *teams.Registry) BetSlip {
	odds := ExtractOdds(lines)
	away, home, matchupFound := ExtractMatchup(lines, reg)
	betType := ClassifyBetType(lines)
	pick, pickFound := ExtractPickLine(lines, reg)

	raw := strings.Join(lines, "\n")
	if !pickFound && !matchupFound {
		fallbackLegs.Inc()
		return BetSlip{
			Legs: []BetLeg{{
				PickLine: SentinelPick,
				BetType:  betType,
				Matchup:  SentinelMatchup,
				AwayTeam: PlaceholderAway,
				HomeTeam: PlaceholderHome,
				Odds:     odds,
				FullPick: SentinelPick,
				RawText:  raw,
			}},
			RawLines: lines,
			Outcome:  OutcomeUnparsed,
		}
	}

	if !pickFound {
		pick = SentinelPick
	}
	matchup := away + " @ " + home
	leg := BetLeg{
		PickLine: pick,
		BetType:  betType,
		Matchup:  matchup,
		AwayTeam: away,
		HomeTeam: home,
		Odds:     odds,
		FullPick: fmt.Sprintf("%s (%s) %s, odds %s", pick, betType, matchup, odds),
		RawText:  raw,
	}
	outcome := OutcomeParsed
	if !pickFound || !matchupFound {
		outcome = OutcomePartial
	}
	return BetSlip{Legs: []BetLeg{leg}, RawLines: lines, Outcome: outcome}
}
