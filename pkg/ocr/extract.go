package ocr

import (
	"regexp"
	"strings"

	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/teams"
)

// Placeholder values used when an extraction finds nothing. Downstream
// consumers get a populated field either way, never an absent one.
const (
	OddsNA          = "N/A"
	PlaceholderAway = "Away Team"
	PlaceholderHome = "Home Team"
)

// The four extractors below run independently over the same filtered lines;
// none observes another's state, so each is testable on its own.

var signedOddsRE = regexp.MustCompile(`[+-]\d{2,4}`)

// ExtractOdds finds the last signed 2-4 digit integer across all lines; odds
// typically sit near the end or side of a slip. Absence yields "N/A".
func ExtractOdds(lines []string) string {
	odds := OddsNA
	for _, line := range lines {
		for _, loc := range signedOddsRE.FindAllStringIndex(line, -1) {
			if !standaloneNumber(line, loc[0], loc[1]) {
				continue
			}
			odds = line[loc[0]:loc[1]]
		}
	}
	return odds
}

// standaloneNumber rejects matches embedded in longer digit or decimal runs,
// e.g. the "-34" inside "12-3456" or the tail of "+10.55".
func standaloneNumber(line string, start, end int) bool {
	if start > 0 {
		prev := line[start-1]
		if prev >= '0' && prev <= '9' || prev == '.' {
			return false
		}
	}
	if end < len(line) {
		next := line[end]
		if next >= '0' && next <= '9' || next == '.' {
			return false
		}
	}
	return true
}

var (
	matchupRE = regexp.MustCompile(`(?i)^(.+?)\s+(?:@|at|vs\.?)\s+(.+)$`)
	// a signed number or half-point value marks a pick/odds line, not the
	// matchup line; plain digits (game times) are fine
	lineNumberRE = regexp.MustCompile(`[+-]\d|\d+\.5\b`)
)

// ExtractMatchup finds the first "<Away> (at|@|vs) <Home>" line that carries
// no spread or odds number, canonicalizing both sides. Absence yields the
// explicit placeholders.
func ExtractMatchup(lines []string, reg *teams.Registry) (away, home string, found bool) {
	for _, line := range lines {
		if lineNumberRE.MatchString(line) {
			continue
		}
		m := matchupRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return reg.Canonicalize(m[1]), reg.Canonicalize(m[2]), true
	}
	return PlaceholderAway, PlaceholderHome, false
}

// betTypeTable is ordered: earlier entries win when a line matches several.
var betTypeTable = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`(?i)\bmoney ?line\b|\bML\b`), "Money Line"},
	{regexp.MustCompile(`(?i)\brun ?line\b`), "Run Line"},
	{regexp.MustCompile(`(?i)\bspread\b`), "Spread"},
	{regexp.MustCompile(`(?i)\b(?:first|1st) 5(?: innings)?\b|\bF5\b`), "First 5 Innings"},
	{regexp.MustCompile(`(?i)\b(?:first|1st) half\b`), "First Half"},
	{regexp.MustCompile(`(?i)\bover\s+\d`), "Over"},
	{regexp.MustCompile(`(?i)\bunder\s+\d`), "Under"},
	{regexp.MustCompile(`(?i)\btotal\b`), "Total"},
}

var halfPointRE = regexp.MustCompile(`[+-]\d+\.5\b`)

// ClassifyBetType scans lines against the keyword table. The first line with
// any keyword decides; a line carrying several categories keeps them all
// ("Run Line - First 5 Innings"). With no keyword line at all, a half-point
// value anywhere means a spread bet, otherwise a game with no spread is
// assumed to be a moneyline bet.
func ClassifyBetType(lines []string) string {
	for _, line := range lines {
		var labels []string
		for _, entry := range betTypeTable {
			if entry.re.MatchString(line) {
				labels = append(labels, entry.label)
			}
		}
		if len(labels) > 0 {
			return strings.Join(labels, " - ")
		}
	}
	for _, line := range lines {
		if halfPointRE.MatchString(line) {
			return "Run Line"
		}
	}
	return "Money Line"
}

var pickLineRE = regexp.MustCompile(`^(.+?)\s+([+-]?\d+(?:\.\d+)?)$`)

// ExtractPickLine finds the wagered selection: a team phrase trailing a
// numeric line ("New York Mets -0.5"). Lines whose team phrase resolves in
// the registry are preferred; any other letter-bearing phrase with a trailing
// number is still recorded. With no such line, a lone line recognized as a
// known team is a moneyline pick with no attached number.
func ExtractPickLine(lines []string, reg *teams.Registry) (string, bool) {
	type pickCand struct {
		team, number string
	}
	var loose *pickCand
	for _, line := range lines {
		m := pickLineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		phrase := strings.TrimSpace(m[1])
		if !containsLetter(phrase) {
			continue
		}
		if canonical, ok := reg.Lookup(phrase); ok {
			return canonical + " " + m[2], true
		}
		if loose == nil && !keywordOnly(phrase) {
			loose = &pickCand{team: phrase, number: m[2]}
		}
	}
	if loose != nil {
		return reg.Canonicalize(loose.team) + " " + loose.number, true
	}
	for _, line := range lines {
		// a line that is a team name and nothing else: moneyline pick
		if canonical, ok := reg.LookupExact(line); ok {
			return canonical, true
		}
	}
	return "", false
}

func containsLetter(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

// marketPhraseRE matches phrases like "Over" or "Total" that trail a number
// on a slip but name a market, not a team.
var marketPhraseRE = regexp.MustCompile(`(?i)^(?:money ?line|ml|run ?line|spread|total|over|under|(?:first|1st) (?:half|5)(?: innings)?|odds|line|risk|to win|payout|wager|bet)$`)

func keywordOnly(phrase string) bool {
	return marketPhraseRE.MatchString(phrase)
}
