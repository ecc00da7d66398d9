package ocr

import (
	"regexp"
	"strings"
)

// boilerplateRES matches lines that carry no wager information: sportsbook
// branding, responsible-gambling disclaimers, and bet/ticket identifiers.
var boilerplateRES = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(draftkings|fanduel|betmgm|caesars|bet365|pointsbet|hard rock|espn bet|barstool)\b`),
	regexp.MustCompile(`(?i)gambling problem`),
	regexp.MustCompile(`(?i)1[-. ]?800[-. ]?gambler`),
	regexp.MustCompile(`(?i)\bplay (it )?responsibly\b`),
	regexp.MustCompile(`(?i)\b(21|18)\+\b`),
	regexp.MustCompile(`(?i)must be (21|18)`),
	regexp.MustCompile(`(?i)terms (and|&) conditions`),
	regexp.MustCompile(`(?i)^(bet|ticket|wager)?\s*id:?\s*#?\w{6,}$`),
	regexp.MustCompile(`^#?\d{8,}$`),
}

// FilterLines splits raw OCR text into trimmed lines and drops empties and
// boilerplate. Pure and total: worst case it returns an empty slice.
func FilterLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = normalizeLine(line)
		if line == "" {
			continue
		}
		if isBoilerplate(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}

func isBoilerplate(line string) bool {
	for _, re := range boilerplateRES {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
