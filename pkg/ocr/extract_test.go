package ocr

import (
	"testing"

	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/teams"
)

func testRegistry() *teams.Registry {
	return teams.NewRegistry()
}

func TestExtractOddsSignPreserved(t *testing.T) {
	lines := []string{"New York Mets -0.5", "Run Line", "-160"}
	if got := ExtractOdds(lines); got != "-160" {
		t.Fatalf("odds = %q, want %q", got, "-160")
	}
	lines = []string{"Moneyline", "+150"}
	if got := ExtractOdds(lines); got != "+150" {
		t.Fatalf("odds = %q, want %q", got, "+150")
	}
}

func TestExtractOddsLastMatchWins(t *testing.T) {
	lines := []string{"opened -120", "now -135", "price -160"}
	if got := ExtractOdds(lines); got != "-160" {
		t.Fatalf("odds = %q, want last match -160", got)
	}
}

func TestExtractOddsAbsent(t *testing.T) {
	if got := ExtractOdds([]string{"New York Mets", "Money Line"}); got != OddsNA {
		t.Fatalf("odds = %q, want %q", got, OddsNA)
	}
	// embedded digit runs are not odds
	if got := ExtractOdds([]string{"ref 98-76543", "total 10.55"}); got != OddsNA {
		t.Fatalf("odds = %q, want %q", got, OddsNA)
	}
}

func TestExtractMatchup(t *testing.T) {
	reg := testRegistry()
	lines := []string{
		"New York Mets -0.5",                // pick line, carries a number: skip
		"Atlanta Braves at New York Mets",   // this one
		"NYM vs ATL",                        // later line must not win
	}
	away, home, found := ExtractMatchup(lines, reg)
	if !found {
		t.Fatal("matchup not found")
	}
	if away != "Atlanta Braves" || home != "New York Mets" {
		t.Fatalf("matchup = %q @ %q", away, home)
	}
}

func TestExtractMatchupCanonicalizesAliases(t *testing.T) {
	reg := testRegistry()
	away, home, found := ExtractMatchup([]string{"NYM @ ATL"}, reg)
	if !found || away != "New York Mets" || home != "Atlanta Braves" {
		t.Fatalf("got %q @ %q found=%v", away, home, found)
	}
}

func TestExtractMatchupAbsent(t *testing.T) {
	reg := testRegistry()
	away, home, found := ExtractMatchup([]string{"New York Mets -0.5", "Run Line"}, reg)
	if found {
		t.Fatal("matchup should not be found")
	}
	if away != PlaceholderAway || home != PlaceholderHome {
		t.Fatalf("placeholders missing: %q / %q", away, home)
	}
}

func TestClassifyBetTypeComposite(t *testing.T) {
	lines := []string{"New York Mets -0.5", "Run Line - First 5 Innings", "Atlanta Braves at New York Mets"}
	if got := ClassifyBetType(lines); got != "Run Line - First 5 Innings" {
		t.Fatalf("betType = %q", got)
	}
}

func TestClassifyBetTypeKeywords(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"Moneyline", "Money Line"},
		{"Milwaukee Brewers ML", "Money Line"},
		{"Spread -1.5", "Spread"},
		{"Over 8.5", "Over"},
		{"Under 9", "Under"},
		{"Total 8.5", "Total"},
		{"1st Half", "First Half"},
	}
	for _, c := range cases {
		if got := ClassifyBetType([]string{c.line}); got != c.want {
			t.Fatalf("ClassifyBetType(%q) = %q, want %q", c.line, got, c.want)
		}
	}
}

func TestClassifyBetTypeSpreadTieBreak(t *testing.T) {
	// no keyword line, but a half-point value: spread category
	if got := ClassifyBetType([]string{"New York Mets -0.5"}); got != "Run Line" {
		t.Fatalf("betType = %q, want Run Line", got)
	}
	// no keyword and no spread: moneyline by default
	if got := ClassifyBetType([]string{"New York Mets", "Atlanta Braves at New York Mets"}); got != "Money Line" {
		t.Fatalf("betType = %q, want Money Line", got)
	}
}

func TestExtractPickLine(t *testing.T) {
	reg := testRegistry()
	pick, found := ExtractPickLine([]string{"Atlanta Braves at New York Mets", "New York Mets -0.5"}, reg)
	if !found || pick != "New York Mets -0.5" {
		t.Fatalf("pick = %q found=%v", pick, found)
	}
}

func TestExtractPickLineCanonicalizesAlias(t *testing.T) {
	reg := testRegistry()
	pick, found := ExtractPickLine([]string{"METS -1.5"}, reg)
	if !found || pick != "New York Mets -1.5" {
		t.Fatalf("pick = %q found=%v", pick, found)
	}
}

func TestExtractPickLineBareTeamFallback(t *testing.T) {
	reg := testRegistry()
	pick, found := ExtractPickLine([]string{"Money Line", "New York Mets"}, reg)
	if !found || pick != "New York Mets" {
		t.Fatalf("pick = %q found=%v", pick, found)
	}
}

func TestExtractPickLineMarketLinesIgnored(t *testing.T) {
	reg := testRegistry()
	pick, found := ExtractPickLine([]string{"Over 8.5", "Total 9"}, reg)
	if found {
		t.Fatalf("market lines must not become picks, got %q", pick)
	}
}

func TestExtractorsIndependentOfOrder(t *testing.T) {
	reg := testRegistry()
	lines := []string{"-160", "Atlanta Braves at New York Mets", "Run Line", "New York Mets -0.5"}
	if got := ExtractOdds(lines); got != "-160" {
		t.Fatalf("odds = %q", got)
	}
	if _, _, found := ExtractMatchup(lines, reg); !found {
		t.Fatal("matchup lost")
	}
	if _, found := ExtractPickLine(lines, reg); !found {
		t.Fatal("pick lost")
	}
}
