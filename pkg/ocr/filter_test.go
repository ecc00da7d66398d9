package ocr

import "testing"

func TestFilterDropsBoilerplate(t *testing.T) {
	text := "DraftKings Sportsbook\n\nNew York Mets -0.5\nGAMBLING PROBLEM? CALL 1-800-GAMBLER\nBet ID: A83KD92XF1\nAtlanta Braves at New York Mets\n  \n#123456789012\n21+ only\n"
	got := FilterLines(text)
	want := []string{"New York Mets -0.5", "Atlanta Braves at New York Mets"}
	if len(got) != len(want) {
		t.Fatalf("got %d lines %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilterEmptyInput(t *testing.T) {
	if got := FilterLines(""); len(got) != 0 {
		t.Fatalf("empty text should filter to nothing, got %v", got)
	}
	if got := FilterLines("\n\n  \n"); len(got) != 0 {
		t.Fatalf("blank text should filter to nothing, got %v", got)
	}
}

func TestFilterCollapsesWhitespace(t *testing.T) {
	got := FilterLines("  Milwaukee   Brewers    ML  \n")
	if len(got) != 1 || got[0] != "Milwaukee Brewers ML" {
		t.Fatalf("got %v", got)
	}
}
