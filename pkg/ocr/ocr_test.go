package ocr

import "testing"

func TestAnalyzeConfidenceGating(t *testing.T) {
	weak := &stubEngine{id: "tesseract", res: RawResult{Text: "New York Mets -0.5", Confidence: 0.25}}
	sel := NewSelector([]Engine{weak}, 0.3)
	a := NewAnalyzer(sel, testRegistry(), 0, t.TempDir())
	res := a.AnalyzeImage([]byte("not an image"), false)
	if res.Success {
		t.Fatalf("confidence 0.25 under floor 0.3 must fail, got %+v", res)
	}
	if res.Err == "" {
		t.Fatal("failure must carry an error string")
	}
}

func TestAnalyzeSanityFloor(t *testing.T) {
	// accepted by the selector's permissive floor, rejected by the absolute one
	weak := &stubEngine{id: "tesseract", res: RawResult{Text: "barely anything", Confidence: 0.15}}
	sel := NewSelector([]Engine{weak}, 0.1)
	a := NewAnalyzer(sel, testRegistry(), 0.2, t.TempDir())
	res := a.AnalyzeImage(nil, false)
	if res.Success {
		t.Fatal("sanity floor must reject")
	}
	if res.Err != ErrLowConfidence.Error() {
		t.Fatalf("err = %q", res.Err)
	}
	if res.EngineUsed != "tesseract" {
		t.Fatalf("engineUsed = %q", res.EngineUsed)
	}
}

func TestAnalyzeFullSlip(t *testing.T) {
	text := "DraftKings Sportsbook\nNew York Mets -0.5\nRun Line - First 5 Innings\nAtlanta Braves at New York Mets\n-160\nGAMBLING PROBLEM? 1-800-GAMBLER"
	eng := &stubEngine{id: "tesseract", res: RawResult{Text: text, Confidence: 0.92}}
	a := NewAnalyzer(NewSelector([]Engine{eng}, 0.7), testRegistry(), 0, t.TempDir())
	res := a.AnalyzeImage(nil, false)
	if !res.Success {
		t.Fatalf("analyze failed: %+v", res)
	}
	if res.Slip == nil || len(res.Slip.Legs) != 1 {
		t.Fatalf("slip = %+v", res.Slip)
	}
	leg := res.Slip.Legs[0]
	if leg.PickLine != "New York Mets -0.5" || leg.Odds != "-160" {
		t.Fatalf("leg = %+v", leg)
	}
	if res.EngineUsed != "tesseract" || res.Confidence != 0.92 {
		t.Fatalf("engine/conf = %q/%v", res.EngineUsed, res.Confidence)
	}
	if res.RawText != text {
		t.Fatal("raw text must be carried through")
	}
}

func TestAnalyzeGarbageStillSucceeds(t *testing.T) {
	eng := &stubEngine{id: "tesseract", res: RawResult{Text: "qqq zzz\nxxx yyy", Confidence: 0.8}}
	a := NewAnalyzer(NewSelector([]Engine{eng}, 0.7), testRegistry(), 0, t.TempDir())
	res := a.AnalyzeImage(nil, false)
	if !res.Success {
		t.Fatalf("parsing gaps must not fail the request: %+v", res)
	}
	if res.Slip.Outcome != OutcomeUnparsed {
		t.Fatalf("outcome = %q", res.Slip.Outcome)
	}
	if res.Slip.Legs[0].PickLine != SentinelPick {
		t.Fatalf("leg = %+v", res.Slip.Legs[0])
	}
}

func TestTextConfidence(t *testing.T) {
	if got := textConfidence(""); got != 0 {
		t.Fatalf("empty text conf = %v", got)
	}
	if got := textConfidence("   \n  "); got != 0 {
		t.Fatalf("blank text conf = %v", got)
	}
	slip := "New York Mets -0.5\nRun Line\nAtlanta Braves at New York Mets\n-160"
	if got := textConfidence(slip); got < 0.7 {
		t.Fatalf("readable slip conf = %v, want >= 0.7", got)
	}
	junk := "####$$$$%%%%"
	if got := textConfidence(junk); got > 0.3 {
		t.Fatalf("junk conf = %v, want low", got)
	}
}
