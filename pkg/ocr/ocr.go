package ocr

import (
	"log"
	"time"

	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/teams"
)

// DefaultSanityFloor is the absolute floor below which an accepted engine
// result is still rejected. Deliberately lower than any acceptance floor; it
// only bites when a lone engine is configured with a permissive floor.
const DefaultSanityFloor = 0.2

// Analyzer is the bet slip recognition pipeline front door: preprocess, OCR
// with rotation fallback, filter, extract, assemble. Safe for concurrent use.
type Analyzer struct {
	recognizer  Recognizer
	registry    *teams.Registry
	sanityFloor float64
	debugDir    string
}

// NewAnalyzer wires the pipeline. A non-positive sanityFloor selects the
// default; debugDir is where debug artifacts land when a request asks for
// them.
func NewAnalyzer(rec Recognizer, reg *teams.Registry, sanityFloor float64, debugDir string) *Analyzer {
	if sanityFloor <= 0 {
		sanityFloor = DefaultSanityFloor
	}
	if debugDir == "" {
		debugDir = "debug"
	}
	return &Analyzer{recognizer: rec, registry: reg, sanityFloor: sanityFloor, debugDir: debugDir}
}

// Registry exposes the team registry for collaborators (stats lookups).
func (a *Analyzer) Registry() *teams.Registry { return a.registry }

// Result is the caller-facing outcome of one recognition request. Network
// and engine failures surface as Success=false; parsing gaps never do — they
// degrade inside the returned slip.
type Result struct {
	Success    bool     `json:"success"`
	Slip       *BetSlip `json:"data"`
	EngineUsed string   `json:"engine_used,omitempty"`
	Confidence float64  `json:"confidence,omitempty"`
	ElapsedMs  int64    `json:"elapsed_ms"`
	RawText    string   `json:"raw_text,omitempty"`
	Err        string   `json:"error,omitempty"`
}

// AnalyzeImage runs the full pipeline over raw image bytes. It never panics
// and always returns a Result; a successful Result always carries a slip with
// at least one leg.
func (a *Analyzer) AnalyzeImage(img []byte, debug bool) Result {
	start := time.Now()
	defer func() {
		analyzeSeconds.Observe(time.Since(start).Seconds())
	}()

	pre := Preprocess(img)
	if debug {
		WriteDebugArtifact(a.debugDir, pre)
	}

	raw, err := a.recognizer.Recognize(pre)
	if err != nil {
		return Result{Success: false, ElapsedMs: elapsedMs(start), Err: err.Error()}
	}
	if raw.Confidence < a.sanityFloor {
		log.Printf("OCR sanity floor: engine=%s conf=%.2f floor=%.2f", raw.EngineID, raw.Confidence, a.sanityFloor)
		return Result{
			Success:    false,
			EngineUsed: raw.EngineID,
			Confidence: raw.Confidence,
			ElapsedMs:  elapsedMs(start),
			RawText:    raw.Text,
			Err:        ErrLowConfidence.Error(),
		}
	}

	lines := FilterLines(raw.Text)
	slip := Assemble(lines, a.registry)
	log.Printf("OCR analyzed engine=%s conf=%.2f outcome=%s lines=%d", raw.EngineID, raw.Confidence, slip.Outcome, len(lines))
	return Result{
		Success:    true,
		Slip:       &slip,
		EngineUsed: raw.EngineID,
		Confidence: raw.Confidence,
		ElapsedMs:  elapsedMs(start),
		RawText:    raw.Text,
	}
}

func elapsedMs(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
