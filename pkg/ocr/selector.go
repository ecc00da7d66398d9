package ocr

import (
	"fmt"
	"log"
	"sync/atomic"
)

// Acceptance floors. With several engines configured a weak read can be
// retried on the next backend, so the bar is high; with a single backend
// there is nothing to fall through to and a low-confidence read is still
// worth parsing.
const (
	MultiEngineFloor  = 0.7
	SingleEngineFloor = 0.3
)

// Recognizer is the piece of the pipeline the analyzer depends on.
type Recognizer interface {
	Recognize(img []byte) (RawResult, error)
}

// Selector tries engines in rotation order and accepts the first result above
// the acceptance floor. The rotation cursor is shared across concurrent
// requests to spread load over backends; only the increment is atomic —
// strict fairness does not matter, racing on the counter does.
type Selector struct {
	engines []Engine
	floor   float64
	cursor  atomic.Uint64
}

// NewSelector builds a selector over engines. A non-positive floor picks the
// default for the engine count.
func NewSelector(engines []Engine, floor float64) *Selector {
	if floor <= 0 {
		floor = MultiEngineFloor
		if len(engines) == 1 {
			floor = SingleEngineFloor
		}
	}
	return &Selector{engines: engines, floor: floor}
}

// Floor reports the acceptance floor in use.
func (s *Selector) Floor() float64 { return s.floor }

// Recognize runs the rotation for one request.
func (s *Selector) Recognize(img []byte) (RawResult, error) {
	if len(s.engines) == 0 {
		return RawResult{}, fmt.Errorf("%w: no engines configured", ErrAllEnginesFailed)
	}
	start := int((s.cursor.Add(1) - 1) % uint64(len(s.engines)))
	return firstAccepted(s.engines, start, s.floor, img)
}

// firstAccepted folds over the engine list starting at start: first result
// clearing floor wins, engine errors and weak results log and continue. Pure
// with respect to the rotation cursor so the policy is testable on its own.
func firstAccepted(engines []Engine, start int, floor float64, img []byte) (RawResult, error) {
	for i := range engines {
		e := engines[(start+i)%len(engines)]
		res, err := e.Recognize(img)
		if err != nil {
			log.Printf("OCR engine %s error: %v", e.ID(), err)
			engineAttempts.WithLabelValues(e.ID(), "error").Inc()
			continue
		}
		if res.Confidence < floor {
			log.Printf("OCR engine %s below floor: conf=%.2f floor=%.2f text=%q", e.ID(), res.Confidence, floor, snippet(res.Text, 80))
			engineAttempts.WithLabelValues(e.ID(), "below_floor").Inc()
			continue
		}
		engineAttempts.WithLabelValues(e.ID(), "accepted").Inc()
		return res, nil
	}
	return RawResult{}, ErrAllEnginesFailed
}
