package ocr

import (
	"errors"
	"testing"
)

type stubEngine struct {
	id    string
	res   RawResult
	err   error
	calls int
}

func (s *stubEngine) ID() string { return s.id }

func (s *stubEngine) Recognize(img []byte) (RawResult, error) {
	s.calls++
	if s.err != nil {
		return RawResult{}, s.err
	}
	res := s.res
	res.EngineID = s.id
	return res, nil
}

func TestSelectorAcceptsFirstAboveFloor(t *testing.T) {
	a := &stubEngine{id: "a", res: RawResult{Text: "weak", Confidence: 0.5}}
	b := &stubEngine{id: "b", res: RawResult{Text: "strong", Confidence: 0.9}}
	s := NewSelector([]Engine{a, b}, 0.7)
	res, err := s.Recognize(nil)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if res.EngineID != "b" || res.Text != "strong" {
		t.Fatalf("accepted %q (%q)", res.EngineID, res.Text)
	}
	if a.calls != 1 {
		t.Fatalf("weak engine should have been tried once, calls=%d", a.calls)
	}
}

func TestSelectorSkipsErroringEngine(t *testing.T) {
	bad := &stubEngine{id: "bad", err: errors.New("boom")}
	good := &stubEngine{id: "good", res: RawResult{Text: "ok", Confidence: 0.8}}
	s := NewSelector([]Engine{bad, good}, 0.7)
	res, err := s.Recognize(nil)
	if err != nil {
		t.Fatalf("one engine erroring must not abort the request: %v", err)
	}
	if res.EngineID != "good" {
		t.Fatalf("accepted %q", res.EngineID)
	}
}

func TestSelectorAllEnginesFailed(t *testing.T) {
	a := &stubEngine{id: "a", res: RawResult{Confidence: 0.1}}
	b := &stubEngine{id: "b", err: errors.New("boom")}
	s := NewSelector([]Engine{a, b}, 0.7)
	_, err := s.Recognize(nil)
	if !errors.Is(err, ErrAllEnginesFailed) {
		t.Fatalf("err = %v, want ErrAllEnginesFailed", err)
	}
}

func TestSelectorRotatesStartEngine(t *testing.T) {
	a := &stubEngine{id: "a", res: RawResult{Confidence: 0.9}}
	b := &stubEngine{id: "b", res: RawResult{Confidence: 0.9}}
	s := NewSelector([]Engine{a, b}, 0.7)
	first, _ := s.Recognize(nil)
	second, _ := s.Recognize(nil)
	if first.EngineID != "a" || second.EngineID != "b" {
		t.Fatalf("rotation broken: %q then %q", first.EngineID, second.EngineID)
	}
}

func TestSelectorDefaultFloors(t *testing.T) {
	multi := NewSelector([]Engine{&stubEngine{id: "a"}, &stubEngine{id: "b"}}, 0)
	if multi.Floor() != MultiEngineFloor {
		t.Fatalf("multi floor = %v", multi.Floor())
	}
	single := NewSelector([]Engine{&stubEngine{id: "a"}}, 0)
	if single.Floor() != SingleEngineFloor {
		t.Fatalf("single floor = %v", single.Floor())
	}
}

func TestSelectorNoEngines(t *testing.T) {
	s := NewSelector(nil, 0.7)
	if _, err := s.Recognize(nil); !errors.Is(err, ErrAllEnginesFailed) {
		t.Fatalf("err = %v", err)
	}
}
