package ocr

import (
	"bytes"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// RawResult is the output of a single recognition attempt.
type RawResult struct {
	Text       string
	Confidence float64 // [0,1]
	EngineID   string
}

// Engine is one OCR backend. Implementations must be safe for concurrent use.
type Engine interface {
	ID() string
	Recognize(img []byte) (RawResult, error)
}

// slipWhitelist restricts recognition to characters that actually occur on a
// bet slip: team names, signed lines and odds, and light punctuation. Applied
// uniformly to every engine so the extractor sees one output format.
const slipWhitelist = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789@+-.,:()/&' "

// tesseractEngine wraps gosseract with a per-variant page-segmentation mode
// and optional input transform. A fresh client per call keeps it goroutine
// safe.
type tesseractEngine struct {
	id      string
	psm     gosseract.PageSegMode
	prepare func([]byte) []byte
}

func (e *tesseractEngine) ID() string { return e.id }

func (e *tesseractEngine) Recognize(img []byte) (RawResult, error) {
	if e.prepare != nil {
		img = e.prepare(img)
	}
	client := gosseract.NewClient()
	defer client.Close()
	_ = client.SetLanguage("eng")
	_ = client.SetWhitelist(slipWhitelist)
	_ = client.SetVariable("preserve_interword_spaces", "1")
	_ = client.SetPageSegMode(e.psm)
	if err := client.SetImageFromBytes(img); err != nil {
		return RawResult{}, fmt.Errorf("%s: set image: %w", e.id, err)
	}
	text, err := client.Text()
	if err != nil {
		return RawResult{}, fmt.Errorf("%s: recognize: %w", e.id, err)
	}
	conf := wordConfidence(client)
	if conf <= 0 {
		conf = textConfidence(text)
	}
	return RawResult{Text: text, Confidence: conf, EngineID: e.id}, nil
}

// wordConfidence averages Tesseract's per-word confidences, scaled to [0,1].
// Returns 0 when the iterator yields nothing, so the caller can fall back to
// the text proxy.
func wordConfidence(client *gosseract.Client) float64 {
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return 0
	}
	sum := 0.0
	for _, b := range boxes {
		sum += b.Confidence
	}
	return sum / float64(len(boxes)) / 100
}

var oddsTokenRE = regexp.MustCompile(`[+-]\d{2,4}`)

// textConfidence is a deterministic proxy for engines that do not report a
// score: start low and credit the shapes a readable slip always has.
func textConfidence(text string) float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	var letters, digits, junk int
	for _, r := range trimmed {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			letters++
		case r >= '0' && r <= '9':
			digits++
		case strings.ContainsRune("@+-.,:()/&' \n", r):
		default:
			junk++
		}
	}
	conf := 0.25
	if letters >= 8 {
		conf += 0.2
	}
	if digits >= 2 {
		conf += 0.15
	}
	if oddsTokenRE.MatchString(trimmed) {
		conf += 0.2
	}
	if len(strings.Fields(trimmed)) >= 6 {
		conf += 0.1
	}
	conf -= 0.5 * float64(junk) / float64(len(trimmed))
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}
	return conf
}

// prepareSparse feeds the sparse-text variant a hard global binarization;
// adaptive thresholding shreds the thin fonts that variant is for.
func prepareSparse(img []byte) []byte {
	src, err := imaging.Decode(bytes.NewReader(img))
	if err != nil {
		return img
	}
	bin := binarize(imaging.Grayscale(transformForOCR(src)), 210)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, bin, imaging.PNG); err != nil {
		return img
	}
	return buf.Bytes()
}

// DefaultEngineIDs is the rotation order used when the config names none.
var DefaultEngineIDs = []string{"tesseract", "tesseract-bin", "tesseract-sparse"}

// BuildEngines maps configured engine ids to backends, skipping unknown ids
// with a log line rather than failing startup.
func BuildEngines(ids []string) []Engine {
	if len(ids) == 0 {
		ids = DefaultEngineIDs
	}
	var out []Engine
	for _, id := range ids {
		switch id {
		case "tesseract":
			out = append(out, &tesseractEngine{id: id, psm: gosseract.PSM_SINGLE_BLOCK})
		case "tesseract-bin":
			out = append(out, &tesseractEngine{id: id, psm: gosseract.PSM_SINGLE_BLOCK, prepare: prepareBinarized})
		case "tesseract-sparse":
			out = append(out, &tesseractEngine{id: id, psm: gosseract.PSM_SPARSE_TEXT, prepare: prepareSparse})
		default:
			log.Printf("unknown OCR engine %q in config, skipping", id)
		}
	}
	return out
}
