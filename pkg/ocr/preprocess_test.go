package ocr

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{255, 255, 255, 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestPreprocessBoundsWidth(t *testing.T) {
	src := encodePNG(t, 3000, 1500)
	out := Preprocess(src)
	img, err := imaging.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("preprocessed bytes not decodable: %v", err)
	}
	if img.Bounds().Dx() > maxWidth {
		t.Fatalf("width %d exceeds bound %d", img.Bounds().Dx(), maxWidth)
	}
}

func TestPreprocessSmallImageKeepsSize(t *testing.T) {
	src := encodePNG(t, 400, 300)
	out := Preprocess(src)
	img, err := imaging.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 400 {
		t.Fatalf("small image was resized to %d", img.Bounds().Dx())
	}
}

func TestPreprocessBadBytesReturnsOriginal(t *testing.T) {
	src := []byte("definitely not an image")
	out := Preprocess(src)
	if !bytes.Equal(out, src) {
		t.Fatal("failed preprocessing must return the original bytes")
	}
}

func TestPrepareBinarizedIsDecodable(t *testing.T) {
	src := encodePNG(t, 200, 100)
	out := prepareBinarized(src)
	if _, err := imaging.Decode(bytes.NewReader(out)); err != nil {
		t.Fatalf("binarized bytes not decodable: %v", err)
	}
}

func TestWriteDebugArtifact(t *testing.T) {
	dir := t.TempDir()
	WriteDebugArtifact(dir, []byte("payload"))
	data, err := os.ReadFile(filepath.Join(dir, debugArtifactName))
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("artifact content = %q", data)
	}
	// failures are swallowed, never propagated
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	WriteDebugArtifact(blocker, []byte("y"))
}
