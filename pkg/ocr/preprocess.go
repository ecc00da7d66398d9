package ocr

import (
	"bytes"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// maxWidth bounds the working image size. Slip screenshots come in anywhere
// between thumbnail and full-retina resolution; Tesseract does best in the
// middle of that range.
const maxWidth = 1400

// debugArtifactName is the fixed file the preprocessor writes in debug mode.
const debugArtifactName = "preprocessed.png"

// Preprocess applies the OCR-legibility transform chain: bounded downscale,
// grayscale, contrast normalization, edge sharpening. Strictly best-effort —
// any failure returns the original bytes unchanged.
func Preprocess(img []byte) []byte {
	src, err := imaging.Decode(bytes.NewReader(img))
	if err != nil {
		log.Printf("preprocess: decode failed, using original bytes: %v", err)
		return img
	}
	out := transformForOCR(src)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		log.Printf("preprocess: encode failed, using original bytes: %v", err)
		return img
	}
	return buf.Bytes()
}

func transformForOCR(src image.Image) image.Image {
	out := src
	if out.Bounds().Dx() > maxWidth {
		out = imaging.Resize(out, maxWidth, 0, imaging.Lanczos)
	}
	out = imaging.Grayscale(out)
	out = imaging.AdjustContrast(out, 15)
	return imaging.Sharpen(out, 0.7)
}

// WriteDebugArtifact saves preprocessed bytes to dir for manual inspection.
// Failure to write is logged and swallowed; the artifact carries no contract.
func WriteDebugArtifact(dir string, data []byte) {
	if dir == "" {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("debug artifact: mkdir %s: %v", dir, err)
		return
	}
	path := filepath.Join(dir, debugArtifactName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("debug artifact: write %s: %v", path, err)
	}
}

// prepareBinarized produces a hard black/white rendition for the binarized
// engine variant. Best-effort like Preprocess.
func prepareBinarized(img []byte) []byte {
	src, err := imaging.Decode(bytes.NewReader(img))
	if err != nil {
		return img
	}
	gray := imaging.Grayscale(transformForOCR(src))
	bin := adaptiveThreshold(gray, 15, 7)
	bin = dilate(bin, 1)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, bin, imaging.PNG); err != nil {
		return img
	}
	return buf.Bytes()
}

// binarize applies a single global threshold. Used by the sparse variant
// where adaptive thresholding tends to shred thin sportsbook fonts.
func binarize(img image.Image, threshold uint8) *image.NRGBA {
	return imaging.AdjustFunc(imaging.Clone(img), func(c color.NRGBA) color.NRGBA {
		// already grayscale, red channel is a fine brightness proxy
		if c.R <= threshold {
			return color.NRGBA{0, 0, 0, 255}
		}
		return color.NRGBA{255, 255, 255, 255}
	})
}

// adaptiveThreshold applies a mean threshold over a sliding window using an
// integral image, so dark headers and light bet cards binarize independently.
func adaptiveThreshold(img image.Image, window, bias int) *image.NRGBA {
	if window < 3 {
		window = 3
	}
	if window%2 == 0 {
		window++
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	sums := integralImage(img, w, h)
	half := window / 2
	out := imaging.New(w, h, color.NRGBA{255, 255, 255, 255})
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x0, y0 := max(0, x-half), max(0, y-half)
			x1, y1 := min(w-1, x+half), min(h-1, y+half)
			area := (x1 - x0 + 1) * (y1 - y0 + 1)
			sum := sums[y1*w+x1] - sums[y0*w+x1] - sums[y1*w+x0] + sums[y0*w+x0]
			mean := sum / area
			th := mean - bias
			if th < 0 {
				th = 0
			}
			if grayAt(img, x, y) < th {
				out.Set(x, y, color.NRGBA{0, 0, 0, 255})
			}
		}
	}
	return out
}

func integralImage(img image.Image, w, h int) []int {
	sums := make([]int, w*h)
	for y := 0; y < h; y++ {
		rowSum := 0
		for x := 0; x < w; x++ {
			rowSum += grayAt(img, x, y)
			idx := y*w + x
			if y == 0 {
				sums[idx] = rowSum
			} else {
				sums[idx] = sums[(y-1)*w+x] + rowSum
			}
		}
	}
	return sums
}

func grayAt(img image.Image, x, y int) int {
	b := img.Bounds()
	r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
	return int((r + g + bl) / 3 >> 8)
}

// dilate thickens strokes with a 4-neighborhood pass, radius times.
func dilate(img *image.NRGBA, radius int) *image.NRGBA {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	cur := img
	for r := 0; r < radius; r++ {
		next := imaging.New(w, h, color.NRGBA{255, 255, 255, 255})
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if hasBlackNeighbor(cur, x, y, w, h) {
					next.Set(x, y, color.NRGBA{0, 0, 0, 255})
				}
			}
		}
		cur = next
	}
	return cur
}

func hasBlackNeighbor(img *image.NRGBA, x, y, w, h int) bool {
	for _, d := range [5][2]int{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		x2, y2 := x+d[0], y+d[1]
		if x2 < 0 || y2 < 0 || x2 >= w || y2 >= h {
			continue
		}
		c := img.NRGBAAt(x2, y2)
		if c.R == 0 && c.G == 0 && c.B == 0 {
			return true
		}
	}
	return false
}
