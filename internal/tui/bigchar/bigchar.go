// Package bigchar renders short words as large block art using half-block characters.
package bigchar

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fontPaths are bold sans fonts tried in order.
var fontPaths = []string{
	// macOS
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"/Library/Fonts/Arial Bold.ttf",
	// Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/liberation-sans/LiberationSans-Bold.ttf",
	// Windows
	"C:\\Windows\\Fonts\\arialbd.ttf",
}

// threshold is the brightness above which a half cell is drawn.
const threshold = 40

// Renderer draws words with one font face and caches the results.
type Renderer struct {
	face font.Face

	mu    sync.Mutex
	cache map[string]string
}

// New creates a renderer for face.
func New(face font.Face) *Renderer {
	return &Renderer{face: face, cache: make(map[string]string)}
}

var (
	systemOnce sync.Once
	system     *Renderer
)

// System returns a renderer backed by the first system font found, or nil.
func System() *Renderer {
	systemOnce.Do(func() {
		if face := loadFace(fontPaths); face != nil {
			system = New(face)
		}
	})
	return system
}

func loadFace(paths []string) font.Face {
	opts := &opentype.FaceOptions{Size: 48, DPI: 72, Hinting: font.HintingFull}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
			if fnt, err := coll.Font(0); err == nil {
				if face, err := opentype.NewFace(fnt, opts); err == nil {
					return face
				}
			}
		}

		if fnt, err := opentype.Parse(data); err == nil {
			if face, err := opentype.NewFace(fnt, opts); err == nil {
				return face
			}
		}
	}
	return nil
}

// Render draws word into cols×rows terminal cells. It returns "" when the
// renderer has no face or the word is empty.
func (r *Renderer) Render(word string, cols, rows int) string {
	if r == nil || r.face == nil || word == "" || cols <= 0 || rows <= 0 {
		return ""
	}

	key := fmt.Sprintf("%s/%d/%d", word, cols, rows)
	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.cache[key]; ok {
		return cached
	}
	art := imageToHalfBlocks(scaleDown(r.rasterize(word), cols, rows*2), cols, rows)
	r.cache[key] = art
	return art
}

// rasterize draws word white on black, tightly cropped to its ink plus padding.
func (r *Renderer) rasterize(word string) *image.Gray {
	const padding = 2

	bounds, advance := font.BoundString(r.face, word)
	width := advance.Ceil() + padding*2
	height := (bounds.Max.Y - bounds.Min.Y).Ceil() + padding*2
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: r.face,
		Dot:  fixed.P(padding, padding-bounds.Min.Y.Floor()),
	}
	d.DrawString(word)
	return img
}

// scaleDown resizes src to w×h by averaging the source pixels behind each
// destination pixel.
func scaleDown(src *image.Gray, w, h int) *image.Gray {
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		y0, y1 := span(y, h, sh)
		for x := 0; x < w; x++ {
			x0, x1 := span(x, w, sw)

			var sum, n int
			for sy := y0; sy < y1; sy++ {
				for sx := x0; sx < x1; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					n++
				}
			}
			if n > 0 {
				dst.SetGray(x, y, color.Gray{Y: uint8(sum / n)})
			}
		}
	}
	return dst
}

// span maps destination index i of n onto a non-empty source range of size m.
func span(i, n, m int) (lo, hi int) {
	lo = i * m / n
	hi = (i + 1) * m / n
	if hi <= lo {
		hi = lo + 1
	}
	if hi > m {
		hi = m
	}
	return lo, hi
}

// imageToHalfBlocks converts img into rows lines of cols cells, each cell
// covering two vertical pixels.
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	lines := make([]string, rows)
	for row := range lines {
		var b strings.Builder
		for col := 0; col < cols; col++ {
			top := lit(img, col, row*2)
			bottom := lit(img, col, row*2+1)

			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

func lit(img *image.Gray, x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return false
	}
	return img.GrayAt(x, y).Y > threshold
}
