// Package bigkana renders kana and kanji glyphs as large half-block
// art for the terminal.
package bigkana

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

// Candidate Japanese-capable fonts, probed in order.
var fontPaths = []string{
	// macOS
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/System/Library/Fonts/ヒラギノ角ゴシック W3.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJKjp-Regular.otf",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	// Windows
	"C:\\Windows\\Fonts\\YuGothM.ttc",
	"C:\\Windows\\Fonts\\msgothic.ttc",
}

var (
	faceOnce sync.Once
	face     font.Face
)

func loadFace() font.Face {
	faceOnce.Do(func() {
		for _, path := range fontPaths {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if f := parseFace(data); f != nil {
				face = f
				return
			}
		}
	})
	return face
}

func parseFace(data []byte) font.Face {
	opts := &opentype.FaceOptions{Size: 64, DPI: 72}

	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			if f, err := opentype.NewFace(fnt, opts); err == nil {
				return f
			}
		}
	}
	if fnt, err := opentype.Parse(data); err == nil {
		if f, err := opentype.NewFace(fnt, opts); err == nil {
			return f
		}
	}
	return nil
}

// Available reports whether a usable font was found.
func Available() bool {
	return loadFace() != nil
}

// Render draws the first rune of s as half-block art sized cols x rows
// terminal cells. Returns "" when no font is available.
func Render(s string, cols, rows int) string {
	f := loadFace()
	if s == "" || f == nil {
		return ""
	}
	r := []rune(s)[0]

	bounds, _, _ := f.GlyphBounds(r)
	glyphW := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	const padding = 4
	srcW := max(glyphW+padding*2, 64)
	srcH := max(glyphH+padding*2, 64)

	src := image.NewGray(image.Rect(0, 0, srcW, srcH))
	draw.Draw(src, src.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: f,
		Dot:  fixed.P((srcW-glyphW)/2, srcH-padding-bounds.Max.Y.Ceil()),
	}
	d.DrawString(string(r))

	// Half blocks pack two pixel rows per cell.
	scaled := resample(src, cols, rows*2)
	return toHalfBlocks(scaled, cols, rows)
}

// resample shrinks a grayscale image by area averaging.
func resample(src *image.Gray, dstW, dstH int) *image.Gray {
	srcW := src.Bounds().Max.X
	srcH := src.Bounds().Max.Y
	dst := image.NewGray(image.Rect(0, 0, dstW, dstH))

	xr := float64(srcW) / float64(dstW)
	yr := float64(srcH) / float64(dstH)

	for dy := 0; dy < dstH; dy++ {
		for dx := 0; dx < dstW; dx++ {
			x1, y1 := int(float64(dx)*xr), int(float64(dy)*yr)
			x2, y2 := min(int(float64(dx+1)*xr), srcW), min(int(float64(dy+1)*yr), srcH)

			var sum, count int
			for y := y1; y < y2; y++ {
				for x := x1; x < x2; x++ {
					sum += int(src.GrayAt(x, y).Y)
					count++
				}
			}
			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}
	return dst
}

func toHalfBlocks(img *image.Gray, cols, rows int) string {
	const threshold = 40
	var b strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := brightness(img, col, row*2) > threshold
			bottom := brightness(img, col, row*2+1) > threshold
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
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}

var (
	cacheMu sync.Mutex
	cache   = make(map[string]string)
)

// Cached renders through a process-wide cache.
func Cached(s string, cols, rows int) string {
	if !Available() {
		return ""
	}
	key := fmt.Sprintf("%s/%dx%d", s, cols, rows)

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if v, ok := cache[key]; ok {
		return v
	}
	v := Render(s, cols, rows)
	cache[key] = v
	return v
}
