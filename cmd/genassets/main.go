// Command genassets regenerates the placeholder player sheet and the cue
// sounds embedded by the assets package.
package main

import (
	"encoding/binary"
	"flag"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/milk9111/densetsu/assets"
	"github.com/milk9111/densetsu/logger"
	"golang.org/x/image/colornames"
)

const frameSize = 32

// clip is one block of rows on the sheet. Directional clips take four rows,
// one per facing quadrant.
type clip struct {
	name        string
	row         int
	frames      int
	directional bool
	body        color.RGBA
	// squash flattens the body over the clip, for death.
	squash bool
}

var clips = []clip{
	{name: "idle", row: 0, frames: 4, directional: true, body: colornames.Royalblue},
	{name: "idle_carry", row: 4, frames: 4, directional: true, body: colornames.Teal},
	{name: "walk", row: 8, frames: 6, directional: true, body: colornames.Seagreen},
	{name: "attack", row: 12, frames: 4, directional: true, body: colornames.Darkorange},
	{name: "hit", row: 16, frames: 2, body: colornames.Firebrick},
	{name: "death", row: 17, frames: 4, body: colornames.Dimgray, squash: true},
}

type cue struct {
	name    string
	freq    float64
	seconds float64
}

var cues = []cue{
	{name: "attack", freq: 660, seconds: 0.08},
	{name: "dash", freq: 880, seconds: 0.07},
	{name: "hurt", freq: 220, seconds: 0.15},
	{name: "death", freq: 110, seconds: 0.5},
}

func main() {
	out := flag.String("out", "assets", "assets directory to write into")
	flag.Parse()

	log := logger.Init("info", "text", nil)

	sheet := drawSheet()
	sheetPath := filepath.Join(*out, "sheets", "player.png")
	if err := writePNG(sheetPath, sheet); err != nil {
		log.WithError(err).Fatal("genassets: sheet")
	}
	log.WithField("file", sheetPath).Info("genassets: wrote sheet")

	for _, c := range cues {
		path := filepath.Join(*out, "sfx", c.name+".wav")
		pcm := assets.ToneBlip(c.freq, c.seconds, assets.SampleRate)
		if err := writeWAV(path, pcm, assets.SampleRate); err != nil {
			log.WithError(err).WithField("file", path).Fatal("genassets: cue")
		}
		log.WithField("file", path).Info("genassets: wrote cue")
	}
}

func sheetSize() (cols, rows int) {
	for _, c := range clips {
		if c.frames > cols {
			cols = c.frames
		}
		last := c.row + 1
		if c.directional {
			last = c.row + 4
		}
		if last > rows {
			rows = last
		}
	}
	return cols, rows
}

func drawSheet() *image.RGBA {
	cols, rows := sheetSize()
	sheet := image.NewRGBA(image.Rect(0, 0, cols*frameSize, rows*frameSize))

	for _, c := range clips {
		quadrants := 1
		if c.directional {
			quadrants = 4
		}
		for q := 0; q < quadrants; q++ {
			for f := 0; f < c.frames; f++ {
				frame := drawFrame(c, q, f)
				outline := generateOutline(frame, 1, color.RGBA{A: 0xff})
				ox, oy := f*frameSize, (c.row+q)*frameSize
				blit(sheet, outline, ox, oy)
				blit(sheet, frame, ox, oy)
			}
		}
	}
	return sheet
}

// quadrantFacing matches the row order the animation system expects:
// (+x,+y), (-x,+y), (-x,-y), (+x,-y).
var quadrantFacing = [4][2]float64{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}

func drawFrame(c clip, quadrant, frame int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frameSize, frameSize))

	cx, cy := 16.0, 17.0
	rx, ry := 8.0, 10.0
	// Walk and idle bob by a pixel.
	cy += math.Round(math.Sin(float64(frame) / float64(c.frames) * 2 * math.Pi))
	if c.squash {
		t := float64(frame+1) / float64(c.frames)
		ry *= 1 - 0.75*t
		rx *= 1 + 0.4*t
		cy = 27 - ry
	}

	shade := func(x, y float64) color.RGBA {
		// Lighter toward the top-left.
		k := 1.15 - 0.3*(x-cx+rx)/(2*rx) - 0.2*(y-cy+ry)/(2*ry)
		return color.RGBA{R: scale(c.body.R, k), G: scale(c.body.G, k), B: scale(c.body.B, k), A: 0xff}
	}
	for y := 0; y < frameSize; y++ {
		for x := 0; x < frameSize; x++ {
			dx, dy := (float64(x)+0.5-cx)/rx, (float64(y)+0.5-cy)/ry
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(x, y, shade(float64(x), float64(y)))
			}
		}
	}

	if c.squash {
		return img
	}

	// Eye on the facing side; screen y grows down, facing +y is up.
	face := quadrantFacing[quadrant]
	ex := int(cx + face[0]*4)
	ey := int(cy - face[1]*3)
	fillRect(img, ex-1, ey-1, 3, 3, colornames.White)

	if c.name == "idle_carry" {
		fillRect(img, 10, 1, 12, 4, colornames.Goldenrod)
	}
	if c.name == "attack" && frame > 0 && frame < c.frames-1 {
		sx := int(cx + face[0]*(rx+2))
		fillRect(img, sx-1, int(cy)-1, 3, 3, colornames.Lightyellow)
	}
	return img
}

func scale(v uint8, k float64) uint8 {
	f := float64(v) * k
	switch {
	case f < 0:
		return 0
	case f > 255:
		return 255
	}
	return uint8(f)
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if image.Pt(xx, yy).In(img.Bounds()) {
				img.SetRGBA(xx, yy, c)
			}
		}
	}
}

// blit copies the opaque pixels of src onto dst at (ox, oy).
func blit(dst, src *image.RGBA, ox, oy int) {
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c := src.RGBAAt(x, y); c.A != 0 {
				dst.SetRGBA(ox+x-b.Min.X, oy+y-b.Min.Y, c)
			}
		}
	}
}

// generateOutline returns an image holding outlineCol on every transparent
// pixel of src within thickness pixels of an opaque one.
func generateOutline(src *image.RGBA, thickness int, outlineCol color.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))

	isOpaque := func(x, y int) bool {
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		return src.RGBAAt(b.Min.X+x, b.Min.Y+y).A != 0
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if isOpaque(x, y) {
				continue
			}
			found := false
			for yy := max(y-thickness, 0); yy <= min(y+thickness, h-1) && !found; yy++ {
				for xx := max(x-thickness, 0); xx <= min(x+thickness, w-1); xx++ {
					if isOpaque(xx, yy) {
						found = true
						break
					}
				}
			}
			if found {
				out.SetRGBA(x, y, outlineCol)
			}
		}
	}
	return out
}

func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// writeWAV wraps 16-bit stereo PCM in a RIFF header.
func writeWAV(path string, pcm []byte, sampleRate int) error {
	const (
		channels      = 2
		bitsPerSample = 16
	)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	blockAlign := channels * bitsPerSample / 8
	header := []any{
		[4]byte{'R', 'I', 'F', 'F'},
		uint32(36 + len(pcm)),
		[4]byte{'W', 'A', 'V', 'E'},
		[4]byte{'f', 'm', 't', ' '},
		uint32(16),
		uint16(1),
		uint16(channels),
		uint32(sampleRate),
		uint32(sampleRate * blockAlign),
		uint16(blockAlign),
		uint16(bitsPerSample),
		[4]byte{'d', 'a', 't', 'a'},
		uint32(len(pcm)),
	}
	for _, v := range header {
		if err := binary.Write(f, binary.LittleEndian, v); err != nil {
			_ = f.Close()
			return err
		}
	}
	if _, err := f.Write(pcm); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
