package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

//go:embed sheets/*.png sfx/*.wav
var assetsFS embed.FS

var (
	audioOnce    sync.Once
	audioContext *audio.Context

	imageMu    sync.Mutex
	imageCache = map[string]*ebiten.Image{}
	solidCache = map[solidKey]*ebiten.Image{}
)

type solidKey struct {
	w, h int
	c    color.RGBA
}

// AudioContext returns the shared context, creating it on first use.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// LoadImage loads an embedded image by assets-relative path. Results are
// cached.
func LoadImage(path string) (*ebiten.Image, error) {
	clean := cleanAssetPath(path)
	imageMu.Lock()
	defer imageMu.Unlock()
	if img, ok := imageCache[clean]; ok {
		return img, nil
	}

	src, err := DecodeImage(clean)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	imageCache[clean] = img
	return img, nil
}

// DecodeImage decodes an embedded image without touching the GPU.
func DecodeImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return img, nil
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// LoadAudioPlayer decodes an embedded wav and creates a player for it.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	ctx := AudioContext()
	if strings.HasSuffix(strings.ToLower(path), ".wav") {
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", path, err)
		}
		return ctx.NewPlayer(stream)
	}

	// Fallback for already-decoded PCM assets in Ebiten's native format.
	return ctx.NewPlayerFromBytes(b), nil
}

// ToneBlipPlayer creates a player for a generated tone.
func ToneBlipPlayer(freq, seconds float64) *audio.Player {
	return AudioContext().NewPlayerFromBytes(ToneBlip(freq, seconds, SampleRate))
}

// Solid returns a w x h image filled with c, shared between callers.
func Solid(w, h int, c color.Color) *ebiten.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	r, g, b, a := c.RGBA()
	key := solidKey{w: w, h: h, c: color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}}

	imageMu.Lock()
	defer imageMu.Unlock()
	if img, ok := solidCache[key]; ok {
		return img
	}
	img := ebiten.NewImage(w, h)
	img.Fill(key.c)
	solidCache[key] = img
	return img
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	return strings.TrimPrefix(s, "assets/")
}
