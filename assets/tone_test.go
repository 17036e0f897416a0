package assets

import (
	"encoding/binary"
	"testing"
)

func TestToneBlip(t *testing.T) {
	tests := []struct {
		name    string
		freq    float64
		seconds float64
		bytes   int
	}{
		{"tenth_second", 440, 0.1, 4410 * 4},
		{"zero_length", 440, 0, 0},
		{"zero_freq", 0, 0.1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ToneBlip(tc.freq, tc.seconds, SampleRate)
			if len(got) != tc.bytes {
				t.Fatalf("expected %d bytes, got %d", tc.bytes, len(got))
			}
		})
	}
}

func TestToneBlipStereoAndDecay(t *testing.T) {
	pcm := ToneBlip(440, 0.1, SampleRate)
	var early, late int
	frames := len(pcm) / 4
	for i := 0; i < frames; i++ {
		l := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
		if l != r {
			t.Fatalf("frame %d: channels differ", i)
		}
		a := int(l)
		if a < 0 {
			a = -a
		}
		if i < frames/4 {
			early = max(early, a)
		} else if i > frames*3/4 {
			late = max(late, a)
		}
	}
	if late >= early {
		t.Fatalf("expected decay, early peak %d late peak %d", early, late)
	}
}

func TestEmbeddedSheetDecodes(t *testing.T) {
	img, err := DecodeImage("assets/sheets/player.png")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 192 || b.Dy() != 576 {
		t.Fatalf("unexpected sheet size %v", b)
	}
}

func TestCleanAssetPath(t *testing.T) {
	for in, want := range map[string]string{
		"":                       "",
		"assets/sfx/dash.wav":    "sfx/dash.wav",
		"sfx/dash.wav":           "sfx/dash.wav",
		"/home/x/assets/a/b.png": "a/b.png",
	} {
		if got := cleanAssetPath(in); got != want {
			t.Fatalf("%q: expected %q, got %q", in, want, got)
		}
	}
}
