package assets

import (
	"encoding/binary"
	"math"
)

// ToneBlip renders a decaying sine as 16-bit little-endian stereo PCM, the
// layout audio.Context players expect.
func ToneBlip(freq, seconds float64, sampleRate int) []byte {
	n := int(seconds * float64(sampleRate))
	if n <= 0 || freq <= 0 {
		return nil
	}

	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		env := (1 - t) * (1 - t)
		if attack := float64(i) / 64; attack < 1 {
			env *= attack
		}
		s := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * env
		v := uint16(int16(s * 0.4 * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], v)
		binary.LittleEndian.PutUint16(buf[i*4+2:], v)
	}
	return buf
}
