package locomotion

import "github.com/jakecoffman/cp"

func isZero(v cp.Vector) bool {
	return v.X == 0 && v.Y == 0
}

// normalize returns v scaled to unit length, or the zero vector for zero input.
func normalize(v cp.Vector) cp.Vector {
	l := v.Length()
	if l == 0 {
		return cp.Vector{}
	}
	return v.Mult(1 / l)
}
