// Package vector holds the letter-frequency feature vector and its similarity math.
package vector

import "math"

// Dimensions is the feature vector length: one slot per lowercase ASCII letter.
const Dimensions = 26

// FeatureVector counts case-insensitive ASCII letter occurrences, index 0 = 'a' ... 25 = 'z'.
type FeatureVector [Dimensions]float64

// Encode maps text to its letter-frequency vector.
// Bytes outside A-Z / a-z are ignored, so multi-byte UTF-8 letters never count.
func Encode(text string) FeatureVector {
	var v FeatureVector
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'a' && c <= 'z':
			v[c-'a']++
		case c >= 'A' && c <= 'Z':
			v[c-'A']++
		}
	}
	return v
}

// Letter returns the letter a slot counts.
func Letter(i int) byte { return byte('a' + i) }

// Sum returns the total number of letters counted.
func (v *FeatureVector) Sum() float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s
}

// IsZero reports whether no letter was counted.
func (v *FeatureVector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Norm returns the Euclidean norm.
func (v *FeatureVector) Norm() float64 { return math.Sqrt(Dot(v, v)) }

// Slice returns the counts as a fresh slice.
func (v *FeatureVector) Slice() []float64 {
	out := make([]float64, Dimensions)
	copy(out, v[:])
	return out
}

// Counts returns the non-zero slots keyed by letter.
func (v *FeatureVector) Counts() map[string]int {
	m := make(map[string]int)
	for i, x := range v {
		if x != 0 {
			m[string(Letter(i))] = int(x)
		}
	}
	return m
}

// Dot returns the dot product of u and v.
func Dot(u, v *FeatureVector) float64 {
	var s float64
	for i := range u {
		s += u[i] * v[i]
	}
	return s
}
