package vector

import (
	"fmt"

	"github.com/kailas-cloud/letterdex/internal/domain"
)

// Cosine computes dot(u,v) / (||u|| * ||v||).
// If either vector has zero magnitude it returns 0 and an error wrapping
// domain.ErrUndefinedSimilarity instead of NaN.
func Cosine(u, v *FeatureVector) (float64, error) {
	if u.IsZero() || v.IsZero() {
		return 0, fmt.Errorf("cosine with zero-magnitude vector: %w", domain.ErrUndefinedSimilarity)
	}
	return Dot(u, v) / (u.Norm() * v.Norm()), nil
}

// Similarity is the total form of Cosine used for ranking.
// An undefined similarity scores 0 with defined=false.
func Similarity(u, v *FeatureVector) (score float64, defined bool) {
	s, err := Cosine(u, v)
	if err != nil {
		return 0, false
	}
	return s, true
}
