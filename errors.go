package letterdex

import "github.com/kailas-cloud/letterdex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidInput        = domain.ErrInvalidInput
	ErrUndefinedSimilarity = domain.ErrUndefinedSimilarity
)
