package request

import (
	"fmt"
	"math"

	"github.com/kailas-cloud/letterdex/internal/domain"
)

// Request is a validated top-N query.
type Request struct {
	query    string
	n        int
	minScore float64
}

// New validates search parameters.
// Any query text is accepted. n must be >= 0; n == 0 yields no results.
// minScore must lie in [0, 1]; 0 disables the threshold.
func New(query string, n int, minScore float64) (Request, error) {
	if n < 0 {
		return Request{}, domain.NewInvalidInput("n", fmt.Sprintf("must be >= 0, got %d", n))
	}
	if math.IsNaN(minScore) || minScore < 0 || minScore > 1 {
		return Request{}, domain.NewInvalidInput("min_score", "must be between 0 and 1")
	}
	return Request{query: query, n: n, minScore: minScore}, nil
}

// Query returns the query text.
func (r *Request) Query() string { return r.query }

// N returns the maximum number of results.
func (r *Request) N() int { return r.n }

// MinScore returns the minimum similarity threshold.
func (r *Request) MinScore() float64 { return r.minScore }
