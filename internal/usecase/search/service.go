package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	domdoc "github.com/kailas-cloud/letterdex/internal/domain/document"
	"github.com/kailas-cloud/letterdex/internal/domain/search/request"
	"github.com/kailas-cloud/letterdex/internal/domain/search/result"
	"github.com/kailas-cloud/letterdex/internal/domain/vector"
	logpkg "github.com/kailas-cloud/letterdex/internal/logger"
	"github.com/kailas-cloud/letterdex/internal/metrics"
)

// Service ranks indexed documents against a query by cosine similarity.
// It holds no mutable state, so one Service may serve concurrent queries.
type Service struct {
	repo Repository
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// TopN encodes the query, scores it against every indexed document and
// returns at most req.N() results in ranking order.
// A query without letters is not an error: every score is undefined and
// reported as 0 with Defined() == false.
func (s *Service) TopN(ctx context.Context, req *request.Request) ([]result.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("top n: %w", err)
	}

	start := time.Now()
	q := vector.Encode(req.Query())

	results := make([]result.Result, 0, s.repo.Len())
	undefined := 0
	s.repo.Each(func(doc *domdoc.Document) {
		v := doc.Vector()
		score, defined := vector.Similarity(&q, &v)
		if !defined {
			undefined++
		}
		if req.MinScore() > 0 && score < req.MinScore() {
			return
		}
		results = append(results, result.New(doc.Text(), score, doc.Position(), defined))
	})

	results = rank(results, req.N())

	duration := time.Since(start)
	metrics.SearchRequestsTotal.WithLabelValues(metrics.StatusOK).Inc()
	metrics.SearchDuration.Observe(duration.Seconds())
	metrics.SearchResults.Observe(float64(len(results)))
	metrics.UndefinedScoresTotal.Add(float64(undefined))

	logpkg.FromContext(ctx).Debug("Search completed",
		zap.Int("query_len", len(req.Query())),
		zap.Int("n", req.N()),
		zap.Int("scored", s.repo.Len()),
		zap.Int("returned", len(results)),
		zap.Int("undefined", undefined),
		zap.Duration("duration", duration),
	)

	return results, nil
}
