package letterdex

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/letterdex/internal/domain/search/request"
	"github.com/kailas-cloud/letterdex/internal/domain/vector"
	logpkg "github.com/kailas-cloud/letterdex/internal/logger"
	"github.com/kailas-cloud/letterdex/internal/metrics"
	"github.com/kailas-cloud/letterdex/internal/repository/index"
	searchuc "github.com/kailas-cloud/letterdex/internal/usecase/search"
)

// Dimensions is the length of every feature vector: one slot per letter A-Z.
const Dimensions = vector.Dimensions

// FeatureVector holds letter counts; slot 0 is 'a', slot 25 is 'z'.
type FeatureVector = vector.FeatureVector

// ScoredResult is one ranked document.
type ScoredResult struct {
	Document string
	Score    float64
	// Position is the index of the document's first occurrence in the corpus.
	Position int
	// Defined is false when either vector had no letters; Score is then 0.
	Defined bool
}

// VectorStore is an immutable letter-frequency index over a fixed corpus.
type VectorStore struct {
	index    *index.Index
	search   *searchuc.Service
	logger   *zap.Logger
	minScore float64
}

// New encodes every document and returns a ready store.
// Textually identical documents collapse into one entry at the position of
// their first occurrence; Corpus still returns them all.
func New(documents []string, opts ...Option) *VectorStore {
	cfg := &storeConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	idx := index.Build(documents)

	if cfg.metricsReg != nil {
		if err := metrics.RegisterSearchMetrics(cfg.metricsReg); err != nil {
			logger.Warn("letterdex: metrics registration failed", zap.Error(err))
		}
		metrics.SetIndexSize(idx.CorpusLen(), idx.Len())
	}

	logger.Info("letterdex: index built",
		zap.Int("corpus", idx.CorpusLen()),
		zap.Int("distinct", idx.Len()),
	)

	return &VectorStore{
		index:    idx,
		search:   searchuc.New(idx),
		logger:   logger,
		minScore: cfg.minScore,
	}
}

// TopN returns at most n documents ranked by cosine similarity to query,
// highest first. Ties keep corpus order. n == 0 yields an empty slice and a
// negative n fails with ErrInvalidInput.
func (s *VectorStore) TopN(query string, n int) ([]ScoredResult, error) {
	return s.TopNContext(context.Background(), query, n)
}

// TopNContext is TopN with a context; a canceled context fails before scoring.
func (s *VectorStore) TopNContext(ctx context.Context, query string, n int) ([]ScoredResult, error) {
	req, err := request.New(query, n, s.minScore)
	if err != nil {
		return nil, fmt.Errorf("letterdex: %w", err)
	}

	results, err := s.search.TopN(logpkg.ContextWithLogger(ctx, s.logger), &req)
	if err != nil {
		return nil, fmt.Errorf("letterdex: %w", err)
	}

	out := make([]ScoredResult, len(results))
	for i := range results {
		out[i] = ScoredResult{
			Document: results[i].Text(),
			Score:    results[i].Score(),
			Position: results[i].Position(),
			Defined:  results[i].Defined(),
		}
	}
	return out, nil
}

// Len returns the number of distinct documents.
func (s *VectorStore) Len() int { return s.index.Len() }

// CorpusLen returns the number of documents passed to New, duplicates included.
func (s *VectorStore) CorpusLen() int { return s.index.CorpusLen() }

// Corpus returns a copy of the documents passed to New.
func (s *VectorStore) Corpus() []string { return s.index.Corpus() }

// Documents returns the distinct documents in first-occurrence order.
func (s *VectorStore) Documents() []string {
	entries := s.index.Entries()
	docs := make([]string, len(entries))
	for i := range entries {
		docs[i] = entries[i].Text()
	}
	return docs
}

// Vector returns the stored vector for an indexed document.
func (s *VectorStore) Vector(document string) (FeatureVector, bool) {
	return s.index.Lookup(document)
}

// Encode maps text to its letter-frequency vector.
func Encode(text string) FeatureVector {
	return vector.Encode(text)
}

// Similarity returns the cosine similarity of u and v. It fails with
// ErrUndefinedSimilarity when either vector is all zeros.
func Similarity(u, v FeatureVector) (float64, error) {
	return vector.Cosine(&u, &v)
}
