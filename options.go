package letterdex

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures a VectorStore.
type Option interface {
	apply(*storeConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*storeConfig)

func (f optionFunc) apply(c *storeConfig) { f(c) }

type storeConfig struct {
	logger     *zap.Logger
	metricsReg prometheus.Registerer
	minScore   float64
}

// WithLogger enables structured logging for index builds and queries.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *storeConfig) {
		c.logger = l
	})
}

// WithMetrics registers search metrics (query counts, latency, result sizes,
// index size) on the given registerer. Pass nil to disable (default).
func WithMetrics(reg prometheus.Registerer) Option {
	return optionFunc(func(c *storeConfig) {
		c.metricsReg = reg
	})
}

// WithMinScore drops results scoring below s from every TopN call.
// 0 disables the threshold (default). s is clamped to [0, 1]; NaN counts as 0.
func WithMinScore(s float64) Option {
	return optionFunc(func(c *storeConfig) {
		switch {
		case math.IsNaN(s) || s < 0:
			c.minScore = 0
		case s > 1:
			c.minScore = 1
		default:
			c.minScore = s
		}
	})
}
