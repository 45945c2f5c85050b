package health

import "context"

// IndexReader reports the number of distinct indexed documents.
type IndexReader interface {
	Len() int
}

// Checker is an additional named component check.
type Checker interface {
	HealthCheck(ctx context.Context) error
}
