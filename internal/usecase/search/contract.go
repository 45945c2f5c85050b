package search

import domdoc "github.com/kailas-cloud/letterdex/internal/domain/document"

// Repository is the read-only index the ranker scores against.
type Repository interface {
	Len() int
	Each(fn func(doc *domdoc.Document))
}
