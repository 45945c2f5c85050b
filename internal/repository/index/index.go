// Package index is the in-memory letter-frequency index.
package index

import (
	domdoc "github.com/kailas-cloud/letterdex/internal/domain/document"
	"github.com/kailas-cloud/letterdex/internal/domain/vector"
)

// Index maps document text to its feature vector.
// Entries are kept in first-occurrence order; textually identical documents
// collapse into a single entry. An Index is never mutated after Build, so it
// is safe for concurrent readers.
type Index struct {
	corpus  []string
	entries []domdoc.Document
	slots   map[string]int
}

// Build encodes every document eagerly.
func Build(documents []string) *Index {
	idx := &Index{
		corpus:  append([]string(nil), documents...),
		entries: make([]domdoc.Document, 0, len(documents)),
		slots:   make(map[string]int, len(documents)),
	}
	for pos, text := range documents {
		if _, ok := idx.slots[text]; ok {
			// Same text encodes to the same vector; the first position wins.
			continue
		}
		idx.slots[text] = len(idx.entries)
		idx.entries = append(idx.entries, domdoc.New(text, pos))
	}
	return idx
}

// Len returns the number of distinct documents.
func (i *Index) Len() int { return len(i.entries) }

// CorpusLen returns the number of documents supplied to Build, duplicates included.
func (i *Index) CorpusLen() int { return len(i.corpus) }

// Corpus returns a copy of the documents supplied to Build.
func (i *Index) Corpus() []string { return append([]string(nil), i.corpus...) }

// Entries returns the distinct documents in first-occurrence order.
func (i *Index) Entries() []domdoc.Document {
	return append([]domdoc.Document(nil), i.entries...)
}

// Each calls fn for every entry in first-occurrence order without copying.
func (i *Index) Each(fn func(doc *domdoc.Document)) {
	for j := range i.entries {
		fn(&i.entries[j])
	}
}

// Lookup returns the vector stored for text.
func (i *Index) Lookup(text string) (vector.FeatureVector, bool) {
	slot, ok := i.slots[text]
	if !ok {
		return vector.FeatureVector{}, false
	}
	return i.entries[slot].Vector(), true
}
