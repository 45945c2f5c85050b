package document

import "github.com/kailas-cloud/letterdex/internal/domain/vector"

// Document is an indexed corpus entry (immutable value object).
// Identity is the exact text; position is where the text first appeared in the corpus.
type Document struct {
	text     string
	position int
	vector   vector.FeatureVector
}

// New encodes text and creates a Document. Any string is accepted, including empty.
func New(text string, position int) Document {
	return Document{text: text, position: position, vector: vector.Encode(text)}
}

// Text returns the document text.
func (d *Document) Text() string { return d.text }

// Position returns the zero-based corpus position of the first occurrence.
func (d *Document) Position() int { return d.position }

// Vector returns the letter-frequency vector.
func (d *Document) Vector() vector.FeatureVector { return d.vector }
