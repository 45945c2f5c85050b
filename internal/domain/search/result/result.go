package result

// Result is a single ranked document.
type Result struct {
	text     string
	score    float64
	position int
	defined  bool
}

// New creates a search result.
func New(text string, score float64, position int, defined bool) Result {
	return Result{text: text, score: score, position: position, defined: defined}
}

// Text returns the document text.
func (r *Result) Text() string { return r.text }

// Score returns the cosine similarity (0 when undefined).
func (r *Result) Score() float64 { return r.score }

// Position returns the corpus position of the document's first occurrence.
func (r *Result) Position() int { return r.position }

// Defined reports whether the similarity was defined, i.e. neither vector was all-zero.
func (r *Result) Defined() bool { return r.defined }
