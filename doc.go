// Package letterdex ranks short documents against a query by the cosine
// similarity of their letter-frequency vectors.
//
// Every document is encoded once, at construction, as a 26-slot vector of
// case-insensitive A-Z counts. Everything else in the text is ignored.
// Queries are encoded the same way and compared against every document.
//
//	store := letterdex.New([]string{"I like apples", "I like pears", "I like dogs", "I like cats"})
//	best, _ := store.TopN("fruit", 2)
//	// best[0].Document == "I like cats", best[1].Document == "I like pears"
//
// The ranking is purely lexical: "fruit" is closer to "I like cats" than to
// "I like apples" because the letters overlap more, not because of meaning.
//
// A VectorStore is immutable after New and safe for concurrent use.
package letterdex
