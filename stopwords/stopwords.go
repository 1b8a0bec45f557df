// Package stopwords exposes the fixed Indonesian stop-word list used next to
// the stemmer in indexing pipelines.
package stopwords

var set = func() map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}()

// List returns the stop words in their original order.
// The returned slice is a copy and may be modified by the caller.
func List() []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Set returns a fresh set of all stop words.
func Set() map[string]struct{} {
	m := make(map[string]struct{}, len(set))
	for w := range set {
		m[w] = struct{}{}
	}
	return m
}

// Contains reports whether word is a stop word. The lookup is exact:
// no case folding is applied.
func Contains(word string) bool {
	_, ok := set[word]
	return ok
}

// Len returns the number of distinct stop words.
func Len() int {
	return len(set)
}
