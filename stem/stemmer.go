// Package stem implements a rule-based Indonesian stemmer.
//
// Affixes are removed in a fixed order: particles (-kah, -lah, -pun),
// possessive pronouns (-ku, -mu, -nya), then derivational prefixes and
// suffixes. Each removal is gated by a running syllable estimate so that
// short words are left alone.
//
// Input is expected to be a single lowercase token. Characters are compared
// byte-wise and no case folding is performed.
package stem

import "strings"

// Flags records which prefix classes were removed from a word.
// Suffix rules consult it to avoid illegal prefix/suffix combinations.
type Flags uint8

const (
	RemovedKE Flags = 1 << iota
	RemovedPENG
	RemovedDI
	RemovedMENG
	RemovedTER
	RemovedBER
	RemovedPE
)

// Has reports whether any of the bits in f are set.
func (fl Flags) Has(f Flags) bool {
	return fl&f != 0
}

// Stemmer holds stemming options. The zero value is not useful; use New.
// A Stemmer is safe for concurrent use: all working state lives in the call.
type Stemmer struct {
	derivational bool
}

// Option configures a Stemmer.
type Option func(*Stemmer)

// WithoutDerivational limits stemming to particles and possessive pronouns.
func WithoutDerivational() Option {
	return func(s *Stemmer) {
		s.derivational = false
	}
}

// New creates a Stemmer. Derivational stemming is enabled unless disabled
// with WithoutDerivational.
func New(opts ...Option) *Stemmer {
	s := &Stemmer{derivational: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var std = New()

// Stem returns the root of word using the default Stemmer.
func Stem(word string) string {
	return std.Stem(word)
}

// Derivational reports whether s removes derivational affixes.
func (s *Stemmer) Derivational() bool {
	return s.derivational
}

// Stem returns the root of word.
func (s *Stemmer) Stem(word string) string {
	st := state{word: word, syllables: countVowels(word)}

	if st.syllables > 2 {
		st.removeParticle()
	}
	if st.syllables >= 2 {
		st.removePossessive()
	}
	if s.derivational {
		st.stemDerivational()
	}
	return st.word
}

// state is the working copy for a single Stem call.
//
// syllables starts as the vowel count of the input and is then decremented
// by a fixed amount per removed affix. It is an estimate and is never
// recounted from the remaining word.
type state struct {
	word      string
	syllables int
	removed   Flags
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func countVowels(w string) int {
	n := 0
	for i := 0; i < len(w); i++ {
		if isVowel(w[i]) {
			n++
		}
	}
	return n
}

// drop removes n bytes from the front of the word.
func (st *state) drop(n int) {
	st.word = st.word[n:]
	st.syllables--
}

// chop removes n bytes from the end of the word.
func (st *state) chop(n int) {
	st.word = st.word[:len(st.word)-n]
	st.syllables--
}

func (st *state) removeParticle() {
	w := st.word
	if strings.HasSuffix(w, "kah") || strings.HasSuffix(w, "lah") || strings.HasSuffix(w, "pun") {
		st.chop(3)
	}
}

func (st *state) removePossessive() {
	w := st.word
	if strings.HasSuffix(w, "ku") || strings.HasSuffix(w, "mu") {
		st.word = w[:len(w)-2]
		st.syllables -= 2
		return
	}
	if strings.HasSuffix(w, "nya") {
		st.chop(3)
	}
}

func (st *state) stemDerivational() {
	before := len(st.word)

	if st.syllables > 2 {
		st.removeFirstOrderPrefix()
	}

	if before != len(st.word) {
		if st.syllables > 2 {
			st.removeSuffix()
		}
		// A second-order prefix is not retried after prefix and suffix
		// both fired: "memperbesarkan" keeps "perbesar" rather than "besar".
		return
	}

	if st.syllables > 2 {
		st.removeSecondOrderPrefix()
	}
	if st.syllables > 2 {
		st.removeSuffix()
	}
}

// respell replaces the byte at i with c and drops everything before it,
// turning "menyapu" into "sapu" or "penarik" into "tarik".
func (st *state) respell(i int, c byte) {
	st.word = string(c) + st.word[i+1:]
	st.syllables--
}

func (st *state) removeFirstOrderPrefix() {
	w := st.word
	switch {
	case strings.HasPrefix(w, "meng"):
		st.removed |= RemovedMENG
		st.drop(4)
	case strings.HasPrefix(w, "meny") && len(w) > 4 && isVowel(w[4]):
		st.removed |= RemovedMENG
		st.respell(3, 's')
	case strings.HasPrefix(w, "men") || strings.HasPrefix(w, "mem"):
		st.removed |= RemovedMENG
		st.drop(3)
	case strings.HasPrefix(w, "me"):
		st.removed |= RemovedMENG
		st.drop(2)
	case strings.HasPrefix(w, "peng"):
		st.removed |= RemovedPENG
		st.drop(4)
	case strings.HasPrefix(w, "peny") && len(w) > 4 && isVowel(w[4]):
		st.removed |= RemovedPENG
		st.respell(3, 's')
	case strings.HasPrefix(w, "peny"):
		st.removed |= RemovedPENG
		st.drop(4)
	case strings.HasPrefix(w, "pen") && len(w) > 3 && isVowel(w[3]):
		st.removed |= RemovedPENG
		st.respell(2, 't')
	case strings.HasPrefix(w, "pen") || strings.HasPrefix(w, "pem"):
		st.removed |= RemovedPENG
		st.drop(2)
	case strings.HasPrefix(w, "di"):
		st.removed |= RemovedDI
		st.drop(2)
	case strings.HasPrefix(w, "ter"):
		st.removed |= RemovedTER
		st.drop(3)
	case strings.HasPrefix(w, "ke"):
		st.removed |= RemovedKE
		st.drop(2)
	}
}

func (st *state) removeSecondOrderPrefix() {
	w := st.word
	switch {
	case strings.HasPrefix(w, "ber"):
		st.removed |= RemovedBER
		st.drop(3)
	case w == "belajar":
		st.removed |= RemovedBER
		st.drop(3)
	case strings.HasPrefix(w, "be") && len(w) > 4 && !isVowel(w[2]) && w[3] == 'e' && w[4] == 'r':
		st.removed |= RemovedBER
		st.drop(2)
	case strings.HasPrefix(w, "per"):
		st.drop(3)
	case w == "pelajar":
		st.drop(3)
	case strings.HasPrefix(w, "pe"):
		st.removed |= RemovedPE
		st.drop(2)
	}
}

func (st *state) removeSuffix() {
	w := st.word
	switch {
	case strings.HasSuffix(w, "kan") && !st.removed.Has(RemovedKE|RemovedPENG|RemovedPE):
		st.chop(3)
	case strings.HasSuffix(w, "an") && !st.removed.Has(RemovedDI|RemovedMENG|RemovedTER):
		st.chop(2)
	case strings.HasSuffix(w, "i") && !strings.HasSuffix(w, "si") && !st.removed.Has(RemovedBER|RemovedKE|RemovedPENG):
		st.chop(1)
	}
}
