// Package nlp turns free-form feedback text into the normalized token stream
// the sentiment classifier was trained on.
package nlp

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

const maxLemmaPasses = 8

// Lemmatizer reduces a word to its dictionary base form. Unknown words are
// returned unchanged.
type Lemmatizer interface {
	Lemma(word string) string
}

// Normalizer is safe for concurrent use once constructed.
type Normalizer struct {
	stop       StopWords
	lemmatizer Lemmatizer
}

// NewNormalizer creates a Normalizer from a stop-word set and a lemmatizer.
func NewNormalizer(stop StopWords, lemmatizer Lemmatizer) *Normalizer {
	return &Normalizer{stop: stop, lemmatizer: lemmatizer}
}

// NewEnglishNormalizer loads the English lemma dictionary and stop words.
func NewEnglishNormalizer() (*Normalizer, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("loading english lemma dictionary: %w", err)
	}
	return NewNormalizer(EnglishStopWords(), lemmatizer), nil
}

// Normalize lowercases text, deletes everything but ASCII letters and
// whitespace, drops stop words and lemmatizes what remains. The result is a
// fixed point: Normalize(Normalize(s)) == Normalize(s).
func (n *Normalizer) Normalize(text string) string {
	fields := strings.Fields(stripNonAlpha(strings.ToLower(text)))

	out := make([]string, 0, len(fields))
	for _, tok := range fields {
		if n.stop.Contains(tok) {
			continue
		}
		lemma := n.lemma(tok)
		// a lemma can itself be a stop word ("was" -> "be")
		if n.stop.Contains(lemma) {
			continue
		}
		out = append(out, lemma)
	}

	return strings.Join(out, " ")
}

// lemma follows the lemmatizer until the word stops changing. Lemmas that
// would reintroduce characters outside [a-z] are ignored. On a cycle the
// smallest word of the cycle wins so every member maps to the same form.
func (n *Normalizer) lemma(word string) string {
	if n.lemmatizer == nil {
		return word
	}

	seen := []string{word}
	cur := word
	for i := 0; i < maxLemmaPasses; i++ {
		next := strings.ToLower(n.lemmatizer.Lemma(cur))
		if next == cur || next == "" || !isLowerAlpha(next) {
			return cur
		}
		for j, s := range seen {
			if s == next {
				return smallest(seen[j:])
			}
		}
		seen = append(seen, next)
		cur = next
	}
	return cur
}

func stripNonAlpha(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isLowerAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func smallest(words []string) string {
	least := words[0]
	for _, w := range words[1:] {
		if w < least {
			least = w
		}
	}
	return least
}
