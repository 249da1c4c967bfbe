// Package stopwords loads the list of words excluded from a frequency table.
//
// A stop-word source is line delimited ("\n", "\r\n" or a lone "\r"): every
// line, minus its terminator, is one member of the set. Lines are neither
// trimmed nor case folded, so a blank line contributes the empty string and
// "The" only ever matches "The".
package stopwords

import (
	"bufio"
	"io"
	"sort"

	"github.com/deanrtaylor1/tagextractor/lexer"
	"github.com/deanrtaylor1/tagextractor/util"
)

// MaxLineBytes bounds a single stop-word line
const MaxLineBytes = 1 << 20

// Set is an immutable set of stop words.
type Set struct {
	words map[string]struct{}
}

// New builds a set holding exactly words.
func New(words ...string) Set {
	s := Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.words[w] = struct{}{}
	}
	return s
}

// Load reads one stop word per line from r. A read failure is reported as a
// *util.SourceError and no set is returned.
func Load(r io.Reader) (Set, error) {
	s := Set{words: make(map[string]struct{})}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	scanner.Split(lexer.ScanLines)
	for scanner.Scan() {
		s.words[scanner.Text()] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return Set{}, &util.SourceError{Name: "stop words", Err: err}
	}

	return s, nil
}

// Contains reports whether word is a stop word. The comparison is exact.
func (s Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of distinct stop words
func (s Set) Len() int {
	return len(s.words)
}

// Words returns the members in ascending order
func (s Set) Words() []string {
	words := make([]string, 0, len(s.words))
	for w := range s.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
