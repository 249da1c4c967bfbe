package frequency

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/deanrtaylor1/tagextractor/lexer"
	"github.com/deanrtaylor1/tagextractor/stopwords"
	"github.com/deanrtaylor1/tagextractor/util"
)

// DefaultMaxLineBytes is the longest document line Count accepts by default
const DefaultMaxLineBytes = 1 << 20

type TermFreq map[string]int

// Entry is one word of a table together with its count
type Entry struct {
	Word  string
	Count int
}

// Table maps case-folded words to their number of occurrences. A Table is
// read-only once Count returns it.
type Table struct {
	terms TermFreq
}

type Options struct {
	// MaxLineBytes bounds a single line of the document. Zero means
	// DefaultMaxLineBytes.
	MaxLineBytes int
}

// Count reads the document line by line, splits every line into tokens,
// folds each token to lower case and counts the tokens that are not stop
// words. The stop-word comparison uses the folded token against the stop
// words exactly as they were loaded.
//
// A read failure is reported as a *util.SourceError and no table is returned.
func Count(r io.Reader, stops stopwords.Set) (*Table, error) {
	return CountWithOptions(r, stops, Options{})
}

// CountWithOptions is Count with explicit limits
func CountWithOptions(r io.Reader, stops stopwords.Set, opts Options) (*Table, error) {
	maxLine := opts.MaxLineBytes
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}

	tf := make(TermFreq)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLine)), maxLine)
	scanner.Split(lexer.ScanLines)
	for scanner.Scan() {
		addLine(tf, scanner.Text(), stops)
	}
	if err := scanner.Err(); err != nil {
		return nil, &util.SourceError{Name: "document", Err: err}
	}

	return &Table{terms: tf}, nil
}

// CountLines counts an in-memory document given as its lines
func CountLines(lines []string, stops stopwords.Set) *Table {
	tf := make(TermFreq)
	for _, line := range lines {
		addLine(tf, line, stops)
	}
	return &Table{terms: tf}
}

func addLine(tf TermFreq, line string, stops stopwords.Set) {
	l := lexer.NewLexer(line)
	for {
		token, err := l.Next()
		if err != nil {
			return
		}

		word := strings.ToLower(token)
		if stops.Contains(word) {
			continue
		}
		tf[word] += 1
	}
}

// Count returns the number of occurrences of word, zero when absent
func (t *Table) Count(word string) int {
	return t.terms[word]
}

// Len returns the number of distinct words
func (t *Table) Len() int {
	return len(t.terms)
}

// Total returns the number of counted tokens, the sum of all counts
func (t *Table) Total() int {
	var total int
	for _, freq := range t.terms {
		total += freq
	}
	return total
}

// Words returns the words in ascending lexicographic order
func (t *Table) Words() []string {
	words := make([]string, 0, len(t.terms))
	for w := range t.terms {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Entries returns every word with its count in ascending lexicographic order
// of the word, independent of the order the words were first seen in.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.terms))
	for _, w := range t.Words() {
		entries = append(entries, Entry{Word: w, Count: t.terms[w]})
	}
	return entries
}

// Top returns the n most frequent entries, ties broken by word. A negative n
// returns every entry.
func (t *Table) Top(n int) []Entry {
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })

	if n >= 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// FromEntries builds a table from entries, e.g. ones read back from a report.
// Later duplicates add to earlier ones.
func FromEntries(entries []Entry) *Table {
	tf := make(TermFreq, len(entries))
	for _, e := range entries {
		tf[e.Word] += e.Count
	}
	return &Table{terms: tf}
}
