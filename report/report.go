// Package report serializes a frequency table as one "<word> : <count>" line
// per word, in the table's lexicographic order, and reads such reports back.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/deanrtaylor1/tagextractor/frequency"
	"github.com/deanrtaylor1/tagextractor/lexer"
	"github.com/deanrtaylor1/tagextractor/util"
)

// Separator sits between the word and its count on every report line
const Separator = " : "

// FormatEntry formats a single report line without its terminator
func FormatEntry(e frequency.Entry) string {
	return e.Word + Separator + strconv.Itoa(e.Count)
}

// Format returns the report lines of t, without terminators
func Format(t *frequency.Table) []string {
	entries := t.Entries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, FormatEntry(e))
	}
	return lines
}

// Write writes the report of t to w, one terminated line per entry. A write
// failure is reported as a *util.DestinationError.
func Write(w io.Writer, t *frequency.Table) error {
	bw := bufio.NewWriter(w)
	for _, line := range Format(t) {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return &util.DestinationError{Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return &util.DestinationError{Err: err}
	}
	return nil
}

// WriteFile creates or truncates path and writes the report of t to it. A
// failed write may leave a partially written file behind.
func WriteFile(path string, t *frequency.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return &util.DestinationError{Path: path, Err: err}
	}

	if err := Write(f, t); err != nil {
		f.Close()
		return &util.DestinationError{Path: path, Err: unwrapDestination(err)}
	}

	if err := f.Close(); err != nil {
		return &util.DestinationError{Path: path, Err: err}
	}
	return nil
}

func unwrapDestination(err error) error {
	if d, ok := err.(*util.DestinationError); ok {
		return d.Err
	}
	return err
}

// ParseLine splits a report line on its last separator
func ParseLine(line string) (frequency.Entry, error) {
	i := strings.LastIndex(line, Separator)
	if i < 0 {
		return frequency.Entry{}, fmt.Errorf("missing %q separator", Separator)
	}

	count, err := strconv.Atoi(line[i+len(Separator):])
	if err != nil {
		return frequency.Entry{}, fmt.Errorf("invalid count: %w", err)
	}
	if count < 0 {
		return frequency.Entry{}, fmt.Errorf("negative count %d", count)
	}

	return frequency.Entry{Word: line[:i], Count: count}, nil
}

// Parse reads a report written by Write and returns its entries in file order
func Parse(r io.Reader) ([]frequency.Entry, error) {
	entries := []frequency.Entry{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), frequency.DefaultMaxLineBytes)
	scanner.Split(lexer.ScanLines)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		e, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, &util.SourceError{Name: "report", Err: err}
	}

	return entries, nil
}

// Verify checks that entries form a valid report: strictly ascending words,
// each with a positive count.
func Verify(entries []frequency.Entry) error {
	for i, e := range entries {
		if e.Word == "" {
			return fmt.Errorf("entry %d: empty word", i+1)
		}
		if e.Count < 1 {
			return fmt.Errorf("entry %d: %q has count %d", i+1, e.Word, e.Count)
		}
		if i > 0 && entries[i-1].Word >= e.Word {
			return fmt.Errorf("entry %d: %q does not sort after %q", i+1, e.Word, entries[i-1].Word)
		}
	}
	return nil
}
