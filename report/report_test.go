package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/deanrtaylor1/tagextractor/frequency"
	"github.com/deanrtaylor1/tagextractor/stopwords"
	"github.com/deanrtaylor1/tagextractor/util"
)

func catTable() *frequency.Table {
	return frequency.CountLines(
		[]string{"The cat sat on the mat.", "The cat ran."},
		stopwords.New("the", "on"),
	)
}

func TestFormat(t *testing.T) {
	expected := []string{"cat : 2", "mat : 1", "ran : 1", "sat : 1"}
	if lines := Format(catTable()); !reflect.DeepEqual(lines, expected) {
		t.Errorf("Expected: %v, got: %v", expected, lines)
	}
}

func TestFormatEntry(t *testing.T) {
	cases := []struct {
		entry frequency.Entry
		want  string
	}{
		{frequency.Entry{Word: "cat", Count: 2}, "cat : 2"},
		{frequency.Entry{Word: "a_1", Count: 1000}, "a_1 : 1000"},
	}

	for _, v := range cases {
		got := FormatEntry(v.entry)
		if got != v.want {
			t.Errorf("FormatEntry(%v) == %q, want %q", v.entry, got, v.want)
		}
		parsed, err := ParseLine(got)
		if err != nil || parsed != v.entry {
			t.Errorf("ParseLine(%q) == %v, %v, want %v", got, parsed, err, v.entry)
		}
	}
}

func TestWrite(t *testing.T) {
	testCases := []struct {
		name     string
		table    *frequency.Table
		expected string
	}{
		{
			name:     "Cat sat on the mat",
			table:    catTable(),
			expected: "cat : 2\nmat : 1\nran : 1\nsat : 1\n",
		},
		{
			name:     "Empty table",
			table:    frequency.CountLines(nil, stopwords.New()),
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tc.table); err != nil {
				t.Fatalf("Write() returned error: %v", err)
			}
			if buf.String() != tc.expected {
				t.Errorf("Expected: %q, got: %q", tc.expected, buf.String())
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("pipe closed")
}

func TestWriteFailure(t *testing.T) {
	err := Write(failingWriter{}, catTable())
	if !errors.Is(err, util.ErrDestinationUnavailable) {
		t.Errorf("Write() error %v should be ErrDestinationUnavailable", err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := os.WriteFile(path, []byte("stale content that is longer than the report\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, catTable()); err != nil {
		t.Fatalf("WriteFile() returned error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	expected := "cat : 2\nmat : 1\nran : 1\nsat : 1\n"
	if string(b) != expected {
		t.Errorf("Expected: %q, got: %q", expected, string(b))
	}
}

func TestWriteFileUnavailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "report.txt")

	err := WriteFile(path, catTable())
	if !errors.Is(err, util.ErrDestinationUnavailable) {
		t.Fatalf("WriteFile() error %v should be ErrDestinationUnavailable", err)
	}

	var destErr *util.DestinationError
	if !errors.As(err, &destErr) || destErr.Path != path {
		t.Errorf("WriteFile() error %v should name %s", err, path)
	}
}

func TestRoundTrip(t *testing.T) {
	tables := []*frequency.Table{
		catTable(),
		frequency.CountLines(nil, stopwords.New()),
		frequency.CountLines([]string{"x_1 x_1 Y 42 42 42 under_score"}, stopwords.New()),
	}

	for _, table := range tables {
		var buf bytes.Buffer
		if err := Write(&buf, table); err != nil {
			t.Fatalf("Write() returned error: %v", err)
		}

		entries, err := Parse(&buf)
		if err != nil {
			t.Fatalf("Parse() returned error: %v", err)
		}
		if !reflect.DeepEqual(entries, table.Entries()) {
			t.Errorf("Expected: %v, got: %v", table.Entries(), entries)
		}
		if err := Verify(entries); err != nil {
			t.Errorf("Verify() returned error: %v", err)
		}
	}
}

func TestParseLine(t *testing.T) {
	testCases := []struct {
		line     string
		expected frequency.Entry
		wantErr  bool
	}{
		{line: "cat : 2", expected: frequency.Entry{Word: "cat", Count: 2}},
		{line: "a : b : 3", expected: frequency.Entry{Word: "a : b", Count: 3}},
		{line: "cat: 2", wantErr: true},
		{line: "cat : two", wantErr: true},
		{line: "cat : -1", wantErr: true},
		{line: "", wantErr: true},
	}

	for _, tc := range testCases {
		got, err := ParseLine(tc.line)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseLine(%q) should fail, got %v", tc.line, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLine(%q) returned error: %v", tc.line, err)
		}
		if got != tc.expected {
			t.Errorf("ParseLine(%q) = %v, want %v", tc.line, got, tc.expected)
		}
	}
}

func TestParseReportsLine(t *testing.T) {
	_, err := Parse(strings.NewReader("cat : 2\nbroken\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Parse() error %v should name line 2", err)
	}
}

func TestParseLineTerminators(t *testing.T) {
	expected := []frequency.Entry{{Word: "cat", Count: 2}, {Word: "mat", Count: 1}}
	for _, input := range []string{"cat : 2\nmat : 1\n", "cat : 2\r\nmat : 1\r\n", "cat : 2\rmat : 1\r"} {
		got, err := Parse(strings.NewReader(input))
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", input, err)
			continue
		}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("Parse(%q) = %v, want %v", input, got, expected)
		}
	}
}

func TestVerify(t *testing.T) {
	testCases := []struct {
		name    string
		entries []frequency.Entry
		wantErr bool
	}{
		{name: "Ascending", entries: []frequency.Entry{{Word: "a", Count: 1}, {Word: "b", Count: 2}}},
		{name: "Empty", entries: nil},
		{name: "Descending", entries: []frequency.Entry{{Word: "b", Count: 1}, {Word: "a", Count: 1}}, wantErr: true},
		{name: "Duplicate", entries: []frequency.Entry{{Word: "a", Count: 1}, {Word: "a", Count: 1}}, wantErr: true},
		{name: "Zero count", entries: []frequency.Entry{{Word: "a", Count: 0}}, wantErr: true},
		{name: "Empty word", entries: []frequency.Entry{{Word: "", Count: 1}}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Verify(tc.entries)
			if (err != nil) != tc.wantErr {
				t.Errorf("Verify() error = %v, wantErr %t", err, tc.wantErr)
			}
		})
	}
}
