package lexer

import (
	"bufio"
	"io"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

func scanAll(t *testing.T, s string, oneByte bool) []string {
	t.Helper()
	var r io.Reader = strings.NewReader(s)
	if oneByte {
		r = iotest.OneByteReader(r)
	}
	scanner := bufio.NewScanner(r)
	scanner.Split(ScanLines)
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan %q: %v", s, err)
	}
	return lines
}

func TestScanLines(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "Empty", input: "", want: []string{}},
		{name: "LF", input: "the\non\n", want: []string{"the", "on"}},
		{name: "CRLF", input: "the\r\non\r\n", want: []string{"the", "on"}},
		{name: "Lone CR", input: "the\ron\r", want: []string{"the", "on"}},
		{name: "Mixed", input: "a\rb\r\nc\nd", want: []string{"a", "b", "c", "d"}},
		{name: "No final terminator", input: "cat", want: []string{"cat"}},
		{name: "Blank lines", input: "\r\r\n\n", want: []string{"", "", ""}},
		{name: "CR before blank LF line", input: "a\r\n\nb", want: []string{"a", "", "b"}},
		{name: "LF then CR", input: "a\n\rb", want: []string{"a", "", "b"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := scanAll(t, tc.input, false); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Expected: %q, got: %q", tc.want, got)
			}
			// a CR at the end of one read must still pair with the LF of the next
			if got := scanAll(t, tc.input, true); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("one byte reads: Expected: %q, got: %q", tc.want, got)
			}
		})
	}
}
