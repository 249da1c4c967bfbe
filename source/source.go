// Package source opens the document and stop-word files of a run.
//
// Files are decoded from their configured character encoding into UTF-8 and,
// for HTML documents, reduced to their text content before any lexing
// happens, so the counter only ever sees plain text lines.
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/deanrtaylor1/tagextractor/lexer"
	"github.com/deanrtaylor1/tagextractor/util"
)

// Stdin is the path that names standard input
const Stdin = "-"

// HTML handling modes
const (
	HTMLAuto   = "auto"
	HTMLAlways = "always"
	HTMLNever  = "never"
)

const DefaultEncoding = "utf-8"

type Options struct {
	// Encoding is a WHATWG encoding label such as "utf-8" or "latin1".
	// Empty means DefaultEncoding.
	Encoding string
	// HTML selects whether the file is parsed as HTML. HTMLAuto decides from
	// the file extension.
	HTML string
}

// ValidateEncoding reports whether label names a known encoding
func ValidateEncoding(label string) error {
	_, err := lookupEncoding(label)
	return err
}

// ValidateHTMLMode reports whether mode is one of the HTML handling modes
func ValidateHTMLMode(mode string) error {
	switch mode {
	case "", HTMLAuto, HTMLAlways, HTMLNever:
		return nil
	}
	return fmt.Errorf("unknown html mode %q (want %s, %s or %s)", mode, HTMLAuto, HTMLAlways, HTMLNever)
}

func lookupEncoding(label string) (encoding.Encoding, error) {
	if label == "" {
		label = DefaultEncoding
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	return enc, nil
}

// IsHTML reports whether path is treated as an HTML document under mode
func IsHTML(path string, mode string) bool {
	switch mode {
	case HTMLAlways:
		return true
	case HTMLNever:
		return false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// Open opens path for reading as UTF-8 text. name describes the role of the
// file ("document", "stop words") in errors, which are always
// *util.SourceError.
func Open(name string, path string, opts Options) (io.ReadCloser, error) {
	fail := func(err error) error {
		return &util.SourceError{Name: name, Path: path, Err: err}
	}

	if err := ValidateHTMLMode(opts.HTML); err != nil {
		return nil, fail(err)
	}
	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, fail(err)
	}

	var f io.ReadCloser
	if path == Stdin {
		f = io.NopCloser(os.Stdin)
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, fail(err)
		}
		f = file
	}

	decoded := transform.NewReader(f, enc.NewDecoder())

	if !IsHTML(path, opts.HTML) {
		return &decodedFile{Reader: decoded, file: f}, nil
	}

	defer f.Close()
	text, err := lexer.ParseHtmlTextContent(decoded)
	if err != nil {
		return nil, fail(err)
	}
	return io.NopCloser(strings.NewReader(text)), nil
}

type decodedFile struct {
	io.Reader
	file io.Closer
}

func (d *decodedFile) Close() error {
	return d.file.Close()
}
