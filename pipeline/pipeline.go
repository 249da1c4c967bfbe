// Package pipeline runs one tagging pass: load the stop words, count the
// document, and hand the table to the report writer.
//
// Inputs are passed explicitly on every call and nothing is retained between
// runs; a Runner can be reused but each Run owns its stop-word set and table.
package pipeline

import (
	"errors"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/deanrtaylor1/tagextractor/frequency"
	"github.com/deanrtaylor1/tagextractor/report"
	"github.com/deanrtaylor1/tagextractor/source"
	"github.com/deanrtaylor1/tagextractor/stopwords"
	"github.com/deanrtaylor1/tagextractor/util"
)

// Inputs are the two streams a run consumes.
type Inputs struct {
	Document  io.Reader
	StopWords io.Reader
}

// Result is the outcome of a successful run.
type Result struct {
	RunID     string
	StopWords stopwords.Set
	Table     *frequency.Table
}

// Runner runs the pipeline with a fixed logger and counter options.
type Runner struct {
	Logger  *zap.Logger
	Options frequency.Options
}

// NewRunner returns a Runner logging to log. A nil log discards output.
func NewRunner(log *zap.Logger, opts frequency.Options) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{Logger: log, Options: opts}
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Run loads the stop words and counts the document. Any failure aborts the
// run and no table is returned.
func (r *Runner) Run(in Inputs) (*Result, error) {
	runID := uuid.NewString()
	log := r.logger().With(zap.String("run_id", runID))

	stops, err := stopwords.Load(in.StopWords)
	if err != nil {
		return nil, err
	}
	log.Debug("stop words loaded", zap.Int("stop_words", stops.Len()))

	table, err := frequency.CountWithOptions(in.Document, stops, r.Options)
	if err != nil {
		return nil, err
	}
	log.Info("document counted",
		zap.Int("words", table.Len()),
		zap.Int("tokens", table.Total()),
	)

	return &Result{RunID: runID, StopWords: stops, Table: table}, nil
}

// RunFiles opens the document and stop-word files through source and runs
// the pipeline over them. Failures name the file they came from.
func (r *Runner) RunFiles(docPath string, stopPath string, opts source.Options) (*Result, error) {
	// Stop-word files are never HTML.
	stopOpts := opts
	stopOpts.HTML = source.HTMLNever
	stopFile, err := source.Open("stop words", stopPath, stopOpts)
	if err != nil {
		return nil, err
	}
	defer stopFile.Close()

	docFile, err := source.Open("document", docPath, opts)
	if err != nil {
		return nil, err
	}
	defer docFile.Close()

	res, err := r.Run(Inputs{Document: docFile, StopWords: stopFile})
	if err != nil {
		var srcErr *util.SourceError
		if errors.As(err, &srcErr) && srcErr.Path == "" {
			switch srcErr.Name {
			case "document":
				srcErr.Path = docPath
			case "stop words":
				srcErr.Path = stopPath
			}
		}
		return nil, err
	}

	r.logger().Info("run complete",
		zap.String("run_id", res.RunID),
		zap.String("document", docPath),
		zap.String("stop_words", stopPath),
	)
	return res, nil
}

// Emit writes the report of res to w
func (r *Runner) Emit(res *Result, w io.Writer) error {
	return report.Write(w, res.Table)
}

// EmitFile writes the report of res to path, truncating it
func (r *Runner) EmitFile(res *Result, path string) error {
	if err := report.WriteFile(path, res.Table); err != nil {
		return err
	}
	r.logger().Info("report written",
		zap.String("run_id", res.RunID),
		zap.String("path", path),
		zap.Int("lines", res.Table.Len()),
	)
	return nil
}
