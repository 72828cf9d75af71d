package reconcile

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/datareef/reconcile-cli/internal/parser"
	"github.com/datareef/reconcile-cli/internal/table"
)

// Input is one fetched dataset: the source name (drives format detection)
// and its raw bytes. FetchErr carries a retrieval failure from the byte
// source; the pass treats it like receiving no content and keeps going.
type Input struct {
	Name     string
	Data     []byte
	FetchErr error
}

// DiagnosticKind classifies a recoverable condition reported by a pass.
type DiagnosticKind string

const (
	DiagParse     DiagnosticKind = "parse"
	DiagNoColumns DiagnosticKind = "no_columns"
	DiagRetrieval DiagnosticKind = "retrieval"
)

// Diagnostic is a human-readable recoverable condition tied to one source.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	Source  string         `json:"source"`
	Message string         `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Source, d.Message)
}

// Report is the outcome of one reconciliation pass. Matched and Unmatched
// carry normalized display headers; the inferred keys are reported with
// their original names. Diagnostics list every recoverable condition hit
// along the way; a pass never fails outright because of them.
type Report struct {
	RunID       uuid.UUID
	MetadataKey string
	CustomerKey string
	Matched     table.Table
	Unmatched   table.Table
	Diagnostics []Diagnostic

	ran bool
}

// Matchable reports whether both sides produced a usable key, i.e. whether
// matching actually ran.
func (r *Report) Matchable() bool {
	return r.ran
}

// Run executes one full reconciliation pass over the two fetched datasets:
// parse both, infer a key per side, match, normalize headers. The pass is
// synchronous and stateless; repeated invocations are independent.
//
// Recoverable failures (retrieval, parse, zero columns) degrade the affected
// side to an empty table and are reported via Report.Diagnostics, never as
// an error or panic. When either side is unusable, matching is skipped and
// both result tables are empty.
func Run(metadata, customer Input) *Report {
	r := &Report{RunID: uuid.New()}

	meta := r.parseSide(metadata)
	cust := r.parseSide(customer)

	metaKey, metaOK := r.inferSide(meta, metadata.Name)
	custKey, custOK := r.inferSide(cust, customer.Name)
	r.MetadataKey, r.CustomerKey = metaKey, custKey

	if !metaOK || !custOK {
		return r
	}
	r.ran = true

	res := Match(meta, cust, r.MetadataKey, r.CustomerKey)
	r.Matched = NormalizeHeaders(res.Matched)
	r.Unmatched = NormalizeHeaders(res.Unmatched)
	return r
}

// parseSide turns one input into a table, downgrading retrieval and parse
// failures to diagnostics plus an empty table.
func (r *Report) parseSide(in Input) table.Table {
	if in.FetchErr != nil {
		r.report(DiagRetrieval, in.Name, in.FetchErr.Error())
		return table.Table{}
	}
	t, err := parser.Parse(in.Data, parser.FormatFromPath(in.Name), in.Name)
	if err != nil {
		r.report(DiagParse, in.Name, err.Error())
		return table.Table{}
	}
	return t
}

// inferSide returns the inferred key for one side. A table without columns
// is unusable; that is reported distinctly from parse failures.
func (r *Report) inferSide(t table.Table, name string) (string, bool) {
	key, err := InferKey(t)
	if err != nil {
		if errors.Is(err, ErrNoColumns) {
			r.report(DiagNoColumns, name, "no usable columns; skipping match")
		} else {
			r.report(DiagNoColumns, name, err.Error())
		}
		return "", false
	}
	return key, true
}

func (r *Report) report(kind DiagnosticKind, source, msg string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Kind: kind, Source: source, Message: msg})
}
