package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/datareef/reconcile-cli/internal/reconcile"
	"github.com/datareef/reconcile-cli/internal/render"
)

func sampleReport(t *testing.T) *reconcile.Report {
	t.Helper()
	return reconcile.Run(
		reconcile.Input{Name: "metadata.csv", Data: []byte("id,file\n1,a.jpg\n2,b.jpg\n")},
		reconcile.Input{Name: "customers.csv", Data: []byte("cust_id,file\n1,a.jpg\n3,c.jpg\n")},
	)
}

func TestReportTable(t *testing.T) {
	var buf bytes.Buffer
	render.Report(&buf, sampleReport(t))
	out := buf.String()

	for _, want := range []string{
		"Detected Metadata Key: id",
		"Detected Customer Key: cust_id",
		"Matched Records (Count: 1)",
		"Unmatched Records (Count: 2)",
		"Cust Id",
		"a.jpg",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReportUnusablePass(t *testing.T) {
	r := reconcile.Run(
		reconcile.Input{Name: "metadata.json", Data: []byte("{not json")},
		reconcile.Input{Name: "customers.csv", Data: []byte("cust_id\n1\n")},
	)
	var buf bytes.Buffer
	render.Report(&buf, r)
	if !strings.Contains(buf.String(), "No data found or parsing failed.") {
		t.Fatalf("expected the no-data message, got:\n%s", buf.String())
	}
}

func TestReportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := render.ReportJSON(&buf, sampleReport(t)); err != nil {
		t.Fatalf("ReportJSON: %v", err)
	}

	var out struct {
		RunID       string `json:"run_id"`
		MetadataKey string `json:"metadata_key"`
		Matched     struct {
			Columns []string                     `json:"columns"`
			Rows    []map[string]json.RawMessage `json:"rows"`
			Count   int                          `json:"count"`
		} `json:"matched"`
		Unmatched struct {
			Count int `json:"count"`
		} `json:"unmatched"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.RunID == "" {
		t.Fatalf("missing run_id")
	}
	if out.MetadataKey != "id" {
		t.Fatalf("metadata_key = %q, want id", out.MetadataKey)
	}
	if out.Matched.Count != 1 || out.Unmatched.Count != 2 {
		t.Fatalf("counts = %d/%d, want 1/2", out.Matched.Count, out.Unmatched.Count)
	}
	if len(out.Matched.Columns) != 4 {
		t.Fatalf("matched columns = %v, want 4 entries", out.Matched.Columns)
	}
	// Null cells must come through as JSON null, not empty strings.
	if err := render.ReportJSON(&buf, sampleReport(t)); err != nil {
		t.Fatalf("ReportJSON: %v", err)
	}
	if !strings.Contains(buf.String(), "null") {
		t.Fatalf("expected null cells in unmatched rows:\n%s", buf.String())
	}
}
