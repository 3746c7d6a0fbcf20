package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flentkit/flentreport/internal/must"
)

// withExitCapture overrides osExitFn and returns a pointer to the
// recorded exit code, which is -1 when no exit happened.
func withExitCapture(t *testing.T) *int {
	code := -1
	osExitFn = func(c int) {
		code = c
	}
	t.Cleanup(func() {
		osExitFn = os.Exit
	})
	return &code
}

// newResultDocument returns the serialized JSON of a result
// containing a single well formed TCP upload series.
func newResultDocument() []byte {
	return must.MarshalJSON(map[string]any{
		"metadata": map[string]any{
			"SERIES_META": map[string]any{
				"TCP upload": map[string]any{
					"COMMAND":    "flent -t tcp_up -H server.example.org tcp_upload",
					"UNITS":      "Mbits/s",
					"MEAN_VALUE": 941.23456,
					"SEND_SIZE":  131072,
				},
			},
		},
	})
}

func TestMainWithOptions(t *testing.T) {
	t.Run("with a missing result path", func(t *testing.T) {
		code := withExitCapture(t)
		mainWithOptions(&Options{})
		if *code != 1 {
			t.Fatal("unexpected exit code", *code)
		}
	})

	t.Run("with a nonexistent result path", func(t *testing.T) {
		code := withExitCapture(t)
		mainWithOptions(&Options{
			ResultPath: filepath.Join(t.TempDir(), "missing"),
		})
		if *code != 1 {
			t.Fatal("unexpected exit code", *code)
		}
	})

	t.Run("with a valid result directory", func(t *testing.T) {
		code := withExitCapture(t)
		dir := t.TempDir()
		must.WriteFile(filepath.Join(dir, "result.flent"), newResultDocument(), 0600)
		reportCSV := filepath.Join(t.TempDir(), "report.csv")
		mainWithOptions(&Options{
			ResultPath: dir,
			ReportCSV:  reportCSV,
		})
		if *code != -1 {
			t.Fatal("unexpected exit code", *code)
		}
		content := string(must.ReadFile(reportCSV))
		if !strings.Contains(content, "0,NaN,NaN,NaN,tcp_up,128,NaN,941.2346") {
			t.Fatal("unexpected report content", content)
		}
	})

	t.Run("the report csv defaults to the result path", func(t *testing.T) {
		code := withExitCapture(t)
		dir := t.TempDir()
		mainWithOptions(&Options{
			ResultPath: dir,
		})
		if *code != -1 {
			t.Fatal("unexpected exit code", *code)
		}
		content := string(must.ReadFile(filepath.Join(dir, "flent_report.csv")))
		if !strings.HasPrefix(content, ",Backend,Driver,Format,Type,MSize(Kbits),Round,BW(Mbits/s)") {
			t.Fatal("unexpected report content", content)
		}
	})

	t.Run("a malformed record causes a failure exit", func(t *testing.T) {
		code := withExitCapture(t)
		dir := t.TempDir()
		// parses as JSON but lacks metadata.SERIES_META
		must.WriteFile(filepath.Join(dir, "result.flent"), []byte(`{}`), 0600)
		mainWithOptions(&Options{
			ResultPath: dir,
			ReportCSV:  filepath.Join(t.TempDir(), "report.csv"),
		})
		if *code != 1 {
			t.Fatal("unexpected exit code", *code)
		}
	})

	t.Run("an unwritable report path causes a failure exit", func(t *testing.T) {
		code := withExitCapture(t)
		dir := t.TempDir()
		mainWithOptions(&Options{
			ResultPath: dir,
			ReportCSV:  filepath.Join(t.TempDir(), "missing", "report.csv"),
		})
		if *code != 1 {
			t.Fatal("unexpected exit code", *code)
		}
	})
}
