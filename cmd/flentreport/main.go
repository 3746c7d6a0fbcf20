// Command flentreport summarizes flent benchmark results as a CSV report.
//
// The harness that runs flent saves each result as a `<name>.flent`
// JSON file (or as a `<name>.tar.gz` bundle containing it) inside a
// results directory. This command scans that directory, extracts the
// performance KPIs of each result, and writes a sorted CSV summary.
package main

import (
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/flentkit/flentreport/internal/flentreport"
	"github.com/flentkit/flentreport/internal/fsx"
	"github.com/flentkit/flentreport/internal/version"
	"github.com/spf13/cobra"
)

// Options contains the options you can set from the CLI.
type Options struct {
	ReportCSV  string
	ResultPath string
	TarCommand string
	Verbose    bool
}

// osExitFn allows to overwrite os.Exit in tests.
var osExitFn = os.Exit

// main is the main function of flentreport.
func main() {
	var options Options
	rootCmd := &cobra.Command{
		Use:     "flentreport",
		Short:   "flentreport summarizes flent benchmark results as CSV",
		Args:    cobra.NoArgs,
		Version: version.Version,
	}
	rootCmd.SetVersionTemplate("{{ .Version }}\n")
	flags := rootCmd.PersistentFlags()

	flags.StringVar(
		&options.ResultPath,
		"result-path",
		"",
		"path where *.flent result files are stored (mandatory)",
	)

	flags.StringVar(
		&options.ReportCSV,
		"report-csv",
		"",
		"name of the CSV file for the report (defaults to <result-path>/flent_report.csv)",
	)

	flags.StringVar(
		&options.TarCommand,
		"tar-command",
		"",
		"command line used to unpack result bundles (defaults to the system tar)",
	)

	flags.BoolVarP(
		&options.Verbose,
		"verbose",
		"v",
		false,
		"emit debug messages",
	)

	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		mainWithOptions(&options)
	}
	if err := rootCmd.Execute(); err != nil {
		osExitFn(1)
	}
}

// mainWithOptions runs the report pipeline with the given options.
func mainWithOptions(options *Options) {
	logger := &log.Logger{Level: log.InfoLevel, Handler: &logHandler{Writer: os.Stderr}}
	if options.Verbose {
		logger.Level = log.DebugLevel
	}
	log.Log = logger

	if options.ResultPath == "" {
		logger.Warn("missing mandatory --result-path option")
		osExitFn(1)
		return
	}
	if !fsx.DirectoryExists(options.ResultPath) {
		logger.Warnf("result path %s does not exist or is not a directory", options.ResultPath)
		osExitFn(1)
		return
	}
	if options.ReportCSV == "" {
		options.ReportCSV = filepath.Join(options.ResultPath, "flent_report.csv")
		logger.Warnf("no --report-csv specified, using %s", options.ReportCSV)
	}

	records, err := flentreport.LoadResultsDir(logger, options.ResultPath, options.TarCommand)
	if err != nil {
		logger.Warnf("cannot load flent results: %s", err.Error())
		osExitFn(1)
		return
	}
	kpis, err := flentreport.ExtractKPIs(logger, records)
	if err != nil {
		osExitFn(1)
		return
	}
	report := flentreport.NewReport(kpis)
	if err := flentreport.WriteCSV(logger, report, options.ReportCSV); err != nil {
		osExitFn(1)
		return
	}
}
