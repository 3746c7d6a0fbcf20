package flentreport

//
// Formatter/sink: tabular report -> CSV file
//

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/flentkit/flentreport/internal/model"
	"github.com/flentkit/flentreport/internal/runtimex"
)

// FormatCSV serializes the report to CSV text. Rows are sorted with
// [SortKPIs], renumbered contiguously from zero in a leading unlabeled
// index column, and bandwidth values are rounded to 4 decimal places.
func FormatCSV(report *Report) string {
	rows := SortKPIs(report.Rows)
	builder := &strings.Builder{}
	writer := csv.NewWriter(builder)
	runtimex.Try0(writer.Write(append([]string{""}, report.Columns...)))
	for idx, kpi := range rows {
		runtimex.Try0(writer.Write([]string{
			strconv.Itoa(idx),
			kpi.Backend,
			kpi.Driver,
			kpi.Format,
			kpi.Type,
			formatMSize(kpi.MSize),
			kpi.Round,
			formatBandwidth(kpi.BW),
		}))
	}
	writer.Flush()
	runtimex.PanicOnError(writer.Error(), "writer.Flush failed")
	return builder.String()
}

// formatMSize renders a message size cell.
func formatMSize(msize *int64) string {
	if msize == nil {
		return model.MissingValue
	}
	return strconv.FormatInt(*msize, 10)
}

// formatBandwidth renders a bandwidth cell rounded to 4 decimal places.
func formatBandwidth(bw *float64) string {
	if bw == nil {
		return model.MissingValue
	}
	rounded := math.Round(*bw*1e4) / 1e4
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// WriteCSV serializes the report and writes it to filename, fully
// overwriting any previous content. A write failure is logged and
// returned to the caller.
func WriteCSV(logger model.Logger, report *Report, filename string) error {
	logger = model.ValidLoggerOrDefault(logger)
	logger.Infof("dumping report into csv file %s", filename)
	if err := os.WriteFile(filename, []byte(FormatCSV(report)), 0600); err != nil {
		logger.Warnf("cannot write csv file: %s", err.Error())
		return err
	}
	logger.Info("finished")
	return nil
}
