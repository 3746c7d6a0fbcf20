package flentreport

//
// Report builder: KPI records -> tabular report
//

import "github.com/flentkit/flentreport/internal/model"

// reportColumns contains the display column names in their fixed order.
var reportColumns = []string{
	"Backend",
	"Driver",
	"Format",
	"Type",
	"MSize(Kbits)",
	"Round",
	"BW(Mbits/s)",
}

// Report is the tabular report assembled from KPI records. Rows keeps
// the KPI input order: sorting, rounding, and row numbering happen when
// serializing the report.
type Report struct {
	// Columns contains the display column names.
	Columns []string

	// Rows contains the KPI records backing each row.
	Rows []*model.KPI
}

// NewReport assembles the given KPI records into a report with the
// fixed seven-column schema. The input slice is copied.
func NewReport(kpis []*model.KPI) *Report {
	return &Report{
		Columns: append([]string{}, reportColumns...),
		Rows:    append([]*model.KPI{}, kpis...),
	}
}
