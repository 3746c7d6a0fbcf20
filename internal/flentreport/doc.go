// Package flentreport turns a directory of flent benchmark results
// into a CSV report of performance KPIs.
//
// The pipeline runs four stages in order:
//
// 1. [LoadResultsDir] scans the results directory, unpacks bundles,
// and parses each result file into a [model.RawRecord];
//
// 2. [ExtractKPIs] derives one [model.KPI] per raw record;
//
// 3. [NewReport] assembles the KPI records into a fixed-schema table;
//
// 4. [WriteCSV] sorts, rounds, serializes, and writes the table.
//
// Each stage is a pure function over the previous stage's output, so
// callers compose them explicitly and there is no shared state between
// two invocations apart from the scratch directory used for unpacking
// bundles, which is unique per invocation.
package flentreport
