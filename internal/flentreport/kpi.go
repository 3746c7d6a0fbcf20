package flentreport

//
// KPI extractor: raw records -> KPI records
//

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/flentkit/flentreport/internal/model"
)

// Series names and units we recognize inside metadata.SERIES_META.
const (
	// icmpPingSeries is the latency series, which is not part of
	// the KPI schema and is always skipped.
	icmpPingSeries = "Ping (ms) ICMP"

	// tcpUploadSeries is the upload throughput series.
	tcpUploadSeries = "TCP upload"

	// tcpDownloadSeries is the download throughput series.
	tcpDownloadSeries = "TCP download"

	// bandwidthUnit is the only unit in which the harness reports
	// bandwidth. Anything else is a data contract violation.
	bandwidthUnit = "Mbits/s"
)

// testTypeRegexp matches the test type token that follows the -t flag
// inside the flent command line recorded by the harness.
var testTypeRegexp = regexp.MustCompile(`\s-t\s(.*?)\s`)

// Errors returned by the KPI extractor.
var (
	// ErrNoSeriesMeta means the record lacks a metadata.SERIES_META mapping.
	ErrNoSeriesMeta = errors.New("flentreport: missing metadata.SERIES_META")

	// ErrInvalidSeries means a series entry has a missing or mistyped field.
	ErrInvalidSeries = errors.New("flentreport: invalid series metadata")

	// ErrNoTestType means we cannot find the test type inside COMMAND.
	ErrNoTestType = errors.New("flentreport: no test type in COMMAND")

	// ErrInvalidBandwidthUnit means the series does not report bandwidth
	// in Mbits/s.
	ErrInvalidBandwidthUnit = errors.New(`flentreport: bandwidth unit is not "Mbits/s"`)
)

// ExtractKPIs derives one KPI record per raw record. A single record
// that fails extraction aborts the whole batch: we log the failure and
// return a nil slice along with the record's error, so that no partial
// report is produced from inputs we could not fully understand.
func ExtractKPIs(logger model.Logger, records []model.RawRecord) ([]*model.KPI, error) {
	logger = model.ValidLoggerOrDefault(logger)
	kpis := []*model.KPI{}
	for _, record := range records {
		kpi, err := ExtractKPI(record)
		if err != nil {
			logger.Warnf("cannot extract performance KPIs: %s", err.Error())
			return nil, err
		}
		kpis = append(kpis, kpi)
	}
	return kpis, nil
}

// ExtractKPI derives the KPI record for a single raw record.
//
// We walk the named series in metadata.SERIES_META, skip the ICMP
// latency series, and, for the TCP upload and TCP download series,
// derive the test type from the recorded command line, validate the
// bandwidth unit, and take MEAN_VALUE and SEND_SIZE. When both TCP
// series are present the one processed last wins. Contextual fields
// that nothing populates keep the [model.MissingValue] sentinel.
//
// We walk series names in lexicographic order: the JSON document order
// the harness uses is lost when parsing into a map, and a fixed order
// keeps extraction deterministic across runs.
func ExtractKPI(record model.RawRecord) (*model.KPI, error) {
	series, err := seriesMeta(record)
	if err != nil {
		return nil, err
	}
	kpi := model.NewKPI()
	for _, name := range sortedSeriesNames(series) {
		if name == icmpPingSeries {
			continue
		}
		if name != tcpUploadSeries && name != tcpDownloadSeries {
			continue
		}
		entry, good := series[name].(map[string]any)
		if !good {
			return nil, fmt.Errorf("%w: %s is not a mapping", ErrInvalidSeries, name)
		}

		// Test type
		command, err := seriesString(entry, "COMMAND")
		if err != nil {
			return nil, err
		}
		match := testTypeRegexp.FindStringSubmatch(command)
		if match == nil {
			return nil, fmt.Errorf("%w: %q", ErrNoTestType, command)
		}
		kpi.Type = match[1]

		// Bandwidth in Mbits/s
		units, err := seriesString(entry, "UNITS")
		if err != nil {
			return nil, err
		}
		if units != bandwidthUnit {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidBandwidthUnit, units)
		}
		bw, err := seriesNumber(entry, "MEAN_VALUE")
		if err != nil {
			return nil, err
		}
		kpi.BW = &bw

		// Message size: SEND_SIZE is a byte count and we divide it
		// by 1024 using integer division. The report column calls
		// this Kbits; keep the arithmetic as is for compatibility.
		sendSize, err := seriesNumber(entry, "SEND_SIZE")
		if err != nil {
			return nil, err
		}
		msize := int64(sendSize) / 1024
		kpi.MSize = &msize
	}
	return kpi, nil
}

// seriesMeta returns the metadata.SERIES_META mapping of the record.
func seriesMeta(record model.RawRecord) (map[string]any, error) {
	metadata, good := record["metadata"].(map[string]any)
	if !good {
		return nil, ErrNoSeriesMeta
	}
	series, good := metadata["SERIES_META"].(map[string]any)
	if !good {
		return nil, ErrNoSeriesMeta
	}
	return series, nil
}

// sortedSeriesNames returns the series names in lexicographic order.
func sortedSeriesNames(series map[string]any) []string {
	names := []string{}
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// seriesString returns the given string field of a series entry.
func seriesString(entry map[string]any, key string) (string, error) {
	value, good := entry[key].(string)
	if !good {
		return "", fmt.Errorf("%w: %s is missing or not a string", ErrInvalidSeries, key)
	}
	return value, nil
}

// seriesNumber returns the given numeric field of a series entry.
func seriesNumber(entry map[string]any, key string) (float64, error) {
	value, good := entry[key].(float64)
	if !good {
		return 0, fmt.Errorf("%w: %s is missing or not a number", ErrInvalidSeries, key)
	}
	return value, nil
}
