package flentreport

//
// Loader: results directory -> raw records
//

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/flentkit/flentreport/internal/fsx"
	"github.com/flentkit/flentreport/internal/model"
	"github.com/flentkit/flentreport/internal/tarx"
)

// Suffixes recognized by the loader.
const (
	// resultSuffix is the suffix of a plain result file.
	resultSuffix = ".flent"

	// bundleSuffix is the suffix of an archived bundle containing
	// a single result file with the same base name.
	bundleSuffix = ".tar.gz"
)

// LoadResultsDir scans dir and returns the raw records parsed from the
// result files it contains, preserving the directory listing order.
//
// Entries named `<name>.tar.gz` are unpacked into a scratch directory
// that is unique to this invocation and removed before returning, and
// the unpacked `<name>.flent` file is loaded in their place. The
// tarCommand argument overrides the command used for unpacking as
// documented by [tarx.Extract]; the empty string selects the default.
//
// A file that cannot be unpacked or parsed contributes no record: we
// log the failure and continue with the remaining entries. We only
// return an error when we cannot list dir or create the scratch
// directory, in which case no records are returned.
func LoadResultsDir(logger model.Logger, dir, tarCommand string) ([]model.RawRecord, error) {
	logger = model.ValidLoggerOrDefault(logger)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	scratch := ""
	defer func() {
		if scratch != "" {
			if err := os.RemoveAll(scratch); err != nil {
				logger.Warnf("cannot remove scratch directory: %s", err.Error())
			}
		}
	}()
	records := []model.RawRecord{}
	for _, entry := range entries {
		filename := filepath.Join(dir, entry.Name())
		if strings.HasSuffix(entry.Name(), bundleSuffix) && fsx.IsRegularFile(filename) {
			if scratch == "" {
				scratch, err = os.MkdirTemp("", "flentreport")
				if err != nil {
					return nil, err
				}
			}
			if err := tarx.Extract(logger, tarCommand, filename, scratch); err != nil {
				logger.Warnf("cannot unpack bundle %s: %s", filename, err.Error())
				continue
			}
			unpacked := strings.TrimSuffix(entry.Name(), bundleSuffix) + resultSuffix
			filename = filepath.Join(scratch, unpacked)
		}
		if !strings.HasSuffix(filename, resultSuffix) || !fsx.IsRegularFile(filename) {
			logger.Debugf("ignoring %s", filename)
			continue
		}
		record, err := loadResultFile(filename)
		if err != nil {
			logger.Warnf("cannot parse result file %s: %s", filename, err.Error())
			continue
		}
		logger.Debugf("loaded %s", filename)
		records = append(records, record)
	}
	return records, nil
}

// loadResultFile opens and parses a single result file.
func loadResultFile(filename string) (model.RawRecord, error) {
	file, err := fsx.OpenFile(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var record model.RawRecord
	if err := json.NewDecoder(file).Decode(&record); err != nil {
		return nil, err
	}
	return record, nil
}
