package model

//
// Flent data model
//

// RawRecord is the parsed JSON document contained in a single flent
// result file. We keep the document generic because flent emits a
// deeply nested structure of which we only consume a tiny part.
type RawRecord map[string]any

// MissingValue is the sentinel for KPI fields that cannot be derived
// from a raw record. Downstream consumers of the CSV report match on
// this literal string, so it is part of the output contract.
const MissingValue = "NaN"

// KPI is the flat record of performance indicators extracted from a
// single flent result. String fields that cannot be derived contain
// MissingValue, while MSize and BW are nil when not derivable.
type KPI struct {
	// Backend is the hardware the data image is based on.
	Backend string

	// Driver is the frontend driver (e.g., SCSI or IDE).
	Driver string

	// Format is the disk format (e.g., raw or xfs).
	Format string

	// Type is the test mode identifier (e.g., "tcp_upload").
	Type string

	// MSize is the message size obtained by dividing the series
	// SEND_SIZE in bytes by 1024.
	MSize *int64

	// Round is the test iteration identifier.
	Round string

	// BW is the mean bandwidth in Mbits/s.
	BW *float64
}

// NewKPI creates a KPI where every field holds its missing value.
func NewKPI() *KPI {
	return &KPI{
		Backend: MissingValue,
		Driver:  MissingValue,
		Format:  MissingValue,
		Type:    MissingValue,
		MSize:   nil,
		Round:   MissingValue,
		BW:      nil,
	}
}
