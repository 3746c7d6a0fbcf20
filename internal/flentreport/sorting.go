package flentreport

//
// Deterministic report ordering
//

import (
	"math"
	"sort"

	"github.com/flentkit/flentreport/internal/model"
)

// SortKPIs sorts and returns a copy of the KPI records so that the
// final report ordering does not depend on the directory listing order
// in which the loader discovered the results.
func SortKPIs(inputs []*model.KPI) (outputs []*model.KPI) {
	// copy the original slice
	outputs = append(outputs, inputs...)

	// sort by the six-key tuple excluding bandwidth
	sort.SliceStable(outputs, func(i, j int) bool {
		left, right := outputs[i], outputs[j]

		if left.Backend < right.Backend {
			return true
		}
		if left.Backend > right.Backend {
			return false
		}

		if left.Driver < right.Driver {
			return true
		}
		if left.Driver > right.Driver {
			return false
		}

		if left.Format < right.Format {
			return true
		}
		if left.Format > right.Format {
			return false
		}

		if left.Type < right.Type {
			return true
		}
		if left.Type > right.Type {
			return false
		}

		// message sizes compare numerically and absent sizes sort last
		leftSize, rightSize := msizeSortKey(left.MSize), msizeSortKey(right.MSize)
		if leftSize < rightSize {
			return true
		}
		if leftSize > rightSize {
			return false
		}

		return left.Round < right.Round
	})

	return
}

// msizeSortKey maps an absent message size after any real size.
func msizeSortKey(msize *int64) int64 {
	if msize == nil {
		return math.MaxInt64
	}
	return *msize
}
