package flentreport

import (
	"testing"

	"github.com/flentkit/flentreport/internal/model"
	"github.com/google/go-cmp/cmp"
)

// newKPIForSorting creates a KPI with the given sort key fields.
func newKPIForSorting(backend, driver, testType string, msize int64, round string) *model.KPI {
	bw := 100.0
	return &model.KPI{
		Backend: backend,
		Driver:  driver,
		Format:  "raw",
		Type:    testType,
		MSize:   &msize,
		Round:   round,
		BW:      &bw,
	}
}

func TestSortKPIs(t *testing.T) {
	expect := []*model.KPI{
		newKPIForSorting("kvm", "ide", "tcp_down", 64, "1"),
		newKPIForSorting("kvm", "ide", "tcp_up", 64, "1"),
		newKPIForSorting("kvm", "ide", "tcp_up", 64, "2"),
		newKPIForSorting("kvm", "ide", "tcp_up", 128, "1"),
		newKPIForSorting("kvm", "scsi", "tcp_up", 64, "1"),
		newKPIForSorting("xen", "ide", "tcp_up", 64, "1"),
	}

	t.Run("sorts by the six-key tuple", func(t *testing.T) {
		inputs := []*model.KPI{
			expect[5], expect[2], expect[0], expect[4], expect[3], expect[1],
		}
		outputs := SortKPIs(inputs)
		if diff := cmp.Diff(expect, outputs); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("ordering does not depend on the input permutation", func(t *testing.T) {
		first := SortKPIs([]*model.KPI{
			expect[1], expect[0], expect[3], expect[2], expect[5], expect[4],
		})
		second := SortKPIs([]*model.KPI{
			expect[4], expect[5], expect[0], expect[1], expect[2], expect[3],
		})
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		inputs := []*model.KPI{expect[3], expect[0]}
		_ = SortKPIs(inputs)
		if inputs[0] != expect[3] || inputs[1] != expect[0] {
			t.Fatal("the input slice was reordered")
		}
	})

	t.Run("message sizes compare numerically", func(t *testing.T) {
		small := newKPIForSorting("kvm", "ide", "tcp_up", 9, "1")
		large := newKPIForSorting("kvm", "ide", "tcp_up", 100, "1")
		outputs := SortKPIs([]*model.KPI{large, small})
		if outputs[0] != small || outputs[1] != large {
			t.Fatal("unexpected numeric ordering")
		}
	})

	t.Run("an absent message size sorts last", func(t *testing.T) {
		absent := model.NewKPI()
		absent.Backend = "kvm"
		absent.Driver = "ide"
		absent.Type = "tcp_up"
		present := newKPIForSorting("kvm", "ide", "tcp_up", 1024, "1")
		outputs := SortKPIs([]*model.KPI{absent, present})
		if outputs[0] != present || outputs[1] != absent {
			t.Fatal("unexpected ordering with absent message size")
		}
	})
}
