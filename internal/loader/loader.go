// Package loader declares the input contracts lowering depends on: a
// checklist tree and a facility sequence, each produced by a concrete,
// swappable implementation (internal/loader/excelloader,
// internal/loader/jsonloader).
package loader

import (
	"iter"

	"github.com/savannahghi/mentorship-xls-form/internal/model"
)

// ChecklistLoader produces a valid checklist tree from some external
// authoring source.
type ChecklistLoader interface {
	LoadChecklist() (*model.Checklist, error)
}

// FacilityLoader produces a sequence of facility records.
type FacilityLoader interface {
	LoadFacilities() (iter.Seq[model.Facility], error)
}
