// Package jsonloader decodes a facility registry export into
// internal/model.Facility records.
package jsonloader

import (
	"encoding/json"
	"fmt"
	"iter"
	"os"
	"slices"

	"github.com/savannahghi/mentorship-xls-form/internal/model"
)

// facilityRow mirrors one element of the registry export: a JSON array
// of objects with keys name, mfl_code, county, sub_county, ward.
type facilityRow struct {
	Name      string `json:"name"`
	MFLCode   string `json:"mfl_code"`
	County    string `json:"county"`
	SubCounty string `json:"sub_county"`
	Ward      string `json:"ward"`
}

// Loader reads a facility registry export from Path.
type Loader struct {
	Path string
}

// LoadFacilities satisfies loader.FacilityLoader.
func (l Loader) LoadFacilities() (iter.Seq[model.Facility], error) {
	return Load(l.Path)
}

// Load reads path and decodes it into a facility sequence, in the
// order the export lists them.
func Load(path string) (iter.Seq[model.Facility], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var rows []facilityRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	facilities := make([]model.Facility, len(rows))
	for i, r := range rows {
		facilities[i] = model.Facility{
			Name:      r.Name,
			MFLCode:   r.MFLCode,
			County:    r.County,
			SubCounty: r.SubCounty,
			Ward:      r.Ward,
		}
	}
	return slices.Values(facilities), nil
}
