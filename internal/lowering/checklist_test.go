package lowering

import (
	"slices"
	"testing"

	"github.com/savannahghi/mentorship-xls-form/internal/model"
	"github.com/savannahghi/mentorship-xls-form/internal/xlsform"
)

func sampleChecklist() *model.Checklist {
	questions := model.NewOrderedMap[*model.Question]()
	questions.Set("CL1_S1_Q1", &model.Question{ID: "CL1_S1_Q1", Label: "x", Kind: model.BOOL, ScoringRule: "If Y = Red"})
	sections := model.NewOrderedMap[*model.Section]()
	sections.Set("CL1_S1", &model.Section{ID: "CL1_S1", Title: "Section one", Questions: questions})
	return &model.Checklist{ID: "CL1", Name: "Sample Checklist", Sections: sections}
}

func sampleFacilities() []model.Facility {
	return []model.Facility{
		{Name: "Kisii Level 4", MFLCode: "10234", County: "Kisii", SubCounty: "Kisii Central", Ward: "Keumbu"},
		{Name: "Nyamira Hospital", MFLCode: "10567", County: "Nyamira", SubCounty: "Nyamira North", Ward: "Bonyamatuta"},
		{Name: "Kisii Annex", MFLCode: "10890", County: "Kisii", SubCounty: "Kisii Central", Ward: "Keumbu"},
	}
}

func TestCompileRecordNamesAreUnique(t *testing.T) {
	form, err := Compile(sampleChecklist(), slices.Values(sampleFacilities()))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	seen := make(map[string]bool)
	for _, r := range form.Survey {
		if r.Name == "" {
			continue
		}
		if seen[r.Name] {
			t.Fatalf("duplicate survey record name %q", r.Name)
		}
		seen[r.Name] = true
	}
}

func TestCompileChoicesOrderCountiesBeforeSubCountiesBeforeWards(t *testing.T) {
	form, err := Compile(sampleChecklist(), slices.Values(sampleFacilities()))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	lastCounty, firstSubCounty, lastSubCounty, firstWard := -1, -1, -1, -1
	for i, c := range form.Choices {
		switch c.ListName {
		case listCounties:
			lastCounty = i
		case listSubCounties:
			if firstSubCounty == -1 {
				firstSubCounty = i
			}
			lastSubCounty = i
		case listWards:
			if firstWard == -1 {
				firstWard = i
			}
		}
	}
	if !(lastCounty < firstSubCounty && lastSubCounty < firstWard) {
		t.Fatalf("expected counties < sub_counties < wards, got lastCounty=%d firstSubCounty=%d lastSubCounty=%d firstWard=%d",
			lastCounty, firstSubCounty, lastSubCounty, firstWard)
	}
}

func TestCompileDefaultChoiceRowsPresent(t *testing.T) {
	form, err := Compile(sampleChecklist(), slices.Values(sampleFacilities()))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	wantNames := map[string]bool{"red": false, "yellow": false, "green": false, "gray": false}
	for _, c := range form.Choices {
		if c.ListName == listCeeScore {
			if _, ok := wantNames[c.Name]; ok {
				wantNames[c.Name] = true
			}
		}
	}
	for name, found := range wantNames {
		if !found {
			t.Errorf("missing cee_score choice %q", name)
		}
	}
}

func TestCompileFacilitiesDeduplicateOrgUnits(t *testing.T) {
	form, err := Compile(sampleChecklist(), slices.Values(sampleFacilities()))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	countyCount := 0
	for _, c := range form.Choices {
		if c.ListName == listCounties {
			countyCount++
		}
	}
	if countyCount != 2 {
		t.Fatalf("got %d county rows, want 2 (Kisii and Nyamira deduplicated)", countyCount)
	}
}

func TestCompileFacilityChoiceNameIsMFLCode(t *testing.T) {
	form, err := Compile(sampleChecklist(), slices.Values(sampleFacilities()))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var found bool
	for _, c := range form.Choices {
		if c.ListName == listFacilities && c.Name == "10234" {
			found = true
			if c.Label != "Kisii Level 4" {
				t.Errorf("got label %q, want %q", c.Label, "Kisii Level 4")
			}
		}
	}
	if !found {
		t.Fatal("expected a facilities choice row named 10234")
	}
}

func TestCompileSettings(t *testing.T) {
	form, err := Compile(sampleChecklist(), slices.Values(sampleFacilities()))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	want := xlsform.Settings{
		FormID: "CL1", FormTitle: "Sample Checklist",
		DefaultLanguage: "English (en)", Style: "pages", Version: "1.0.0",
	}
	if form.Settings != want {
		t.Errorf("got %+v, want %+v", form.Settings, want)
	}
}
