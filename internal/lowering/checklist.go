package lowering

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/savannahghi/mentorship-xls-form/internal/model"
	"github.com/savannahghi/mentorship-xls-form/internal/slug"
	"github.com/savannahghi/mentorship-xls-form/internal/xlsform"
)

// orgUnit lists in the choices sheet.
const (
	listCounties    = "counties"
	listSubCounties = "sub_counties"
	listWards       = "wards"
	listFacilities  = "facilities"
	listCeeScore    = "cee_score"
	listYesNo       = "yes_no"
)

// Compile lowers a checklist and its facility registry into a complete
// XLSForm value: the fixed cover sheet plus every section's lowered
// records on the survey sheet, the default/section/org-unit choice rows
// on the choices sheet, and a single-row settings sheet.
func Compile(c *model.Checklist, facilities iter.Seq[model.Facility]) (*xlsform.XLSForm, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	form := &xlsform.XLSForm{
		Settings: Settings(c),
	}

	form.Survey = append(form.Survey, coverSheetRecords()...)

	var sectionChoices []xlsform.Choice
	for _, key := range c.Sections.Keys() {
		s, _ := c.Sections.Get(key)
		item, err := LowerSection(s)
		if err != nil {
			return nil, err
		}
		form.Survey = append(form.Survey, item.Records...)
		sectionChoices = append(sectionChoices, item.Choices...)
	}

	orgUnits, facilityRows := lowerFacilities(facilities)

	form.Choices = append(form.Choices, orgUnits.counties()...)
	form.Choices = append(form.Choices, orgUnits.subCounties()...)
	form.Choices = append(form.Choices, orgUnits.wards()...)
	form.Choices = append(form.Choices, defaultChoiceRows()...)
	form.Choices = append(form.Choices, sectionChoices...)
	form.Choices = append(form.Choices, facilityRows...)

	return form, nil
}

// Settings builds the single-row settings sheet for checklist c.
func Settings(c *model.Checklist) xlsform.Settings {
	return xlsform.Settings{
		FormID:          c.ID,
		FormTitle:       markdownEscape(c.Name),
		DefaultLanguage: "English (en)",
		Style:           "pages",
		Version:         "1.0.0",
	}
}

// markdownEscape backslash-escapes the Markdown metacharacters Enketo's
// form_title renderer would otherwise interpret as formatting.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, `*`, `\*`, `_`, `\_`, "`", "\\`", `#`, `\#`, `[`, `\[`, `]`, `\]`,
)

func markdownEscape(s string) string {
	return markdownEscaper.Replace(s)
}

// coverSheetRecords builds the fixed records preceding every section:
// assessor identity, the county/sub_county/ward/facility cascading
// select chain, an MFL-code display note, and the assessment metadata
// fields.
func coverSheetRecords() []xlsform.Record {
	return []xlsform.Record{
		{
			Type:  xlsform.TypeText,
			Label: "Name of assessor",
			Name:  "ASSESSOR_NAME",
		},
		{
			Type:  xlsform.SelectOne(listCounties),
			Label: "County",
			Name:  "COUNTY",
		},
		{
			Type:         xlsform.SelectOne(listSubCounties),
			Label:        "Sub-county",
			Name:         "SUB_COUNTY",
			ChoiceFilter: "county=${COUNTY}",
		},
		{
			Type:         xlsform.SelectOne(listWards),
			Label:        "Ward",
			Name:         "WARD",
			ChoiceFilter: "county=${COUNTY} and sub_county=${SUB_COUNTY}",
		},
		{
			Type:         xlsform.SelectOne(listFacilities),
			Label:        "Facility",
			Name:         "FACILITY",
			ChoiceFilter: "county=${COUNTY} and sub_county=${SUB_COUNTY} and ward=${WARD}",
		},
		{
			Type: xlsform.TypeNote,
			Name: "MFL_CODE_DISPLAY",
			Hint: "MFL code: ${FACILITY}",
		},
		{
			Type:  xlsform.TypeDate,
			Label: "Assessment date",
			Name:  "ASSESSMENT_DATE",
		},
		{
			Type:  xlsform.TypeTime,
			Label: "Assessment time",
			Name:  "ASSESSMENT_TIME",
		},
		{
			Type: xlsform.TypeGeopoint,
			Name: "GEOLOCATION",
		},
	}
}

// cssColor maps a Score literal to the colour the rendered HTML span uses.
var cssColor = map[string]string{
	"red":    "red",
	"yellow": "#d4ac0d",
	"green":  "green",
	"gray":   "gray",
}

// defaultChoiceRows builds the six fixed choice rows every compiled form
// carries regardless of checklist content: the four cee_score colours
// (rendered with an inline coloured span so Enketo/Kobo display the
// threshold result as a swatch, not plain text) plus yes/no.
func defaultChoiceRows() []xlsform.Choice {
	colorNames := []string{"red", "yellow", "green", "gray"}
	rows := make([]xlsform.Choice, 0, len(colorNames)+2)
	for _, name := range colorNames {
		label := fmt.Sprintf(`<span style="color:%s">%s</span>`, cssColor[name], capitalize(name))
		rows = append(rows, xlsform.Choice{Label: label, ListName: listCeeScore, Name: name})
	}
	rows = append(rows,
		xlsform.Choice{Label: "Yes", ListName: listYesNo, Name: "yes"},
		xlsform.Choice{Label: "No", ListName: listYesNo, Name: "no"},
	)
	return rows
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// orgUnitSet deduplicates a facility registry's free-text county/
// sub-county/ward names into the three cascading-select lists, keyed by
// their slugged choice name so that repeated facilities in the same ward
// contribute only one row per level.
type orgUnitSet struct {
	county    map[string]string // slug -> label
	subCounty map[string]struct{ label, countySlug string }
	ward      map[string]struct{ label, countySlug, subCountySlug string }
}

func newOrgUnitSet() *orgUnitSet {
	return &orgUnitSet{
		county:    make(map[string]string),
		subCounty: make(map[string]struct{ label, countySlug string }),
		ward:      make(map[string]struct{ label, countySlug, subCountySlug string }),
	}
}

func (o *orgUnitSet) add(f model.Facility) {
	countySlug := slug.Slug(f.County)
	subCountySlug := slug.Slug(f.SubCounty)
	wardSlug := slug.Slug(f.Ward)

	o.county[countySlug] = f.County
	o.subCounty[subCountySlug] = struct{ label, countySlug string }{f.SubCounty, countySlug}
	o.ward[wardSlug] = struct {
		label, countySlug, subCountySlug string
	}{f.Ward, countySlug, subCountySlug}
}

func (o *orgUnitSet) counties() []xlsform.Choice {
	rows := make([]xlsform.Choice, 0, len(o.county))
	for name, label := range o.county {
		rows = append(rows, xlsform.Choice{Label: label, ListName: listCounties, Name: name})
	}
	sortByLabel(rows)
	return rows
}

func (o *orgUnitSet) subCounties() []xlsform.Choice {
	rows := make([]xlsform.Choice, 0, len(o.subCounty))
	for name, v := range o.subCounty {
		rows = append(rows, xlsform.Choice{Label: v.label, ListName: listSubCounties, Name: name, County: v.countySlug})
	}
	sortByLabel(rows)
	return rows
}

func (o *orgUnitSet) wards() []xlsform.Choice {
	rows := make([]xlsform.Choice, 0, len(o.ward))
	for name, v := range o.ward {
		rows = append(rows, xlsform.Choice{
			Label: v.label, ListName: listWards, Name: name,
			County: v.countySlug, SubCounty: v.subCountySlug,
		})
	}
	sortByLabel(rows)
	return rows
}

func sortByLabel(rows []xlsform.Choice) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].Label < rows[j].Label })
}

// lowerFacilities consumes the facility sequence once, building the
// deduplicated org-unit sets and one choices-sheet row per facility. The
// facility's MFL code is its choice name: it is the registry's stable key
// and lets the MFL-code display note simply read back ${FACILITY}.
func lowerFacilities(facilities iter.Seq[model.Facility]) (*orgUnitSet, []xlsform.Choice) {
	units := newOrgUnitSet()
	var rows []xlsform.Choice
	for f := range facilities {
		units.add(f)
		rows = append(rows, xlsform.Choice{
			Label:     f.Name,
			ListName:  listFacilities,
			Name:      f.MFLCode,
			County:    slug.Slug(f.County),
			SubCounty: slug.Slug(f.SubCounty),
			Ward:      slug.Slug(f.Ward),
		})
	}
	return units, rows
}
