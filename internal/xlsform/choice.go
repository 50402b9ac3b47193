package xlsform

// ChoicesColumns is the exact, fixed column order of the choices sheet.
var ChoicesColumns = []string{"label", "list_name", "name", "county", "sub_county", "ward"}

// Choice is one row of the choices sheet. County/SubCounty/Ward are only
// populated for the cascading-select hierarchy lists (counties,
// sub_counties, wards, facilities).
type Choice struct {
	Label     string
	ListName  string
	Name      string
	County    string
	SubCounty string
	Ward      string
}

// Cells returns the row's cell values in ChoicesColumns order.
func (c Choice) Cells() []string {
	return []string{c.Label, c.ListName, c.Name, c.County, c.SubCounty, c.Ward}
}
