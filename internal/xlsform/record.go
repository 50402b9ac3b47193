// Package xlsform is the XLSForm row schema: the wire format that
// lowering produces and the writer serialises to the three-sheet
// workbook.
package xlsform

import "fmt"

// Closed vocabulary for Record.Type that takes no dynamic suffix.
const (
	TypeAcknowledge         = "acknowledge"
	TypeAudio               = "audio"
	TypeBackgroundAudio     = "background-audio"
	TypeBarcode             = "barcode"
	TypeBeginGroup          = "begin_group"
	TypeCalculate           = "calculate"
	TypeDate                = "date"
	TypeDateTime            = "dateTime"
	TypeDecimal             = "decimal"
	TypeEndGroup            = "end_group"
	TypeFile                = "file"
	TypeGeopoint            = "geopoint"
	TypeGeoshape            = "geoshape"
	TypeGeotrace            = "geotrace"
	TypeHidden              = "hidden"
	TypeImage               = "image"
	TypeInteger             = "integer"
	TypeNote                = "note"
	TypeRange               = "range"
	TypeRank                = "rank"
	TypeText                = "text"
	TypeTime                = "time"
	TypeTrigger             = "trigger"
	TypeVideo               = "video"
	TypeXMLExternal         = "xml-external"
)

// SelectOne renders the "select_one <list>" type cell.
func SelectOne(list string) string { return fmt.Sprintf("select_one %s", list) }

// SelectMultiple renders the "select_multiple <list>" type cell.
func SelectMultiple(list string) string { return fmt.Sprintf("select_multiple %s", list) }

// SelectOneFromFile renders the "select_one_from_file <file>" type cell.
func SelectOneFromFile(file string) string { return fmt.Sprintf("select_one_from_file %s", file) }

// SelectMultipleFromFile renders the "select_multiple_from_file <file>" type cell.
func SelectMultipleFromFile(file string) string {
	return fmt.Sprintf("select_multiple_from_file %s", file)
}

// SurveyColumns is the exact, fixed column order of the survey sheet.
// The writer must emit headers and cells in this order.
var SurveyColumns = []string{
	"type", "appearance", "calculation", "choice_filter", "constraint",
	"constraint_message", "default", "hint", "label", "name", "note",
	"repeat_count", "parameters", "read_only", "relevant", "required",
	"required_message", "trigger",
}

// Record is one row of the survey sheet. Type is the only required field;
// every other field serialises as an empty cell when unset, never a null
// literal.
type Record struct {
	Type              string
	Appearance        string
	Calculation       string
	ChoiceFilter      string
	Constraint        string
	ConstraintMessage string
	Default           string
	Hint              string
	Label             string
	Name              string
	Note              string
	RepeatCount       string
	Parameters        string
	ReadOnly          string
	Relevant          string
	Required          string
	RequiredMessage   string
	Trigger           string
}

// Cells returns the row's cell values in SurveyColumns order.
func (r Record) Cells() []string {
	return []string{
		r.Type, r.Appearance, r.Calculation, r.ChoiceFilter, r.Constraint,
		r.ConstraintMessage, r.Default, r.Hint, r.Label, r.Name, r.Note,
		r.RepeatCount, r.Parameters, r.ReadOnly, r.Relevant, r.Required,
		r.RequiredMessage, r.Trigger,
	}
}
