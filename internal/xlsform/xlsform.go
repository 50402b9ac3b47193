package xlsform

// Item is an ordered chunk of output produced while lowering one question,
// section, or checklist: the survey rows it contributes plus any new
// choice rows. Lowering builds an XLSForm by appending Items in a fixed,
// guaranteed order.
type Item struct {
	Records []Record
	Choices []Choice
}

// Append adds other's records and choices after i's own, preserving order.
func (i *Item) Append(other Item) {
	i.Records = append(i.Records, other.Records...)
	i.Choices = append(i.Choices, other.Choices...)
}

// AddRecord appends a single survey record.
func (i *Item) AddRecord(r Record) {
	i.Records = append(i.Records, r)
}

// AddChoice appends a single choice row.
func (i *Item) AddChoice(c Choice) {
	i.Choices = append(i.Choices, c)
}

// XLSForm is the compiled workbook: the triple (survey records, choices,
// settings) that make up the three sheets.
type XLSForm struct {
	Survey   []Record
	Choices  []Choice
	Settings Settings
}
