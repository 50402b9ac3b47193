package writer

import "github.com/xuri/excelize/v2"

// styler registers the small set of cell styles the compiled workbook
// uses: a bold header row per sheet and a default body style.
type styler struct {
	headerStyle  int
	defaultStyle int
}

func newStyler(f *excelize.File) (*styler, error) {
	s := &styler{}
	var err error

	s.headerStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border(),
	})
	if err != nil {
		return nil, err
	}

	s.defaultStyle, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    border(),
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

func border() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "D4D4D4", Style: 1},
		{Type: "top", Color: "D4D4D4", Style: 1},
		{Type: "right", Color: "D4D4D4", Style: 1},
		{Type: "bottom", Color: "D4D4D4", Style: 1},
	}
}
