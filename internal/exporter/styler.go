package exporter

import (
	"github.com/xuri/excelize/v2"
)

// Number formats the workbook depends on. "[h]:mm" keeps duration cells
// summable past 24 hours; the standard time formats would wrap.
const (
	durationNumFmt = "[h]:mm"
	dateNumFmt     = "yyyy/m/d"
)

// Styler handles Excel styling
type Styler struct {
	File *excelize.File

	// Pre-defined styles
	HeaderStyle   int
	DateStyle     int
	DurationStyle int
	TextStyle     int
	TotalStyle    int
	MetricStyle   int
}

// NewStyler creates a new Styler and explicitly registers styles
func NewStyler(f *excelize.File) (*Styler, error) {
	s := &Styler{File: f}
	var err error

	// Header Style: Bold, Gray Background, Center Aligned
	s.HeaderStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#000000"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    createBorder(),
	})
	if err != nil {
		return nil, err
	}

	// Date Style: yyyy/m/d so 2023/3/5 reads as a date, not a serial
	dateFmt := dateNumFmt
	s.DateStyle, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &dateFmt,
		Alignment:    &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:       createBorder(),
	})
	if err != nil {
		return nil, err
	}

	// Duration Style: [h]:mm over a day-fraction serial
	durFmt := durationNumFmt
	s.DurationStyle, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &durFmt,
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:       createBorder(),
	})
	if err != nil {
		return nil, err
	}

	// Text Style: plain cells for codes, names, averages and remarks
	s.TextStyle, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    createBorder(),
	})
	if err != nil {
		return nil, err
	}

	// Total Style: bold [h]:mm for the footer totals row
	totalFmt := durationNumFmt
	s.TotalStyle, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &totalFmt,
		Fill:         excelize.Fill{Type: "pattern", Color: []string{"#F5F5F5"}, Pattern: 1},
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:       createBorder(),
	})
	if err != nil {
		return nil, err
	}

	// Metric Style: bold labels on the overview sheet
	s.MetricStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    createBorder(),
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

func createBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "D4D4D4", Style: 1},
		{Type: "top", Color: "D4D4D4", Style: 1},
		{Type: "bottom", Color: "D4D4D4", Style: 1},
		{Type: "right", Color: "D4D4D4", Style: 1},
	}
}
