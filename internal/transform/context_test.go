package transform

import "testing"

// pad widens a short test row to the grid width.
func pad(cells ...string) []string {
	row := make([]string, 22)
	copy(row, cells)
	return row
}

func TestAnnotateContextForwardFill(t *testing.T) {
	grid := [][]string{
		pad("令和5年度"),
		pad("氏名", "山田太郎", "コード", "001"),
		pad("3月1日", "8:00"),
		pad("3月2日", "8:15"),
		pad("氏名", "佐藤花子", "コード", "002"),
		pad("3月1日", "9:00"),
	}

	rows := AnnotateContext(grid)
	if len(rows) != len(grid) {
		t.Fatalf("annotation changed row count: %d", len(rows))
	}

	// Declarations apply to their own row and everything below.
	for i := 0; i < len(rows); i++ {
		if rows[i].Ctx.eraYear != 5 {
			t.Errorf("row %d eraYear = %d, expected 5", i, rows[i].Ctx.eraYear)
		}
	}

	for i := 1; i <= 3; i++ {
		if rows[i].Ctx.driverName != "山田太郎" || rows[i].Ctx.driverCode != "001" {
			t.Errorf("row %d carries (%q, %q), expected (山田太郎, 001)",
				i, rows[i].Ctx.driverName, rows[i].Ctx.driverCode)
		}
	}

	// New declaration overwrites for its row onward, never backward.
	for i := 4; i <= 5; i++ {
		if rows[i].Ctx.driverName != "佐藤花子" || rows[i].Ctx.driverCode != "002" {
			t.Errorf("row %d carries (%q, %q), expected (佐藤花子, 002)",
				i, rows[i].Ctx.driverName, rows[i].Ctx.driverCode)
		}
	}
}

func TestAnnotateContextBeforeFirstDeclaration(t *testing.T) {
	grid := [][]string{
		pad("3月1日", "8:00"),
		pad("令和6年度"),
	}

	rows := AnnotateContext(grid)

	if rows[0].Ctx.eraYear != 0 || rows[0].Ctx.driverName != "" || rows[0].Ctx.driverCode != "" {
		t.Errorf("row before any declaration carries %+v, expected zero context", rows[0].Ctx)
	}
	if rows[1].Ctx.eraYear != 6 {
		t.Errorf("declaration row itself should carry the new year, got %d", rows[1].Ctx.eraYear)
	}
}

func TestAnnotateContextYearPattern(t *testing.T) {
	tests := []struct {
		text    string
		eraYear int
	}{
		{"令和5年度", 5},
		{"令和 12年度", 12},
		{"令和元年度", 0},  // no digit run, not a declaration
		{"その他のテキスト", 0},
	}

	for _, tt := range tests {
		rows := AnnotateContext([][]string{pad(tt.text)})
		if rows[0].Ctx.eraYear != tt.eraYear {
			t.Errorf("year from %q = %d, expected %d", tt.text, rows[0].Ctx.eraYear, tt.eraYear)
		}
	}
}

func TestAnnotateContextLabelPositions(t *testing.T) {
	// The name label lives in column 1, the code label in column 3; a
	// code label in the wrong column must not set anything.
	grid := [][]string{
		pad("コード", "001"),
	}
	rows := AnnotateContext(grid)
	if rows[0].Ctx.driverCode != "" {
		t.Errorf("code label in column 1 set code %q, expected empty", rows[0].Ctx.driverCode)
	}
}
