package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

func main() {
	// Check which file to verify
	filename := "output/拘束時間管理表.xlsx"
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	sheetName := "拘束時間"
	if len(os.Args) > 2 {
		sheetName = os.Args[2]
	}

	f, err := excelize.OpenFile(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		log.Fatal(err)
	}

	// Banner keywords that must never survive into the data sheet
	bannerKeywords := []string{"累計拘束時間", "D2 :", "最大拘束時間", "事業所", "令和", "日付", "氏名"}

	fmt.Printf("=== WORKBOOK CHECK: %s ===\n", filename)
	fmt.Printf("Checking sheet: %s\n", sheetName)
	fmt.Printf("Total rows: %d\n\n", len(rows))

	foundLeak := false
	for i, row := range rows {
		if i == 0 {
			continue // Skip header
		}
		if len(row) == 0 {
			continue
		}

		code := strings.TrimSpace(row[0])
		if code == "合計" {
			continue // Totals footer
		}

		for _, kw := range bannerKeywords {
			if strings.Contains(code, kw) {
				fmt.Printf("❌ BANNER LEAK at row %d: '%s'\n", i+1, code)
				foundLeak = true
			}
		}

		// Column C must render as a date, not a raw serial
		if len(row) > 2 {
			dateText := strings.TrimSpace(row[2])
			if dateText != "" && !strings.Contains(dateText, "/") {
				fmt.Printf("❌ UNFORMATTED DATE at row %d: '%s'\n", i+1, dateText)
				foundLeak = true
			}
		}
	}

	if !foundLeak {
		fmt.Println("✅ No banner leakage, dates formatted.")
	}
}
