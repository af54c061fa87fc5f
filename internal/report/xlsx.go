package report

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/vjovkovs/ttsprep/internal/util"
)

// WriteXLSX writes the distribution workbook: three sheets per dataset
// (overall buckets, per-folder summary, per-folder bucket breakdown).
func WriteXLSX(datasets []*Dataset, outPath string) error {
	if len(datasets) == 0 {
		return fmt.Errorf("WriteXLSX: no datasets provided")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"366092"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	for _, ds := range datasets {
		if err := writeOverallSheet(f, ds, headerStyle, boldStyle); err != nil {
			return err
		}
		if err := writeSummarySheet(f, ds, headerStyle); err != nil {
			return err
		}
		if err := writeFolderwiseSheet(f, ds, headerStyle); err != nil {
			return err
		}
	}

	// Drop the implicit default sheet.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.SaveAs(outPath)
}

func addSheet(f *excelize.File, name string, header []any, headerStyle int) (string, error) {
	sheet := util.SheetName(name)
	if _, err := f.NewSheet(sheet); err != nil {
		return "", err
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", err
	}
	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return "", err
	}
	return sheet, f.SetCellStyle(sheet, "A1", last+"1", headerStyle)
}

func writeOverallSheet(f *excelize.File, ds *Dataset, headerStyle, boldStyle int) error {
	sheet, err := addSheet(f, ds.Name+"_overall", []any{"Bucket", "Count", "Percentage"}, headerStyle)
	if err != nil {
		return err
	}

	row := 2
	for _, label := range ds.Buckets.Labels() {
		cells := []any{label, ds.Overall[label], fmt.Sprintf("%.2f%%", ds.Percent(label))}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &cells); err != nil {
			return err
		}
		row++
	}

	total := []any{"TOTAL", ds.Total, "100.00%"}
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &total); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), boldStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "C", 15)
}

func writeSummarySheet(f *excelize.File, ds *Dataset, headerStyle int) error {
	header := []any{
		"Folder", "Total Files", "Total Duration (sec)",
		"Avg Duration (sec)", "Duration (hours)",
	}
	sheet, err := addSheet(f, ds.Name+"_summary", header, headerStyle)
	if err != nil {
		return err
	}

	row := 2
	for _, folder := range ds.SortedFolders() {
		stats := ds.Folders[folder]
		avg := 0.0
		if stats.TotalFiles > 0 {
			avg = stats.TotalDuration / float64(stats.TotalFiles)
		}
		cells := []any{
			folder,
			stats.TotalFiles,
			round2(stats.TotalDuration),
			round2(avg),
			round2(stats.TotalDuration / 3600),
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &cells); err != nil {
			return err
		}
		row++
	}

	if err := f.SetColWidth(sheet, "A", "A", 50); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "E", 18)
}

func writeFolderwiseSheet(f *excelize.File, ds *Dataset, headerStyle int) error {
	labels := ds.Buckets.Labels()
	header := []any{"Folder", "Total Files", "Total Duration (sec)"}
	for _, label := range labels {
		header = append(header, label)
	}
	sheet, err := addSheet(f, ds.Name+"_folderwise", header, headerStyle)
	if err != nil {
		return err
	}

	row := 2
	for _, folder := range ds.SortedFolders() {
		stats := ds.Folders[folder]
		cells := []any{folder, stats.TotalFiles, round2(stats.TotalDuration)}
		for _, label := range labels {
			cells = append(cells, stats.Buckets[label])
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &cells); err != nil {
			return err
		}
		row++
	}

	if err := f.SetColWidth(sheet, "A", "A", 50); err != nil {
		return err
	}
	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", last, 12)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
