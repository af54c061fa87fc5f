package report

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF emits a one-page distribution summary per dataset: totals
// plus the per-bucket count table.
func WritePDF(datasets []*Dataset, outPath string) error {
	if len(datasets) == 0 {
		return fmt.Errorf("WritePDF: no datasets provided")
	}

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetMargins(18, 18, 18)

	for _, ds := range datasets {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 8, "Dataset: "+ds.Name, "", 1, "L", false, 0, "")
		pdf.Ln(2)

		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, fmt.Sprintf("Total files: %d", ds.Total), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("Total folders: %d", len(ds.Folders)), "", 1, "L", false, 0, "")
		pdf.Ln(4)

		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(40, 7, "Bucket", "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, "Count", "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 7, "Percentage", "1", 1, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 11)
		for _, label := range ds.Buckets.Labels() {
			pdf.CellFormat(40, 7, label, "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 7, fmt.Sprintf("%d", ds.Overall[label]), "1", 0, "R", false, 0, "")
			pdf.CellFormat(35, 7, fmt.Sprintf("%.2f%%", ds.Percent(label)), "1", 1, "R", false, 0, "")
		}

		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(40, 7, "TOTAL", "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", ds.Total), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, "100.00%", "1", 1, "R", false, 0, "")
	}

	return pdf.OutputFileAndClose(outPath)
}
