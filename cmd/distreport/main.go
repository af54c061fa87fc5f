package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/vjovkovs/ttsprep/internal/bucket"
	"github.com/vjovkovs/ttsprep/internal/report"
)

// multiFlag collects a repeatable string flag.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("empty value")
	}
	*m = append(*m, v)
	return nil
}

func main() {
	var inputs multiFlag
	flag.Var(&inputs, "json", "Dataset structure JSON as name=path (repeatable; a bare path uses the file basename as dataset name)")
	out := flag.String("out", "audio_distribution_analysis.xlsx", "Output workbook path")
	pdfOut := flag.String("pdf", "", "Optional PDF summary output path")
	flag.Parse()

	if len(inputs) == 0 {
		log.Fatal("missing -json (at least one dataset structure JSON)")
	}

	buckets := bucket.Default()
	var datasets []*report.Dataset
	for _, in := range inputs {
		name, path := splitInput(in)
		if _, err := os.Stat(path); err != nil {
			log.Printf("[WARN] %s not found, skipping...", path)
			continue
		}
		ds, err := report.Load(name, path, buckets)
		if err != nil {
			log.Fatalf("load dataset %s: %v", name, err)
		}
		ds.LogSummary()
		datasets = append(datasets, ds)
	}
	if len(datasets) == 0 {
		log.Fatal("no readable dataset inputs")
	}

	if err := report.WriteXLSX(datasets, *out); err != nil {
		log.Fatalf("write workbook: %v", err)
	}
	log.Printf("[INFO] All data written to: %s (%d sheets)", *out, 3*len(datasets))

	if strings.TrimSpace(*pdfOut) != "" {
		if err := report.WritePDF(datasets, *pdfOut); err != nil {
			log.Fatalf("write pdf: %v", err)
		}
		log.Printf("[INFO] PDF summary written to: %s", *pdfOut)
	}
}

// splitInput parses "name=path"; a bare path falls back to the file
// basename without extension.
func splitInput(s string) (name, path string) {
	if i := strings.Index(s, "="); i > 0 {
		return s[:i], s[i+1:]
	}
	base := filepath.Base(s)
	return strings.TrimSuffix(base, filepath.Ext(base)), s
}
