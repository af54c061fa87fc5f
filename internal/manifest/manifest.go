package manifest

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/vjovkovs/ttsprep/internal/model"
)

// Columns is the fixed manifest header, in output order.
var Columns = []string{"folder", "rel_path", "full_path", "duration_sec", "bucket"}

// Write saves the selected clips as a comma-separated manifest.
// Durations are rounded to three decimal places.
func Write(path string, clips []model.Clip) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return err
	}
	for _, c := range clips {
		dur := math.Round(c.Duration*1000) / 1000
		rec := []string{
			c.Folder,
			c.RelPath,
			c.Path,
			strconv.FormatFloat(dur, 'f', -1, 64),
			c.Bucket,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// Entry is one manifest row as consumed by the copy utility. Only the
// path columns are required; anything else in the file is ignored.
type Entry struct {
	RelPath  string
	FullPath string
}

// Read loads a manifest with the given field separator. A manifest
// without rel_path and full_path columns is rejected.
func Read(path string, sep rune) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()
	return Parse(f, sep)
}

// Parse reads manifest entries from r. See Read.
func Parse(r io.Reader, sep rune) ([]Entry, error) {
	cr := csv.NewReader(r)
	if sep != 0 {
		cr.Comma = sep
	}
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read manifest header: %w", err)
	}
	relIdx, fullIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "rel_path":
			relIdx = i
		case "full_path":
			fullIdx = i
		}
	}
	if relIdx < 0 || fullIdx < 0 {
		return nil, fmt.Errorf("manifest is missing required columns: rel_path, full_path")
	}

	var entries []Entry
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read manifest row: %w", err)
		}
		if relIdx >= len(rec) || fullIdx >= len(rec) {
			continue
		}
		entries = append(entries, Entry{
			RelPath:  strings.TrimSpace(rec[relIdx]),
			FullPath: strings.TrimSpace(rec[fullIdx]),
		})
	}
	return entries, nil
}
