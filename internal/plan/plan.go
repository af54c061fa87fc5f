package plan

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/vjovkovs/ttsprep/internal/bucket"
)

// Row is one folder entry of a sampling plan.
type Row struct {
	Folder    string
	Target    int  // post-hoc shortfall threshold, valid when HasTarget
	HasTarget bool
	Requests  map[string]int // bucket label -> requested count (> 0 only)
}

// Plan is an ordered sampling plan, one row per folder of interest.
type Plan struct {
	Rows []Row
}

// Load reads a sampling plan CSV. The folder column may be named
// "Folder" or the legacy alias "group"; per-bucket request columns are
// named "Samples <label>" after the fixed bucket labels.
func Load(path string, buckets bucket.Set) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sampling plan: %w", err)
	}
	defer f.Close()
	return Parse(f, buckets)
}

// Parse reads a sampling plan from r. See Load.
func Parse(r io.Reader, buckets bucket.Set) (*Plan, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // spreadsheet exports sometimes drop trailing blanks

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read sampling plan header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	folderIdx, ok := col["Folder"]
	if !ok {
		// legacy plans use 'group'
		folderIdx, ok = col["group"]
	}
	if !ok {
		return nil, fmt.Errorf("sampling plan must have a 'Folder' or 'group' column")
	}
	targetIdx, hasTargetCol := col["Target Samples"]

	type bucketCol struct {
		label string
		idx   int
	}
	var bucketCols []bucketCol
	for _, label := range buckets.Labels() {
		if i, ok := col["Samples "+label]; ok {
			bucketCols = append(bucketCols, bucketCol{label: label, idx: i})
		}
	}

	p := &Plan{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read sampling plan row: %w", err)
		}

		row := Row{
			Folder:   strings.TrimSpace(cell(rec, folderIdx)),
			Requests: map[string]int{},
		}
		if hasTargetCol {
			if n, ok := parseCount(cell(rec, targetIdx)); ok {
				row.Target = n
				row.HasTarget = true
			}
		}
		for _, bc := range bucketCols {
			if n, ok := parseCount(cell(rec, bc.idx)); ok && n > 0 {
				row.Requests[bc.label] = n
			}
		}
		p.Rows = append(p.Rows, row)
	}
	return p, nil
}

func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}

// parseCount normalizes a plan cell to an integer count. Blank or
// non-numeric cells mean "no request". Spreadsheet exports sometimes
// render integers as "2.0", so floats are accepted and truncated.
func parseCount(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}
