package report

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path"
	"sort"

	"github.com/vjovkovs/ttsprep/internal/bucket"
)

// Dir is one node of a dataset structure JSON tree.
type Dir struct {
	Name    string `json:"name"`
	Files   []File `json:"flac_files"`
	Subdirs []Dir  `json:"subdirectories"`
}

// File is one clip entry inside a Dir node.
type File struct {
	DurationSeconds float64 `json:"duration_seconds"`
}

// FolderStats aggregates one folder's clips.
type FolderStats struct {
	Buckets       map[string]int
	TotalFiles    int
	TotalDuration float64 // seconds
}

// Dataset holds the aggregates the report writers consume.
type Dataset struct {
	Name    string
	Buckets bucket.Set
	Overall map[string]int
	Folders map[string]*FolderStats
	Total   int
}

// Load reads a dataset structure JSON file and aggregates it.
func Load(name, jsonPath string, buckets bucket.Set) (*Dataset, error) {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read dataset json: %w", err)
	}
	var root Dir
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("parse dataset json %s: %w", jsonPath, err)
	}
	return Aggregate(name, &root, buckets), nil
}

// Aggregate walks the tree and collects per-folder and overall bucket
// counts. Folder keys are the slash-joined node names from the root.
func Aggregate(name string, root *Dir, buckets bucket.Set) *Dataset {
	ds := &Dataset{
		Name:    name,
		Buckets: buckets,
		Overall: map[string]int{},
		Folders: map[string]*FolderStats{},
	}
	for _, label := range buckets.Labels() {
		ds.Overall[label] = 0
	}
	ds.walk(root, root.Name)
	for _, n := range ds.Overall {
		ds.Total += n
	}
	return ds
}

func (ds *Dataset) walk(node *Dir, folderPath string) {
	stats := ds.Folders[folderPath]
	if stats == nil {
		stats = &FolderStats{Buckets: map[string]int{}}
		for _, label := range ds.Buckets.Labels() {
			stats.Buckets[label] = 0
		}
		ds.Folders[folderPath] = stats
	}

	for _, f := range node.Files {
		label, ok := ds.Buckets.Assign(f.DurationSeconds)
		if !ok {
			continue
		}
		stats.Buckets[label]++
		stats.TotalFiles++
		stats.TotalDuration += f.DurationSeconds
		ds.Overall[label]++
	}

	for i := range node.Subdirs {
		sub := &node.Subdirs[i]
		ds.walk(sub, path.Join(folderPath, sub.Name))
	}
}

// SortedFolders returns the folder keys in lexical order.
func (ds *Dataset) SortedFolders() []string {
	keys := make([]string, 0, len(ds.Folders))
	for k := range ds.Folders {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Percent returns a bucket's share of the dataset's files.
func (ds *Dataset) Percent(label string) float64 {
	if ds.Total == 0 {
		return 0
	}
	return float64(ds.Overall[label]) / float64(ds.Total) * 100
}

// LogSummary prints the console distribution summary for one dataset.
func (ds *Dataset) LogSummary() {
	log.Printf("[INFO] Dataset: %s", ds.Name)
	log.Printf("[INFO]   Total files: %d", ds.Total)
	log.Printf("[INFO]   Total folders: %d", len(ds.Folders))
	log.Printf("[INFO]   Duration distribution:")
	for _, label := range ds.Buckets.Labels() {
		log.Printf("[INFO]     %-9s: %6d files (%5.2f%%)", label, ds.Overall[label], ds.Percent(label))
	}
}
