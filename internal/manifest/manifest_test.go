package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vjovkovs/ttsprep/internal/model"
)

func TestWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.csv")
	clips := []model.Clip{
		{Folder: "podcastA", Path: "/data/podcastA/a.wav", RelPath: "podcastA/a.wav", Duration: 0.49962, Bucket: "[0, 1)"},
		{Folder: "podcastA", Path: "/data/podcastA/b.wav", RelPath: "podcastA/b.wav", Duration: 7, Bucket: "[5, 10)"},
	}
	if err := Write(path, clips); err != nil {
		t.Fatalf("Write: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if lines[0] != "folder,rel_path,full_path,duration_sec,bucket" {
		t.Errorf("header = %q", lines[0])
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[1], ",0.5,") {
		t.Errorf("duration not rounded to 3 decimals: %q", lines[1])
	}

	entries, err := Read(path, ',')
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[1].FullPath != "/data/podcastA/b.wav" || entries[1].RelPath != "podcastA/b.wav" {
		t.Errorf("entry = %+v", entries[1])
	}
}

func TestParseTabSeparated(t *testing.T) {
	in := "folder\trel_path\tfull_path\na\tx/a.wav\t/root/x/a.wav\n"
	entries, err := Parse(strings.NewReader(in), '\t')
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(entries) != 1 || entries[0].RelPath != "x/a.wav" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestParseMissingRequiredColumns(t *testing.T) {
	_, err := Parse(strings.NewReader("folder,duration_sec\na,1.0\n"), ',')
	if err == nil {
		t.Fatal("expected error for manifest without rel_path/full_path")
	}
	if !strings.Contains(err.Error(), "rel_path") {
		t.Errorf("error should name the missing columns, got %v", err)
	}
}
