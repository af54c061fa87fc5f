package sample

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/vjovkovs/ttsprep/internal/bucket"
	"github.com/vjovkovs/ttsprep/internal/model"
	"github.com/vjovkovs/ttsprep/internal/plan"
)

func mkClips(folder, label string, n int) []model.Clip {
	clips := make([]model.Clip, n)
	for i := range clips {
		clips[i] = model.Clip{
			Folder: folder,
			Path:   fmt.Sprintf("/data/%s/%s-%03d.wav", folder, label, i),
			Bucket: label,
		}
	}
	return clips
}

func TestSampleFolderTakeAll(t *testing.T) {
	row := plan.Row{Folder: "a", Requests: map[string]int{"[0, 1)": 5}}
	avail := map[string][]model.Clip{"[0, 1)": mkClips("a", "[0, 1)", 3)}

	// Request exceeds availability: every clip is taken and the rng is
	// never consulted, so different seeds agree exactly.
	got1 := sampleFolder(row, bucket.Default(), avail, rand.New(rand.NewSource(1)))
	got2 := sampleFolder(row, bucket.Default(), avail, rand.New(rand.NewSource(99)))

	if len(got1) != 3 || len(got2) != 3 {
		t.Fatalf("selected %d and %d clips, want 3 each", len(got1), len(got2))
	}
	for i := range got1 {
		if got1[i].Path != got2[i].Path {
			t.Errorf("take-all diverged across seeds: %q vs %q", got1[i].Path, got2[i].Path)
		}
	}
}

func TestSampleFolderExactMatch(t *testing.T) {
	row := plan.Row{Folder: "a", Requests: map[string]int{"[1, 5)": 4}}
	avail := map[string][]model.Clip{"[1, 5)": mkClips("a", "[1, 5)", 4)}

	got := sampleFolder(row, bucket.Default(), avail, rand.New(rand.NewSource(42)))
	if len(got) != 4 {
		t.Fatalf("selected %d clips, want 4", len(got))
	}
}

func TestSampleFolderRandomSubset(t *testing.T) {
	row := plan.Row{Folder: "a", Requests: map[string]int{"[5, 10)": 3}}
	avail := map[string][]model.Clip{"[5, 10)": mkClips("a", "[5, 10)", 10)}
	buckets := bucket.Default()

	sameA := sampleFolder(row, buckets, avail, rand.New(rand.NewSource(42)))
	sameB := sampleFolder(row, buckets, avail, rand.New(rand.NewSource(42)))
	other := sampleFolder(row, buckets, avail, rand.New(rand.NewSource(7)))

	if len(sameA) != 3 || len(sameB) != 3 || len(other) != 3 {
		t.Fatalf("selected %d/%d/%d clips, want 3 each", len(sameA), len(sameB), len(other))
	}
	for i := range sameA {
		if sameA[i].Path != sameB[i].Path {
			t.Errorf("same seed diverged at %d: %q vs %q", i, sameA[i].Path, sameB[i].Path)
		}
	}
	// All draws must come from the available pool, without replacement.
	pool := map[string]bool{}
	for _, c := range avail["[5, 10)"] {
		pool[c.Path] = true
	}
	seen := map[string]bool{}
	for _, c := range sameA {
		if !pool[c.Path] {
			t.Errorf("drew %q which is not in the pool", c.Path)
		}
		if seen[c.Path] {
			t.Errorf("drew %q twice", c.Path)
		}
		seen[c.Path] = true
	}
}

func TestSampleFolderEmptyBucket(t *testing.T) {
	row := plan.Row{Folder: "a", Requests: map[string]int{"[30+)": 2}}
	got := sampleFolder(row, bucket.Default(), map[string][]model.Clip{}, rand.New(rand.NewSource(42)))
	if len(got) != 0 {
		t.Fatalf("empty bucket contributed %d clips, want 0", len(got))
	}
}

func TestSampleFolderBucketOrder(t *testing.T) {
	// Selections concatenate in the fixed label order regardless of
	// request-map iteration order.
	row := plan.Row{Folder: "a", Requests: map[string]int{"[30+)": 1, "[0, 1)": 1}}
	avail := map[string][]model.Clip{
		"[0, 1)": mkClips("a", "[0, 1)", 1),
		"[30+)":  mkClips("a", "[30+)", 1),
	}
	got := sampleFolder(row, bucket.Default(), avail, rand.New(rand.NewSource(42)))
	if len(got) != 2 {
		t.Fatalf("selected %d clips, want 2", len(got))
	}
	if got[0].Bucket != "[0, 1)" || got[1].Bucket != "[30+)" {
		t.Errorf("bucket order = %q, %q; want [0, 1) then [30+)", got[0].Bucket, got[1].Bucket)
	}
}

func TestGroupByFolderBucket(t *testing.T) {
	clips := []model.Clip{
		{Folder: "a", Path: "/a/1.wav", Bucket: "[0, 1)"},
		{Folder: "a", Path: "/a/2.wav", Bucket: "[0, 1)"},
		{Folder: "a", Path: "/a/3.wav", Bucket: "[5, 10)"},
		{Folder: "b", Path: "/b/1.wav", Bucket: "[0, 1)"},
		{Folder: "b", Path: "/b/2.wav", Bucket: ""}, // unbucketed, dropped
	}
	m := GroupByFolderBucket(clips)
	if len(m["a"]["[0, 1)"]) != 2 || len(m["a"]["[5, 10)"]) != 1 {
		t.Errorf("folder a grouped wrong: %v", m["a"])
	}
	if len(m["b"]) != 1 || len(m["b"]["[0, 1)"]) != 1 {
		t.Errorf("folder b grouped wrong: %v", m["b"])
	}
	// Insertion order preserved within a bucket list.
	if m["a"]["[0, 1)"][0].Path != "/a/1.wav" {
		t.Errorf("insertion order lost: %v", m["a"]["[0, 1)"])
	}
}

func TestDedupe(t *testing.T) {
	clips := []model.Clip{
		{Folder: "a", Path: "/a/1.wav", Duration: 1},
		{Folder: "a", Path: "/a/2.wav", Duration: 2},
		{Folder: "a", Path: "/a/1.wav", Duration: 9}, // duplicate, last wins
		{Folder: "b", Path: "/a/1.wav", Duration: 3}, // same path, other folder
	}
	got := dedupe(clips)
	if len(got) != 3 {
		t.Fatalf("got %d clips, want 3", len(got))
	}
	if got[0].Path != "/a/1.wav" || got[0].Duration != 9 {
		t.Errorf("duplicate handling wrong: %+v", got[0])
	}
	if got[1].Path != "/a/2.wav" || got[2].Folder != "b" {
		t.Errorf("order not preserved: %+v", got)
	}
}
