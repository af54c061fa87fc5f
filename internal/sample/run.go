package sample

import (
	"log"
	"math/rand"

	"github.com/vjovkovs/ttsprep/internal/bucket"
	"github.com/vjovkovs/ttsprep/internal/manifest"
	"github.com/vjovkovs/ttsprep/internal/model"
	"github.com/vjovkovs/ttsprep/internal/plan"
)

// Options configures one sampling run.
type Options struct {
	PlanPath  string
	AudioRoot string
	Output    string
	Seed      int64
	Probe     DurationFunc
}

// Run executes the full sampling pass: load the plan, index clips,
// draw per-folder selections with a single seeded rng, deduplicate,
// and write the CSV manifest.
func Run(opt Options) error {
	rng := rand.New(rand.NewSource(opt.Seed))
	buckets := bucket.Default()

	p, err := plan.Load(opt.PlanPath, buckets)
	if err != nil {
		return err
	}
	log.Printf("[INFO] Loaded sampling plan with %d rows from %s", len(p.Rows), opt.PlanPath)

	ix := &Indexer{Root: opt.AudioRoot, Buckets: buckets, Probe: opt.Probe}
	clips := ix.Index(p)
	byFolder := GroupByFolderBucket(clips)

	var all []model.Clip
	for _, row := range p.Rows {
		avail := byFolder[row.Folder]
		if len(avail) == 0 {
			log.Printf("[WARN] No bucketed files for folder %q. Skipping.", row.Folder)
			continue
		}

		selected := sampleFolder(row, buckets, avail, rng)
		if row.HasTarget && len(selected) < row.Target {
			log.Printf("[WARN] Folder %q target %d, only selected %d clips (insufficient long buckets).",
				row.Folder, row.Target, len(selected))
		}
		all = append(all, selected...)
	}

	final := dedupe(all)
	log.Printf("[INFO] Final selected clips: %d", len(final))

	if err := manifest.Write(opt.Output, final); err != nil {
		return err
	}
	log.Printf("[INFO] Wrote sampled file list to %s", opt.Output)
	return nil
}

// dedupe drops repeated (folder, path) pairs. Duplicates should not
// occur since each folder is processed once, but a plan listing the
// same folder twice must not inflate the manifest. The latest record
// wins while the first-seen position is kept.
func dedupe(clips []model.Clip) []model.Clip {
	type key struct{ folder, path string }
	seen := make(map[key]int, len(clips))
	out := make([]model.Clip, 0, len(clips))
	for _, c := range clips {
		k := key{c.Folder, c.Path}
		if i, ok := seen[k]; ok {
			out[i] = c
			continue
		}
		seen[k] = len(out)
		out = append(out, c)
	}
	return out
}
