package sample

import (
	"log"
	"math/rand"

	"github.com/vjovkovs/ttsprep/internal/bucket"
	"github.com/vjovkovs/ttsprep/internal/model"
	"github.com/vjovkovs/ttsprep/internal/plan"
)

// sampleFolder picks clips for one plan row, bucket by bucket. Buckets
// are visited in the fixed label order so the shared rng is consumed in
// a deterministic sequence and a fixed seed reproduces the run exactly.
func sampleFolder(row plan.Row, buckets bucket.Set, avail map[string][]model.Clip, rng *rand.Rand) []model.Clip {
	var selected []model.Clip
	for _, label := range buckets.Labels() {
		nReq := row.Requests[label]
		if nReq <= 0 {
			continue
		}

		clips := avail[label]
		if len(clips) == 0 {
			log.Printf("[WARN] Folder %q bucket %q requested %d but found 0 files.",
				row.Folder, label, nReq)
			continue
		}

		if len(clips) <= nReq {
			// Shortfall or exact match: take everything, no draw.
			log.Printf("[INFO] Folder %q bucket %q requested %d, only %d available -> taking all.",
				row.Folder, label, nReq, len(clips))
			selected = append(selected, clips...)
			continue
		}

		// Uniform draw without replacement.
		for _, i := range rng.Perm(len(clips))[:nReq] {
			selected = append(selected, clips[i])
		}
	}
	return selected
}
