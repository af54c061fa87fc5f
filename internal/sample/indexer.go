package sample

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vjovkovs/ttsprep/internal/bucket"
	"github.com/vjovkovs/ttsprep/internal/model"
	"github.com/vjovkovs/ttsprep/internal/plan"
)

// audioExts is the clip extension allow-list (matched case-insensitively).
var audioExts = map[string]bool{
	".wav":  true,
	".flac": true,
	".mp3":  true,
	".m4a":  true,
	".ogg":  true,
}

func isAudioFile(path string) bool {
	return audioExts[strings.ToLower(filepath.Ext(path))]
}

// DurationFunc probes one clip's length in seconds.
type DurationFunc func(path string) (float64, error)

// Indexer walks plan folders under an audio root and probes clip durations.
type Indexer struct {
	Root    string
	Buckets bucket.Set
	Probe   DurationFunc
}

// Index builds clip records for every folder named in the plan, in plan
// order. Folders missing on disk contribute nothing; clips whose
// duration cannot be read are excluded entirely. Both are warned, not
// fatal.
func (ix *Indexer) Index(p *plan.Plan) []model.Clip {
	var all []model.Clip
	for _, row := range p.Rows {
		files := ix.folderFiles(row.Folder)
		log.Printf("[INFO] Folder %q: found %d audio files.", row.Folder, len(files))

		for _, f := range files {
			dur, err := ix.Probe(f)
			if err != nil {
				log.Printf("[WARN] Could not read audio file %q: %v", f, err)
				continue
			}
			label, _ := ix.Buckets.Assign(dur)
			rel, err := filepath.Rel(ix.Root, f)
			if err != nil {
				rel = f
			}
			all = append(all, model.Clip{
				Folder:   row.Folder,
				Path:     f,
				RelPath:  filepath.ToSlash(rel),
				Duration: dur,
				Bucket:   label,
			})
		}
	}
	log.Printf("[INFO] Total indexed audio files: %d", len(all))
	return all
}

// folderFiles recursively lists the allow-listed audio files under
// root/folderKey, sorted for a stable walk order.
func (ix *Indexer) folderFiles(folderKey string) []string {
	dir := filepath.Join(ix.Root, folderKey)
	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		log.Printf("[WARN] Folder not found on disk: %s", dir)
		return nil
	}

	var out []string
	walkErr := filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			log.Printf("[WARN] Skipping unreadable entry %q: %v", p, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if isAudioFile(p) {
			out = append(out, p)
		}
		return nil
	})
	if walkErr != nil {
		log.Printf("[WARN] Walk of %q aborted: %v", dir, walkErr)
	}
	sort.Strings(out)
	return out
}

// FolderBuckets maps folder key -> bucket label -> clips in insertion order.
type FolderBuckets map[string]map[string][]model.Clip

// GroupByFolderBucket reorganizes the flat clip list for per-folder
// quota lookups. Clips without a bucket are dropped; probe failures are
// already excluded upstream, so this is a second, defensive filter.
func GroupByFolderBucket(clips []model.Clip) FolderBuckets {
	m := FolderBuckets{}
	for _, c := range clips {
		if c.Bucket == "" {
			continue
		}
		folder := m[c.Folder]
		if folder == nil {
			folder = map[string][]model.Clip{}
			m[c.Folder] = folder
		}
		folder[c.Bucket] = append(folder[c.Bucket], c)
	}
	return m
}
