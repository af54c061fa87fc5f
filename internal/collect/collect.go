package collect

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/vjovkovs/ttsprep/internal/manifest"
)

// Options configures one copy run.
type Options struct {
	Manifest string
	Dest     string
	Sep      rune
}

// Totals summarizes what a copy run moved and what it skipped.
type Totals struct {
	Rows            int
	Audio           int
	Sidecars        int
	MissingAudio    int
	MissingSidecars int
}

// Run copies every manifest row's audio file, and its same-basename
// .json transcript when present, into the destination root while
// preserving the rel_path substructure. Missing sources are warned and
// counted, never fatal.
func Run(opt Options) (Totals, error) {
	entries, err := manifest.Read(opt.Manifest, opt.Sep)
	if err != nil {
		return Totals{}, err
	}
	log.Printf("[INFO] Loaded %d rows from %s", len(entries), opt.Manifest)

	t := Totals{Rows: len(entries)}
	for _, e := range entries {
		srcAudio := normalizePath(e.FullPath)
		dstAudio := filepath.Join(opt.Dest, normalizePath(e.RelPath))

		copied, err := copyFile(srcAudio, dstAudio)
		if err != nil {
			return t, err
		}
		if copied {
			t.Audio++
		} else {
			t.MissingAudio++
			log.Printf("[WARN] Source file not found, skipping: %s", srcAudio)
		}

		// Transcript sidecar: same basename, .json extension.
		srcJSON := trimExt(srcAudio) + ".json"
		dstJSON := trimExt(dstAudio) + ".json"
		copied, err = copyFile(srcJSON, dstJSON)
		if err != nil {
			return t, err
		}
		if copied {
			t.Sidecars++
		} else {
			t.MissingSidecars++
			log.Printf("[WARN] JSON transcript not found for audio: %s", srcAudio)
		}
	}

	log.Printf("[INFO] Done.")
	log.Printf("[INFO] Copied audio files: %d (missing: %d)", t.Audio, t.MissingAudio)
	log.Printf("[INFO] Copied JSON files:  %d (missing: %d)", t.Sidecars, t.MissingSidecars)
	return t, nil
}

// normalizePath cleans a manifest path that may mix / and \ separators.
func normalizePath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(p))
}

func trimExt(p string) string {
	return strings.TrimSuffix(p, filepath.Ext(p))
}

// copyFile copies src to dst, creating parent directories and keeping
// the source modification time. It reports (false, nil) when src does
// not exist so the caller can warn and continue.
func copyFile(src, dst string) (bool, error) {
	st, err := os.Stat(src)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", src, err)
	}
	if st.IsDir() {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, err
	}

	in, err := os.Open(src)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return false, fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return false, fmt.Errorf("copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return false, err
	}
	_ = os.Chtimes(dst, st.ModTime(), st.ModTime())

	log.Printf("[INFO] Copied: %s -> %s", src, dst)
	return true, nil
}
