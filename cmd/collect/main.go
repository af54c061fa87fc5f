package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/vjovkovs/ttsprep/internal/collect"
	"github.com/vjovkovs/ttsprep/internal/config"
)

func main() {
	csvPath := flag.String("csv", "", "Path to sampled file list CSV (required; columns rel_path, full_path)")
	dest := flag.String("dest", "", "Destination root folder (required unless TTSPREP_DEST is set)")
	sep := flag.String("sep", ",", `CSV separator (use '\t' if your file is tab-separated)`)
	envFile := flag.String("env", "", "Optional .env file with TTSPREP_* defaults")
	flag.Parse()

	defs := config.Load(*envFile)
	if strings.TrimSpace(*dest) == "" {
		*dest = defs.Dest
	}

	if strings.TrimSpace(*csvPath) == "" {
		log.Fatal("missing -csv (path to sampled file list)")
	}
	if strings.TrimSpace(*dest) == "" {
		log.Fatal("missing -dest (destination root folder)")
	}

	_, err := collect.Run(collect.Options{
		Manifest: abs(expand(*csvPath)),
		Dest:     abs(expand(*dest)),
		Sep:      sepRune(*sep),
	})
	if err != nil {
		log.Fatal(err)
	}
}

// sepRune maps the flag value to a field separator; the two-character
// literal \t means a real tab.
func sepRune(s string) rune {
	if s == `\t` {
		return '\t'
	}
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || r == utf8.RuneError {
		log.Fatalf("invalid -sep %q (want a single character or '\\t')", s)
	}
	return r
}

func expand(p string) string {
	if p == "" {
		return p
	}
	p = os.ExpandEnv(p)
	if strings.HasPrefix(p, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

func abs(p string) string {
	if ap, err := filepath.Abs(p); err == nil {
		return ap
	}
	return p
}
