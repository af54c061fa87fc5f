package probe

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-audio/wav"
)

// Prober reads clip durations. WAV files are decoded natively; every
// other supported container goes through ffprobe.
type Prober struct {
	// FFProbePath overrides PATH lookup of the ffprobe binary.
	FFProbePath string
}

// New returns a Prober that finds ffprobe on PATH.
func New() *Prober {
	return &Prober{}
}

// Duration returns the clip length in seconds, computed from the
// container's sample count and sample rate.
func (p *Prober) Duration(path string) (float64, error) {
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		return wavDuration(path)
	}
	return p.ffprobeDuration(path)
}

func wavDuration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return 0, fmt.Errorf("invalid WAV: %s", path)
	}
	if dec.SampleRate == 0 {
		return 0, fmt.Errorf("non-positive sample rate: %s", path)
	}
	d, err := dec.Duration()
	if err != nil {
		return 0, fmt.Errorf("wav duration %s: %w", path, err)
	}
	return d.Seconds(), nil
}

// ffprobeOutput is the subset of `ffprobe -print_format json` we read.
type ffprobeOutput struct {
	Streams []struct {
		SampleRate string `json:"sample_rate"`
		DurationTS int64  `json:"duration_ts"`
		Duration   string `json:"duration"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func (p *Prober) ffprobeDuration(path string) (float64, error) {
	exe := p.FFProbePath
	if exe == "" {
		exe, _ = exec.LookPath("ffprobe")
		if exe == "" {
			return 0, fmt.Errorf("ffprobe not found in PATH (needed for %s)", filepath.Ext(path))
		}
	}

	cmd := exec.Command(exe,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	var pr ffprobeOutput
	if err := json.Unmarshal(out, &pr); err != nil {
		return 0, fmt.Errorf("ffprobe output for %s: %w", path, err)
	}
	if len(pr.Streams) == 0 {
		return 0, fmt.Errorf("no audio stream in %s", path)
	}

	s := pr.Streams[0]
	rate, _ := strconv.Atoi(s.SampleRate)
	if rate <= 0 {
		return 0, fmt.Errorf("non-positive sample rate: %s", path)
	}

	// Prefer the exact sample count when the container carries one.
	if s.DurationTS > 0 {
		return float64(s.DurationTS) / float64(rate), nil
	}
	for _, raw := range []string{s.Duration, pr.Format.Duration} {
		if raw == "" {
			continue
		}
		if d, err := strconv.ParseFloat(raw, 64); err == nil && d >= 0 {
			return d, nil
		}
	}
	return 0, fmt.Errorf("no duration reported for %s", path)
}
