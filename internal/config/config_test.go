package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TTSPREP_AUDIO_ROOT", "TTSPREP_DEST", "TTSPREP_SEED", "TTSPREP_FFPROBE"} {
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load(filepath.Join(t.TempDir(), "absent.env"))

	if cfg.AudioRoot != "" {
		t.Errorf("AudioRoot = %q, want empty default", cfg.AudioRoot)
	}
	if cfg.Dest != "" {
		t.Errorf("Dest = %q, want empty default", cfg.Dest)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.FFProbe != "" {
		t.Errorf("FFProbe = %q, want empty default", cfg.FFProbe)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TTSPREP_AUDIO_ROOT", "/data/tts")
	t.Setenv("TTSPREP_SEED", "1234")
	t.Setenv("TTSPREP_FFPROBE", "/opt/ffmpeg/bin/ffprobe")

	cfg := Load("")

	if cfg.AudioRoot != "/data/tts" {
		t.Errorf("AudioRoot = %q, want /data/tts", cfg.AudioRoot)
	}
	if cfg.Seed != 1234 {
		t.Errorf("Seed = %d, want 1234", cfg.Seed)
	}
	if cfg.FFProbe != "/opt/ffmpeg/bin/ffprobe" {
		t.Errorf("FFProbe = %q", cfg.FFProbe)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "tts.env")
	content := "TTSPREP_DEST=/out/collect_samples\nTTSPREP_SEED=7\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg.Dest != "/out/collect_samples" {
		t.Errorf("Dest = %q, want /out/collect_samples", cfg.Dest)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Seed)
	}

	// godotenv exports into the process env; clean up after ourselves.
	t.Cleanup(func() { clearEnv(t) })
}

func TestLoadBadSeedFallsBack(t *testing.T) {
	t.Setenv("TTSPREP_SEED", "not-a-number")
	if cfg := Load(""); cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42 fallback", cfg.Seed)
	}
}
