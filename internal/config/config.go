package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults are env-file fallbacks for CLI flags. Flags always win; the
// env file only fills in what the user did not pass.
type Defaults struct {
	AudioRoot string
	Dest      string
	Seed      int64
	FFProbe   string
}

// Load reads the optional env file (missing files are fine) and then
// the process environment.
func Load(envFile string) Defaults {
	if envFile != "" {
		godotenv.Load(envFile)
	} else {
		godotenv.Load()
	}

	return Defaults{
		AudioRoot: getEnv("TTSPREP_AUDIO_ROOT", ""),
		Dest:      getEnv("TTSPREP_DEST", ""),
		Seed:      getEnvInt64("TTSPREP_SEED", 42),
		FFProbe:   getEnv("TTSPREP_FFPROBE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}
