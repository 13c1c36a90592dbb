package config

import "os"

// Config collects everything read from the environment. A missing .env is
// fine; every field has a default suited to the single-terminal deployment.
type Config struct {
	Port      string
	GinMode   string
	DataFile  string
	PublicDir string
}

func Load() Config {
	return Config{
		Port:      envOr("PORT", "4000"),
		GinMode:   os.Getenv("GIN_MODE"),
		DataFile:  envOr("DATA_FILE", "orders.json"),
		PublicDir: envOr("PUBLIC_DIR", "public"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
