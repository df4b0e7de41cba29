package ulog

import (
	"os"
	"strconv"
)

// Config holds the environment-sourced sink knobs. The dispatch core never
// reads these; they shape console rendering and export wiring only.
type Config struct {
	MinSeverity Severity
	HideMeta    bool
	HideTime    bool
	NoColor     bool
	ExportURL   string
	ExportKey   string
	Service     string
}

// loadConfig reads the ULOG_* environment variables.
func loadConfig() Config {
	cfg := Config{MinSeverity: SeverityDebug, Service: "ulog"}
	if v := os.Getenv("ULOG_LEVEL"); v != "" {
		if sev, ok := ParseSeverity(v); ok {
			cfg.MinSeverity = sev
		}
	}
	cfg.HideMeta = envBool("ULOG_HIDE_META")
	cfg.HideTime = envBool("ULOG_HIDE_TIME")
	cfg.NoColor = envBool("ULOG_NO_COLOR")
	cfg.ExportURL = os.Getenv("ULOG_EXPORT_URL")
	cfg.ExportKey = os.Getenv("ULOG_EXPORT_KEY")
	if v := os.Getenv("ULOG_SERVICE"); v != "" {
		cfg.Service = v
	}
	return cfg
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func codeRepositoryDefault() string {
	return envOr("ULOG_CODE_REPOSITORY", defaultCodeRepository)
}
