package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"noticeboard-tally/lib/configutil"
	"noticeboard-tally/lib/restyutil"
	"noticeboard-tally/lib/scrapers/noticeboard"

	"github.com/joho/godotenv"
)

const (
	configFile = "noticeboard.json5"
	sessionEnv = "IITBHU_SESSION"
)

type Config struct {
	BaseUrl                 string  `json:"base_url"`
	ListingPath             string  `json:"listing_path"`
	TimeoutSeconds          int     `json:"timeout_seconds"`
	DisableCloudflareBypass bool    `json:"disable_cloudflare_bypass"`
	RequestsPerSecond       float64 `json:"requests_per_second"`

	// only ever read from the environment
	Session string `json:"-"`
}

func (c Config) ClientOptions(output restyutil.InstrumentOutput) noticeboard.ClientOptions {
	return noticeboard.ClientOptions{
		BaseUrl:           c.BaseUrl,
		ListingPath:       c.ListingPath,
		Session:           c.Session,
		Timeout:           time.Duration(c.TimeoutSeconds) * time.Second,
		BypassCloudflare:  !c.DisableCloudflareBypass,
		RequestsPerSecond: c.RequestsPerSecond,
		Output:            output,
	}
}

// loadConfig reads .env, then noticeboard.json5 from the cwd or any of its
// parents. Neither file is required, the session token is.
func loadConfig() (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "err", err)
	}

	file, err := configutil.ReadRecursively[Config](".", configFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return resolveConfig(file, os.Getenv(sessionEnv))
}

func resolveConfig(file Config, session string) (Config, error) {
	cfg := file
	if cfg.BaseUrl == "" {
		cfg.BaseUrl = noticeboard.DefaultBaseUrl
	}
	if cfg.ListingPath == "" {
		cfg.ListingPath = noticeboard.DefaultListingPath
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = int(noticeboard.DefaultTimeout / time.Second)
	}

	cfg.Session = strings.TrimSpace(session)
	if cfg.Session == "" {
		return cfg, fmt.Errorf("%w, set %s in the environment or in .env", noticeboard.ErrNoSession, sessionEnv)
	}
	return cfg, nil
}
