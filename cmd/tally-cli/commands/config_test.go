package commands

import (
	"testing"
	"time"

	"noticeboard-tally/lib/scrapers/noticeboard"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigDefaults(t *testing.T) {
	cfg, err := resolveConfig(Config{}, "  abc123\n")
	require.NoError(t, err)

	diff := cmp.Diff(Config{
		BaseUrl:        noticeboard.DefaultBaseUrl,
		ListingPath:    noticeboard.DefaultListingPath,
		TimeoutSeconds: 10,
		Session:        "abc123",
	}, cfg)
	require.Empty(t, diff)

	opts := cfg.ClientOptions(nil)
	require.True(t, opts.BypassCloudflare)
	require.Equal(t, 10*time.Second, opts.Timeout)
	require.Equal(t, "abc123", opts.Session)
}

func TestResolveConfigKeepsFileValues(t *testing.T) {
	cfg, err := resolveConfig(Config{
		BaseUrl:                 "http://localhost:8080",
		ListingPath:             "/forum/c/notice-board/2024-25/",
		TimeoutSeconds:          3,
		DisableCloudflareBypass: true,
	}, "abc123")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", cfg.BaseUrl)
	require.Equal(t, "/forum/c/notice-board/2024-25/", cfg.ListingPath)
	require.Equal(t, 3, cfg.TimeoutSeconds)
	require.False(t, cfg.ClientOptions(nil).BypassCloudflare)
}

func TestResolveConfigRequiresSession(t *testing.T) {
	_, err := resolveConfig(Config{}, "   ")
	require.ErrorIs(t, err, noticeboard.ErrNoSession)
}
