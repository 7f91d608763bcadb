package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl string `json:"base_url"`
	Timeout int    `json:"timeout"`
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	err := os.WriteFile(path, []byte(contents), 0600)
	require.NoError(t, err)
}

func TestReadConfigMergesLocalOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.json5"), `{
		// comments are allowed
		base_url: "https://example.com",
		timeout: 10,
	}`)
	writeFile(t, filepath.Join(dir, "app.local.json5"), `{ timeout: 3 }`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "app.json5"))
	require.NoError(t, err)
	require.Equal(t, "https://example.com", cfg.BaseUrl)
	require.Equal(t, 3, cfg.Timeout)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "app.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.json5"), `{ base_url: `)

	_, err := ReadConfig[testConfig](filepath.Join(dir, "app.json5"))
	require.Error(t, err)
	require.NotErrorIs(t, err, os.ErrNotExist)
}

func TestReadRecursivelyWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0700))
	writeFile(t, filepath.Join(root, "a", "app.json5"), `{ base_url: "https://found.example" }`)

	cfg, err := ReadRecursively[testConfig](nested, "app.json5")
	require.NoError(t, err)
	require.Equal(t, "https://found.example", cfg.BaseUrl)
}
