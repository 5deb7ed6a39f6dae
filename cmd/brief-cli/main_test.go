package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbenliogludev/go-page-brief/internal/config"
)

const testDoc = `{
  "desc": "A store for running shoes.",
  "navbar": "Home\nShop",
  "images": [{"is_displayed": true, "alt": "logo", "position": {"horizontal": 0, "vertical": 0}}],
  "buttons": [{"is_displayed": true, "text": "Buy", "bg-color": "red", "position": {"horizontal": 2, "vertical": 2}}]
}`

func writeDoc(t *testing.T, dir, body string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, metadataFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestFindMetadataFiles(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, filepath.Join(root, "0002"), "{}")
	writeDoc(t, filepath.Join(root, "0001"), "{}")
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.json"), []byte("{}"), 0o600))

	paths, err := findMetadataFiles(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "0001", metadataFileName),
		filepath.Join(root, "0002", metadataFileName),
	}, paths)

	_, err = findMetadataFiles(filepath.Join(root, "missing"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger(config.LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	_, err = newLogger(config.LogConfig{Level: "loud"})
	assert.Error(t, err)

	_, err = newLogger(config.LogConfig{Format: "xml"})
	assert.Error(t, err)
}

func TestObjectsCommand(t *testing.T) {
	path := writeDoc(t, t.TempDir(), testDoc)

	out, err := execute(t, "objects", path)
	require.NoError(t, err)
	assert.Equal(t,
		"an image of logo in the center\na red colored button of Buy in the bottom right corner\n",
		out)
}

func TestPrefixCommandIsSeeded(t *testing.T) {
	first, err := execute(t, "prefix", "-n", "3", "--seed", "42")
	require.NoError(t, err)
	second, err := execute(t, "prefix", "-n", "3", "--seed", "42")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, strings.Split(strings.TrimSpace(first), "\n"), 3)
}

func TestDescribeDryRun(t *testing.T) {
	path := writeDoc(t, t.TempDir(), testDoc)

	out, err := execute(t, "describe", path, "--dry-run", "--max-words", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "NAVBAR:\nHome; Shop")
	assert.Contains(t, out, "IMAGES:\nan image of logo in the center")
	assert.Contains(t, out, "Keep the brief to roughly 50 words.")
}

func TestDescribeMalformedInput(t *testing.T) {
	path := writeDoc(t, t.TempDir(), `{"desc": `)

	_, err := execute(t, "describe", path, "--dry-run")
	assert.Error(t, err)
}
