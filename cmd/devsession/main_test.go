package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "devsession version "), out)
}

func TestPutGetRoundTrip_FileBackend(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "devsession.yaml")
	body := "store:\n  backend: file\n  file:\n    dir: " + filepath.Join(dir, "cache") + "\nmetrics:\n  enabled: false\n"
	require.NoError(t, os.WriteFile(configPath, []byte(body), 0o600))

	out, err := execute(t, `{"sessions":[{"id":"s1"},{"id":"s2"}]}`, "put", "device-7", "--config", configPath, "--file", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Cached 2 session(s)")

	out, err = execute(t, `{"sessions":[{"id":"s3"}]}`, "put", "device-7", "--config", configPath, "--file", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "+1 added, -2 removed")

	out, err = execute(t, "", "get", "device-7", "--config", configPath, "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"sessions":[{"id":"s3"}]}`, out)

	out, err = execute(t, "", "ls", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "- device-7")
}
