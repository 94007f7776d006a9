package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTempTOML(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.toml")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestCheckValid(t *testing.T) {
	path := writeTempTOML(t, "a = 1\n")
	out, err := runCmd(t, "check", path)
	assert.NoError(t, err)
	assert.Contains(t, out, "valid TOML")
}

func TestCheckInvalid(t *testing.T) {
	path := writeTempTOML(t, "a = 1\na = 2\n")
	_, err := runCmd(t, "--no-color", "check", path)
	assert.Error(t, err)
}

func TestFmtAlreadyCanonical(t *testing.T) {
	path := writeTempTOML(t, "a = 1\n")
	out, err := runCmd(t, "fmt", path)
	assert.NoError(t, err)
	assert.Contains(t, out, "already canonical")
}

func TestFmtWriteLeavesCanonicalFileUnchanged(t *testing.T) {
	path := writeTempTOML(t, "a = 1\n")
	_, err := runCmd(t, "fmt", "--write", path)
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "a = 1\n", string(data))
}

func TestGetScalar(t *testing.T) {
	path := writeTempTOML(t, "[server]\nhost = \"localhost\"\nport = 8080\n")
	out, err := runCmd(t, "get", path, "server.host")
	assert.NoError(t, err)
	assert.Contains(t, out, "localhost")
}

func TestGetMissingPath(t *testing.T) {
	path := writeTempTOML(t, "a = 1\n")
	_, err := runCmd(t, "get", path, "does.not.exist")
	assert.Error(t, err)
}
