package banner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Default(t *testing.T) {
	text, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, text)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banner.txt")
	require.NoError(t, os.WriteFile(path, []byte("custom banner"), 0644))

	text, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom banner", text)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
