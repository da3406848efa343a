package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
	assert.Equal(t, "Print the version number", versionCmd.Short)
}

func TestVersionCmd_Executes(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "clonegroup version test-version-1.0.0")
}

func TestSetVersion(t *testing.T) {
	originalVersion := version
	defer SetVersion(originalVersion)

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
	assert.Equal(t, "1.2.3", rootCmd.Version)
}
