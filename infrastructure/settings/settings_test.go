package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"nhrsa/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettings(t *testing.T) {
	t.Run("defaults without a settings file", func(t *testing.T) {
		mySettings, err := GetSettings(t.TempDir())
		require.NoError(t, err, "error on GetSettings: %v", err)
		assert.Equal(t, core.DefaultTOCURL, mySettings.TOCURL)
		assert.Equal(t, core.DefaultFixturePath, mySettings.FixturePath)
		assert.Equal(t, core.DefaultOutPath, mySettings.OutPath)
		assert.Equal(t, 30*time.Second, mySettings.HTTPTimeout)
		assert.True(t, mySettings.DoLogToStdout)
		assert.Equal(t, "info", mySettings.LogLevel)
		assert.Empty(t, mySettings.BucketName)
		assert.Nil(t, mySettings.LocalEndpoint)
	})

	t.Run("settings file and environment", func(t *testing.T) {
		dir := t.TempDir()
		contents := "OUT_PATH=out/mapping.json\nLOG_LEVEL=debug\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.env"), []byte(contents), 0o644))
		t.Setenv("HTTP_TIMEOUT", "45s")
		t.Setenv("BUCKET_NAME", "nh-rsa-raw")
		t.Setenv("LOCAL_ENDPOINT", "http://localhost:4566")

		mySettings, err := GetSettings(dir)
		require.NoError(t, err, "error on GetSettings: %v", err)
		assert.Equal(t, "out/mapping.json", mySettings.OutPath)
		assert.Equal(t, "debug", mySettings.LogLevel)
		assert.Equal(t, 45*time.Second, mySettings.HTTPTimeout)
		assert.Equal(t, "nh-rsa-raw", mySettings.BucketName)
		if assert.NotNil(t, mySettings.LocalEndpoint) {
			assert.Equal(t, "http://localhost:4566", *mySettings.LocalEndpoint)
		}
	})
}
