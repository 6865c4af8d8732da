package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"road": { "segmentsAhead": 20, "segmentLength": 30 },
		"camera": { "follow": "snap" },
		"traffic": { "enabled": false }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	require.NoError(t, Load(dir))
	got, err := Current()
	require.NoError(t, err)

	assert.Equal(t, "debug", got.LogLevel)
	assert.Equal(t, 20, got.Road.SegmentsAhead)
	assert.Equal(t, 30.0, got.Road.SegmentLength)
	assert.Equal(t, 6, got.Road.SegmentsBehind)
	assert.Equal(t, "snap", got.Camera.Follow)
	assert.False(t, got.Traffic.Enabled)
	assert.Equal(t, 1.0, got.Traffic.Body.Width)
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{}`), 0644))

	require.NoError(t, Load(dir))
	assert.Equal(t, "info", viper.GetString("logLevel"))
	assert.Equal(t, 40.0, viper.GetFloat64("road.segmentLength"))
	assert.Equal(t, 12, viper.GetInt("road.segmentsAhead"))
	assert.Equal(t, 6, viper.GetInt("road.segmentsBehind"))
	assert.Equal(t, 0.8, viper.GetFloat64("road.flyInDuration"))
	assert.Equal(t, 0.25, viper.GetFloat64("road.textureScroll"))
	assert.Equal(t, 20.0, viper.GetFloat64("vehicle.maxSpeed"))
	assert.Equal(t, 2, viper.GetInt("vehicle.laneCount"))
	assert.Equal(t, "smooth", viper.GetString("camera.follow"))
	assert.Equal(t, 0.1, viper.GetFloat64("maxFrameTime"))
	assert.Equal(t, "Doodle Drive", viper.GetString("window.title"))

	got, err := Current()
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load("/nonexistent/path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")

	got, err := Current()
	require.NoError(t, err, "defaults still decode")
	assert.Equal(t, Default(), got)
}

func TestCurrent_RejectsBadFrameTime(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("maxFrameTime", -1)
	_, err := Current()
	assert.Error(t, err)
}
