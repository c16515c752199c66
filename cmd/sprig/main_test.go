package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/sprig/config"
	"github.com/phanxgames/sprig/game"
	"github.com/phanxgames/sprig/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func TestSimulateReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, simulate(&buf, game.DefaultConfig(), 300, 30, zap.NewNop()))

	var r simReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &r))
	assert.Equal(t, 300, r.State.Frame)
	assert.Equal(t, 5, r.Sounds["shot"], "right clicks on every other scripted click")
	assert.Equal(t, r.Dashes, r.Sounds["dash"])
	assert.Contains(t, r.State.Label, "level ")
}

func TestPointerScript(t *testing.T) {
	c := game.DefaultConfig()
	g := game.New(motion.NewClock(), c, nil, nil)
	defer g.Dispose()

	p := pointerAt(c, g, 1, 10)
	require.NotNil(t, p.Hover)
	assert.Nil(t, p.LClick)
	assert.Nil(t, p.RClick)

	p = pointerAt(c, g, 20, 10)
	assert.NotNil(t, p.LClick)
	p = pointerAt(c, g, 30, 10)
	assert.NotNil(t, p.RClick)
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger(config.LoggingConfig{}, true)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.ErrorLevel), "terminal frontend logs nowhere by default")

	log, err = newLogger(config.LoggingConfig{Debug: true, File: filepath.Join(t.TempDir(), "sprig.log")}, true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))
}

func TestSimCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"sim", "--frames", "60", "-c", filepath.Join(t.TempDir(), "none.yaml")})
	t.Setenv("SPRIG_LOG_FILE", filepath.Join(t.TempDir(), "sim.log"))
	require.NoError(t, rootCmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "state:"))
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "sprig "))
}
