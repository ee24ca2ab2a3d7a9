package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/cubular/audio"
	"github.com/lixenwraith/cubular/config"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Audio.Enabled = false
	return cfg
}

// checksumLine extracts the checksum row of headless output
func checksumLine(t *testing.T, out string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "checksum") {
			return line
		}
	}
	t.Fatalf("no checksum in output:\n%s", out)
	return ""
}

func TestRunHeadlessDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, runHeadless(testConfig(), 120, zap.NewNop(), &a))
	require.NoError(t, runHeadless(testConfig(), 120, zap.NewNop(), &b))

	assert.Contains(t, a.String(), "frames   120")
	assert.Equal(t, checksumLine(t, a.String()), checksumLine(t, b.String()))

	cfg := testConfig()
	cfg.Simulation.Seed = 99
	var c bytes.Buffer
	require.NoError(t, runHeadless(cfg, 120, zap.NewNop(), &c))
	assert.NotEqual(t, checksumLine(t, a.String()), checksumLine(t, c.String()))
}

func TestFrameInterval(t *testing.T) {
	cfg := testConfig()
	cfg.Simulation.FrameRate = 50
	assert.Equal(t, 20*time.Millisecond, frameInterval(cfg))

	cfg.Simulation.FrameRate = 0
	assert.Equal(t, 16*time.Millisecond, frameInterval(cfg))
}

func newTestApp(t *testing.T) (*app, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 40)

	cfg := testConfig()
	a, err := newApp(screen, cfg, audio.NewManager(cfg.Audio, nil), zap.NewNop())
	require.NoError(t, err)
	a.interval = time.Millisecond
	return a, screen
}

func TestAppStopsAfterFrames(t *testing.T) {
	a, _ := newTestApp(t)
	a.frames = 5

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, a.run(ctx))
	assert.Equal(t, uint64(5), a.sim.Frame())
}

func TestAppQuitsOnEscape(t *testing.T) {
	a, screen := newTestApp(t)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, a.run(ctx))
	assert.NoError(t, ctx.Err(), "quit before timeout")
}

func TestAppHandle(t *testing.T) {
	a, _ := newTestApp(t)

	assert.False(t, a.handle(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone)))
	assert.True(t, a.sound.Muted())

	assert.False(t, a.handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.True(t, a.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
}

func TestAppPollSwitchesAndPans(t *testing.T) {
	a, _ := newTestApp(t)
	start := a.term.View().Center

	a.handle(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	a.poll()
	assert.NotEqual(t, start, a.term.View().Center, "free view pans")

	a.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	a.poll()
	assert.Equal(t, 1, a.term.ViewIndex())

	// Other views stay fixed
	center := a.term.View().Center
	a.poll()
	assert.Equal(t, center, a.term.View().Center)
}
