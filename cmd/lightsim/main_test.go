package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"motionlight/bus"
	"motionlight/errcode"
	"motionlight/services/config"
	"motionlight/services/hal/platform"
	"motionlight/services/motion"
	"motionlight/types"
	"motionlight/x/logx"
)

func TestLoadConfig_ProfileAndFile(t *testing.T) {
	cfg, err := loadConfig("pir-only", "")
	require.NoError(t, err)
	require.Equal(t, config.ModePIRTest, cfg.Mode)

	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: showcase\ncolor: cyan\n"), 0o600))
	cfg, err = loadConfig("default", path)
	require.NoError(t, err)
	require.Equal(t, config.ModeShowcase, cfg.Mode)
	require.Equal(t, types.Cyan, cfg.Color.RGB())

	_, err = loadConfig("nope", "")
	require.Equal(t, errcode.InvalidParams, errcode.Of(err))

	_, err = loadConfig("default", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestKeyboard_DrivesPins(t *testing.T) {
	h, err := platform.NewHostBoard(config.Default().Pins)
	require.NoError(t, err)
	var out bytes.Buffer
	log := logx.NewJSON(&out, logx.LevelInfo)

	quit := 0
	keyboard(strings.NewReader("b\nm\ns\nq\nb\n"), h, log, func() { quit++ })

	require.Equal(t, 1, quit)
	require.True(t, h.Board.Button.Asserted())
	require.True(t, h.Board.PIR.Asserted())
	require.Contains(t, out.String(), `"message":"strip"`)
}

func TestWatch_LogsPhaseEvents(t *testing.T) {
	h, err := platform.NewHostBoard(config.Default().Pins)
	require.NoError(t, err)
	var out bytes.Buffer
	log := logx.NewJSON(&out, logx.LevelInfo)

	b := bus.NewBus(4)
	conn := b.NewConnection("test")
	sub := conn.Subscribe(bus.T("motion", "#"))
	motion.BusObserver{Conn: conn}.OnPhase(types.PhaseIdleWait, types.PhaseFadeIn,
		&motion.Session{ID: "s1", Trigger: types.TriggerMotion})
	conn.Disconnect()

	watch(sub, h, log)
	require.Contains(t, out.String(), `"phase":"fade_in"`)
	require.Contains(t, out.String(), `"session":"s1"`)
}
