package mm

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func quiet() (*MessageMaker, *bytes.Buffer) {
	var b bytes.Buffer
	m := NewMessageMaker("BERTopic Board", "BTB", "0.0.0")
	m.BW = true
	m.Out = &b
	return m, &b
}

func TestEmitRespectsThreshold(t *testing.T) {
	m, b := quiet()
	m.LLvl = MSGNOTE

	m.CRIT("crit")
	m.NOTE("note")
	m.FYI("fyi")
	m.TMI("tmi")

	assert.Equal(t, "[BTB] crit\n[BTB] note\n", b.String())
}

func TestColorAndStyleBlackAndWhite(t *testing.T) {
	m, _ := quiet()
	assert.Equal(t, "[git: abc123]", m.Color("[git: C4abc123C0]"))
	assert.Equal(t, "Built: today", m.Styled("S1Built:S0 today"))
	assert.Equal(t, "port 8501", m.ColStyle("S1port C38501C0S0"))
}

func TestPathStats(t *testing.T) {
	m, _ := quiet()
	m.LogPaths("RtResults()")
	m.LogPaths("RtHome()")
	m.LogPaths("RtResults()")
	assert.Equal(t, "Home: 1 * Results: 2", m.PathStats())
}

func TestLogPathsReportsUse(t *testing.T) {
	m, b := quiet()
	m.LLvl = MSGPEEK
	m.LogPaths("RtHome()")
	m.LogPaths("RtTrendByDatePNG()")
	assert.Contains(t, b.String(), "[BTB] routes used: Home: 1 * TrendByDatePNG: 1\n")
	assert.NotContains(t, b.String(), "current heap")

	b.Reset()
	m.LLvl = MSGNOTE
	m.LogPaths("RtHome()")
	assert.Empty(t, b.String())
}

func TestTimer(t *testing.T) {
	m, b := quiet()
	m.LLvl = MSGFYI
	now := time.Now()
	m.Timer("A1", "loaded", now, now)
	assert.Contains(t, b.String(), "[A1: ")
	assert.Contains(t, b.String(), "loaded")
}
