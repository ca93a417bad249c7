package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wild-friends/pkg/geom"
)

func TestAutopilot_FinishesSession(t *testing.T) {
	opts := testOptions()
	opts.StartingDeck = nil
	g := NewGame(opts)

	report := NewAutopilot(g, 1, 3).Run(20000)

	require.True(t, g.IsOver(), "session ends within the tick budget")
	assert.Equal(t, "Victory", report.Phase)
	assert.Equal(t, 2, report.WavesWon)
	assert.Equal(t, 1, report.Correct)
	assert.Zero(t, report.Wrong)
	assert.Equal(t, g.SessionID, report.SessionID)
	assert.NotEmpty(t, g.Placements(), "autopilot bought and deployed cards")
}

func TestAutopilot_WrongAnswers(t *testing.T) {
	g := NewGame(testOptions())
	NewAutopilot(g, 0, 3).Run(20000)

	assert.Zero(t, g.Log.Count("quiz", "correct"))
	assert.Equal(t, 1, g.Log.Count("quiz", "wrong"))
}

func TestDeploySlot(t *testing.T) {
	assert.Equal(t, geom.Vec2{X: 0, Y: -2 * autopilotSpacing}, deploySlot(0))
	assert.Equal(t, geom.Vec2{X: 0, Y: 2 * autopilotSpacing}, deploySlot(4))
	assert.Equal(t, geom.Vec2{X: -autopilotSpacing, Y: -2 * autopilotSpacing}, deploySlot(5))
}

func TestWrongLetter(t *testing.T) {
	assert.Equal(t, "B", wrongLetter("A", 4))
	assert.Equal(t, "A", wrongLetter("D", 4))
	assert.Equal(t, "?", wrongLetter("A", 1))
}
