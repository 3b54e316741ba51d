package timer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/studytimer/internal/session"
)

func TestPhaseText(t *testing.T) {
	b, err := json.Marshal(State{Phase: LongBreak})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"phase":"long_break"`)

	var s State

	require.NoError(t, json.Unmarshal([]byte(`{"phase":"short_break"}`), &s))
	assert.Equal(t, ShortBreak, s.Phase)

	assert.Error(t, json.Unmarshal([]byte(`{"phase":"nap"}`), &s))
}

func TestPhaseKind(t *testing.T) {
	assert.Equal(t, session.Focus, Work.Kind())
	assert.Equal(t, session.ShortBreak, ShortBreak.Kind())
	assert.Equal(t, session.LongBreak, LongBreak.Kind())
	assert.False(t, Work.IsBreak())
	assert.True(t, LongBreak.IsBreak())
}
