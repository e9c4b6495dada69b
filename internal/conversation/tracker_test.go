package conversation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScript() Script {
	return Script{
		Questions: []string{"q1", "q2", "q3", "q4"},
		Options:   []string{"roadmap", "guidance", "other"},
	}
}

func newTracker(t *testing.T, script Script) *Tracker {
	t.Helper()
	tr, err := NewTracker(script)
	require.NoError(t, err)
	return tr
}

func TestNewTrackerRejectsUnusableScript(t *testing.T) {
	cases := map[string]Script{
		"empty":        {},
		"no questions": {Options: []string{"x"}},
		"no options":   {Questions: []string{"q1"}},
		"blank option": {Questions: []string{"q1"}, Options: []string{" "}},
	}
	for name, script := range cases {
		t.Run(name, func(t *testing.T) {
			tr, err := NewTracker(script)
			assert.Error(t, err)
			assert.Nil(t, tr)
		})
	}
}

func TestStartReturnsFirstQuestion(t *testing.T) {
	tr := newTracker(t, testScript())

	step, state := tr.Start()

	assert.Equal(t, StepQuestion, step.Kind)
	assert.Equal(t, "q1", step.Question)
	assert.Equal(t, 0, state.NextQuestion)
	assert.Empty(t, state.Responses)
}

func TestScriptedTurnsThenOptions(t *testing.T) {
	tr := newTracker(t, testScript())
	_, state := tr.Start()

	want := []string{"q2", "q3", "q4"}
	for i, input := range []string{"A", "B", "C"} {
		step, next, err := tr.Advance(state, input)
		require.NoError(t, err)
		assert.Equal(t, StepQuestion, step.Kind)
		assert.Equal(t, want[i], step.Question)
		assert.Equal(t, i+1, next.NextQuestion)
		state = next
	}

	step, state, err := tr.Advance(state, "D")
	require.NoError(t, err)
	assert.Equal(t, StepOptions, step.Kind)
	assert.Equal(t, []string{"roadmap", "guidance", "other"}, step.Options)
	assert.Equal(t, 4, state.NextQuestion)
	assert.Equal(t, []string{"A", "B", "C", "D"}, state.Responses)
}

func TestAssistantPhaseAfterOptions(t *testing.T) {
	tr := newTracker(t, testScript())
	_, state := tr.Start()
	for _, input := range []string{"A", "B", "C", "D"} {
		var err error
		_, state, err = tr.Advance(state, input)
		require.NoError(t, err)
	}

	step, state, err := tr.Advance(state, "guidance")
	require.NoError(t, err)
	assert.Equal(t, StepAssistant, step.Kind)
	assert.Equal(t, []string{"A", "B", "C", "D"}, step.History)
	assert.Equal(t, "guidance", step.Input)
	assert.Equal(t, []string{"A", "B", "C", "D", "guidance"}, state.Responses)

	step, state, err = tr.Advance(state, "E")
	require.NoError(t, err)
	assert.Equal(t, StepAssistant, step.Kind)
	assert.Equal(t, []string{"A", "B", "C", "D", "guidance"}, step.History)
	assert.Equal(t, 4, state.NextQuestion)
}

func TestOptionsReturnedOnlyOnce(t *testing.T) {
	tr := newTracker(t, testScript())
	_, state := tr.Start()

	kinds := make([]StepKind, 0, 10)
	for i := 0; i < 10; i++ {
		step, next, err := tr.Advance(state, fmt.Sprintf("turn %d", i))
		require.NoError(t, err)
		kinds = append(kinds, step.Kind)
		state = next
	}

	options := 0
	for _, k := range kinds {
		if k == StepOptions {
			options++
		}
	}
	assert.Equal(t, 1, options)
	assert.Equal(t, StepOptions, kinds[3])
	for _, k := range kinds[4:] {
		assert.Equal(t, StepAssistant, k)
	}
}

func TestEmptyInputLeavesStateUntouched(t *testing.T) {
	tr := newTracker(t, testScript())
	_, state := tr.Start()

	inputs := []string{"A", "B", "C", "D", "E"}
	for _, input := range inputs {
		for _, bad := range []string{"", "   ", "\n\t"} {
			_, after, err := tr.Advance(state, bad)
			require.ErrorIs(t, err, ErrEmptyInput)
			assert.Equal(t, state, after)
		}
		var err error
		_, state, err = tr.Advance(state, input)
		require.NoError(t, err)
	}
}

func TestAdvanceDoesNotAliasCallerState(t *testing.T) {
	tr := newTracker(t, testScript())
	state := State{NextQuestion: 1, Responses: make([]string, 1, 8)}
	state.Responses[0] = "A"

	_, first, err := tr.Advance(state, "B")
	require.NoError(t, err)
	_, second, err := tr.Advance(state, "X")
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, state.Responses)
	assert.Equal(t, []string{"A", "B"}, first.Responses)
	assert.Equal(t, []string{"A", "X"}, second.Responses)
}

func TestStartDiscardsPriorProgress(t *testing.T) {
	tr := newTracker(t, testScript())
	_, state := tr.Start()
	for _, input := range []string{"A", "B", "C", "D", "E", "F"} {
		var err error
		_, state, err = tr.Advance(state, input)
		require.NoError(t, err)
	}
	require.True(t, state.InAssistantPhase(4))

	step, fresh := tr.Start()
	assert.Equal(t, "q1", step.Question)
	assert.Equal(t, NewState(), fresh)

	next, _, err := tr.Advance(fresh, "A")
	require.NoError(t, err)
	assert.Equal(t, "q2", next.Question)
}

func TestInputStoredVerbatim(t *testing.T) {
	tr := newTracker(t, testScript())
	_, state := tr.Start()

	_, state, err := tr.Advance(state, "  padded answer ")
	require.NoError(t, err)
	assert.Equal(t, []string{"  padded answer "}, state.Responses)
}

func TestSingleQuestionScript(t *testing.T) {
	tr := newTracker(t, Script{Questions: []string{"only"}, Options: []string{"x"}})
	step, state := tr.Start()
	assert.Equal(t, "only", step.Question)

	step, state, err := tr.Advance(state, "A")
	require.NoError(t, err)
	assert.Equal(t, StepOptions, step.Kind)

	step, _, err = tr.Advance(state, "x")
	require.NoError(t, err)
	assert.Equal(t, StepAssistant, step.Kind)
	assert.Equal(t, []string{"A"}, step.History)
}
