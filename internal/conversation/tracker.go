package conversation

import (
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyInput = errors.New("user input is empty")

// StepKind tells the caller what a turn produced.
type StepKind int

const (
	// StepQuestion carries the next scripted question.
	StepQuestion StepKind = iota
	// StepOptions carries the option set. It is produced exactly once per session.
	StepOptions
	// StepAssistant means the turn must be answered by the assistant.
	StepAssistant
)

func (k StepKind) String() string {
	switch k {
	case StepQuestion:
		return "question"
	case StepOptions:
		return "options"
	case StepAssistant:
		return "assistant"
	default:
		return "unknown"
	}
}

// Step is the tracker's verdict for one turn.
type Step struct {
	Kind     StepKind
	Question string
	Options  []string
	// History holds the responses recorded before this turn. Set only for StepAssistant.
	History []string
	Input   string
}

// Tracker drives the scripted part of a conversation. It holds no session
// data itself: state goes in and comes back out of every call.
type Tracker struct {
	script Script
}

// NewTracker rejects scripts without questions or options, so Start and
// Advance never index past the script.
func NewTracker(script Script) (*Tracker, error) {
	if err := script.Validate(); err != nil {
		return nil, fmt.Errorf("tracker: %w", err)
	}
	return &Tracker{script: script}, nil
}

// Start discards any previous progress and returns the first question.
func (t *Tracker) Start() (Step, State) {
	return Step{Kind: StepQuestion, Question: t.script.First()}, NewState()
}

// Advance records one user response and decides what comes next. On error the
// returned state is the one passed in.
func (t *Tracker) Advance(state State, input string) (Step, State, error) {
	if strings.TrimSpace(input) == "" {
		return Step{}, state, ErrEmptyInput
	}

	next := State{
		NextQuestion: state.NextQuestion,
		Responses:    append(state.History(), input),
	}

	count := len(t.script.Questions)
	if !state.InAssistantPhase(count) {
		next.NextQuestion++
		if next.NextQuestion < count {
			return Step{Kind: StepQuestion, Question: t.script.Questions[next.NextQuestion], Input: input}, next, nil
		}
		options := make([]string, len(t.script.Options))
		copy(options, t.script.Options)
		return Step{Kind: StepOptions, Options: options, Input: input}, next, nil
	}

	return Step{Kind: StepAssistant, History: state.History(), Input: input}, next, nil
}
