package conversation

// State is the per-session progress through the script.
type State struct {
	NextQuestion int      `json:"next_question"`
	Responses    []string `json:"responses"`
}

// NewState returns the state of a freshly initiated conversation.
func NewState() State {
	return State{NextQuestion: 0, Responses: []string{}}
}

// InAssistantPhase reports whether every further turn goes to the assistant.
func (s State) InAssistantPhase(questionCount int) bool {
	return s.NextQuestion >= questionCount
}

// History returns a copy of the recorded responses.
func (s State) History() []string {
	out := make([]string, len(s.Responses))
	copy(out, s.Responses)
	return out
}
