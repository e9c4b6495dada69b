package response_models

// ChatResponse is the JSON body of every chat endpoint. Exactly one of
// Question, Options, Response or Error is set.
type ChatResponse struct {
	Question string   `json:"question,omitempty"`
	Options  []string `json:"options,omitempty"`
	Response string   `json:"response,omitempty"`
	Error    string   `json:"error,omitempty"`
	TraceID  string   `json:"trace_id,omitempty"`
}

// ChatPage is the data of the rendered chat template.
type ChatPage struct {
	InitialQuestion string
	TraceID         string
}

type HealthResponse struct {
	Status string `json:"status"`
}
