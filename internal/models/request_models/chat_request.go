package request_models

// ChatTurnRequest is one submitted turn. The chat page posts it form-encoded,
// API clients may send JSON.
type ChatTurnRequest struct {
	UserInput string `form:"user_input" json:"user_input"`
}
