package assistant

import (
	"context"
	"errors"
)

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ErrRateLimited is returned (possibly wrapped) by a Completer when the
// provider refuses the request because of rate limiting or quota.
var ErrRateLimited = errors.New("assistant rate limited")

// ErrEmptyCompletion means the provider answered without any text.
var ErrEmptyCompletion = errors.New("assistant returned no completion")

// Completer is the external chat-completion capability.
type Completer interface {
	Complete(ctx context.Context, model string, messages []Message) (string, error)
	Provider() string
}

// ResultKind tags the outcome of a Builder.Reply call.
type ResultKind int

const (
	ResultReply ResultKind = iota
	ResultRateLimited
	ResultServiceError
)

func (k ResultKind) String() string {
	switch k {
	case ResultReply:
		return "reply"
	case ResultRateLimited:
		return "rate_limited"
	case ResultServiceError:
		return "service_error"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of an assistant call. Reply is set for
// ResultReply, Err for the two failure kinds.
type Result struct {
	Kind  ResultKind
	Reply string
	Err   error
}

// OK reports whether the call produced a reply.
func (r Result) OK() bool {
	return r.Kind == ResultReply
}
