package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/samber/oops"
)

const DefaultSystemPrompt = "You are a helpful assistant."

type BuilderConfig struct {
	Model        string
	SystemPrompt string
	Timeout      time.Duration
}

// Builder turns a session's recorded answers plus a new input into one
// completion request.
type Builder struct {
	completer Completer
	cfg       BuilderConfig
}

func NewBuilder(completer Completer, cfg BuilderConfig) *Builder {
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}
	return &Builder{completer: completer, cfg: cfg}
}

func (b *Builder) Model() string {
	return b.cfg.Model
}

func (b *Builder) Provider() string {
	return b.completer.Provider()
}

// Messages builds the system instruction, one user entry per recorded
// response and the new input as the final user entry.
func (b *Builder) Messages(history []string, input string) []Message {
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: RoleSystem, Content: b.cfg.SystemPrompt})
	for _, h := range history {
		messages = append(messages, Message{Role: RoleUser, Content: h})
	}
	return append(messages, Message{Role: RoleUser, Content: input})
}

// Reply asks the assistant for a single completion. It never retries.
func (b *Builder) Reply(ctx context.Context, history []string, input string) Result {
	messages := b.Messages(history, input)

	if b.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.cfg.Timeout)
		defer cancel()
	}

	reply, err := b.completer.Complete(ctx, b.cfg.Model, messages)
	if err == nil && strings.TrimSpace(reply) == "" {
		// Length or content-filter stops can come back without any text.
		err = ErrEmptyCompletion
	}
	if err == nil {
		return Result{Kind: ResultReply, Reply: reply}
	}

	if errors.Is(err, ErrRateLimited) {
		return Result{Kind: ResultRateLimited, Err: err}
	}

	return Result{
		Kind: ResultServiceError,
		Err: oops.
			In("assistant").
			With("provider", b.completer.Provider()).
			With("model", b.cfg.Model).
			With("messages", len(messages)).
			Wrapf(err, "error from %s API", b.completer.Provider()),
	}
}
