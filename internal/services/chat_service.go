package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"guidechat/internal/assistant"
	"guidechat/internal/conversation"
	"guidechat/internal/metrics"
	"guidechat/pkg/utils"
)

// TurnResult is what one turn shows the user.
type TurnResult struct {
	Kind     conversation.StepKind
	Question string
	Options  []string
	Reply    string
}

type ChatServiceInterface interface {
	Start(ctx context.Context) (TurnResult, conversation.State)
	Submit(ctx context.Context, state conversation.State, input string) (TurnResult, conversation.State, error)
}

// AssistantReplier is the part of assistant.Builder the chat service needs.
type AssistantReplier interface {
	Reply(ctx context.Context, history []string, input string) assistant.Result
	Provider() string
	Model() string
}

type ChatService struct {
	tracker   *conversation.Tracker
	assistant AssistantReplier
	recorder  metrics.Recorder
	logger    *slog.Logger
}

func NewChatService(
	tracker *conversation.Tracker,
	replier AssistantReplier,
	recorder metrics.Recorder,
	logger *slog.Logger,
) ChatServiceInterface {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatService{
		tracker:   tracker,
		assistant: replier,
		recorder:  recorder,
		logger:    logger,
	}
}

func (s *ChatService) Start(ctx context.Context) (TurnResult, conversation.State) {
	step, state := s.tracker.Start()
	s.logger.DebugContext(ctx, "Conversation started")
	return TurnResult{Kind: step.Kind, Question: step.Question}, state
}

// Submit runs one turn. The returned state must be stored by the caller even
// when the assistant call fails; on input validation errors it equals state.
func (s *ChatService) Submit(ctx context.Context, state conversation.State, input string) (TurnResult, conversation.State, error) {
	step, next, err := s.tracker.Advance(state, input)
	if err != nil {
		return TurnResult{}, state, fmt.Errorf("%w: %w", utils.ErrInvalidInput, err)
	}
	s.recorder.ObserveTurn(step.Kind.String())

	switch step.Kind {
	case conversation.StepQuestion:
		s.logger.DebugContext(ctx, "Scripted question", "index", next.NextQuestion)
		return TurnResult{Kind: step.Kind, Question: step.Question}, next, nil
	case conversation.StepOptions:
		s.logger.DebugContext(ctx, "Scripted questions answered, offering options", "responses", len(next.Responses))
		return TurnResult{Kind: step.Kind, Options: step.Options}, next, nil
	}

	start := time.Now()
	res := s.assistant.Reply(ctx, step.History, step.Input)
	s.recorder.ObserveAssistant(s.assistant.Provider(), s.assistant.Model(), res.Kind.String(), time.Since(start))

	if res.OK() {
		return TurnResult{Kind: step.Kind, Reply: res.Reply}, next, nil
	}
	if res.Kind == assistant.ResultRateLimited {
		return TurnResult{Kind: step.Kind}, next, fmt.Errorf("%w: %w", utils.ErrAssistantLimit, res.Err)
	}
	return TurnResult{Kind: step.Kind}, next, fmt.Errorf("%w: %w", utils.ErrAssistantFailed, res.Err)
}
