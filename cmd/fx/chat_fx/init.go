package chat_fx

import (
	"log/slog"

	"go.uber.org/fx"

	"guidechat/internal/assistant"
	"guidechat/internal/conversation"
	"guidechat/internal/metrics"
	"guidechat/internal/services"
)

var Module = fx.Provide(
	conversation.NewTracker,
	provideChatService,
)

func provideChatService(
	tracker *conversation.Tracker,
	builder *assistant.Builder,
	recorder metrics.Recorder,
	logger *slog.Logger,
) services.ChatServiceInterface {
	return services.NewChatService(tracker, builder, recorder, logger)
}
