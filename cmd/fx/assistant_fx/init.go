package assistant_fx

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"guidechat/internal/assistant"
	"guidechat/internal/config"
)

var Module = fx.Provide(
	ProvideCompleter,
	ProvideBuilder,
)

// ProvideCompleter creates the chat-completion client selected by ASSISTANT_PROVIDER.
func ProvideCompleter(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (assistant.Completer, error) {
	a := cfg.Assistant
	logger.Info("Initializing assistant client", "provider", a.Provider, "model", a.Model())

	switch a.Provider {
	case "openai":
		return assistant.NewOpenAICompleter(a.OpenAIAPIKey, a.OpenAIBaseURL), nil
	case "gemini":
		client, err := assistant.NewGeminiCompleter(context.Background(), a.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported assistant provider: %s. Use 'openai' or 'gemini'", a.Provider)
	}
}

func ProvideBuilder(completer assistant.Completer, cfg *config.Config) *assistant.Builder {
	return assistant.NewBuilder(completer, assistant.BuilderConfig{
		Model:        cfg.Assistant.Model(),
		SystemPrompt: cfg.Assistant.SystemPrompt,
		Timeout:      cfg.Assistant.Timeout,
	})
}
