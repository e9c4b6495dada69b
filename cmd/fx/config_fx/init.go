package config_fx

import (
	"log/slog"

	"go.uber.org/fx"

	"guidechat/internal/config"
	"guidechat/internal/conversation"
	"guidechat/pkg/logging"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
	provideScript,
)

func provideLogger(cfg *config.Config) *slog.Logger {
	return logging.Init(cfg.SlogLevel())
}

func provideScript(cfg *config.Config, logger *slog.Logger) (conversation.Script, error) {
	script, err := conversation.LoadScript(cfg.ScriptFile)
	if err != nil {
		return conversation.Script{}, err
	}
	logger.Info("Loaded onboarding script",
		"questions", len(script.Questions),
		"options", len(script.Options),
		"file", cfg.ScriptFile)
	return script, nil
}
