package memcache_fx

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"guidechat/internal/conversation"
	mem "guidechat/pkg/memcache"
)

const sweepInterval = time.Minute

var Module = fx.Provide(provideSessionEntries)

func provideSessionEntries(lc fx.Lifecycle, logger *slog.Logger) mem.SessionEntryStore[conversation.State] {
	entries := mem.NewSessionEntries[conversation.State]()

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go entries.RunJanitor(ctx, sweepInterval, func(removed int) {
				logger.Debug("Swept expired sessions", "removed", removed)
			})
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})

	return entries
}
