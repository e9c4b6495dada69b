package session_fx

import (
	"fmt"

	"go.uber.org/fx"

	"guidechat/internal/config"
	"guidechat/internal/conversation"
	mem "guidechat/pkg/memcache"
	"guidechat/pkg/session"
	"guidechat/pkg/utils"
)

var Module = fx.Provide(
	provideSigner,
	provideSessionStore,
)

func provideSigner(cfg *config.Config) (*utils.Signer, error) {
	return utils.NewSigner(cfg.Session.Secret)
}

type storeParams struct {
	fx.In

	Config  *config.Config
	Signer  *utils.Signer
	Entries mem.SessionEntryStore[conversation.State]
}

func provideSessionStore(p storeParams) (session.Store, error) {
	opts := session.CookieOptions{
		Name:   p.Config.Session.CookieName,
		Secure: p.Config.Session.CookieSecure,
		TTL:    p.Config.Session.TTL,
	}

	switch p.Config.Session.Backend {
	case "cookie":
		return session.NewCookieStore(p.Signer, opts), nil
	case "memory":
		return session.NewMemoryStore(p.Signer, p.Entries, opts), nil
	default:
		return nil, fmt.Errorf("unsupported session backend: %s", p.Config.Session.Backend)
	}
}
