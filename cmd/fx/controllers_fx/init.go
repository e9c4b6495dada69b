package controllers_fx

import (
	"go.uber.org/fx"

	"guidechat/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewHealthController))
