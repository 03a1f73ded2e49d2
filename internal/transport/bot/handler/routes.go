package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"mpin_check/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, allowedChatIDs ...int64) {
	group := bh.Group(th.AnyMessage())
	group.Use(middleware.AllowedChats(allowedChatIDs...))

	group.HandleMessage(h.OnStart, th.CommandEqual("start"))
	group.HandleMessage(h.OnStart, th.CommandEqual("help"))
	group.HandleMessage(h.OnCheck, th.CommandEqual("check"))
}
