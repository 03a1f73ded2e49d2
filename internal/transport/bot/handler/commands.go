package handler

import (
	"context"
	"fmt"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"mpin_check/internal/domain/entity"
	service "mpin_check/internal/domain/service/pin"
	"mpin_check/internal/transport/bot/view"
	"mpin_check/pkg/logx"
)

// "-" в позиции даты - дата не указана.
const emptyDateArg = "-"

// PIN и три даты.
const maxCheckArgs = 4

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

// OnCheck /check <pin> [dob] [spouse_dob] [anniversary]
func (h *Handler) OnCheck(ctx *th.Context, msg telego.Message) error {
	args := strings.Fields(msg.Text)
	if len(args) > 0 {
		args = args[1:]
	}

	return h.sendHTML(ctx, msg.Chat.ID, h.CheckReply(ctx, args))
}

// CheckReply текст ответа на /check по аргументам команды.
func (h *Handler) CheckReply(ctx context.Context, args []string) string {
	if len(args) == 0 || len(args) > maxCheckArgs {
		return view.CheckUsage
	}

	var dates [maxCheckArgs - 1]string

	for i, arg := range args[1:] {
		if arg != emptyDateArg {
			dates[i] = arg
		}
	}

	result, err := h.svc.Check(ctx, service.CheckInput{
		PIN:         args[0],
		UserDOB:     dates[0],
		SpouseDOB:   dates[1],
		Anniversary: dates[2],
	})
	if err != nil {
		if failure.IsInvalidArgumentError(err) {
			return fmt.Sprintf(view.CheckRejected, failure.Description(err))
		}

		logger(ctx).Error("svc.Check", logx.Error(err))

		return view.InternalError
	}

	if result.Verdict.Strength == entity.StrengthStrong {
		return view.CheckStrong
	}

	return fmt.Sprintf(view.CheckWeak, result.FormattedReasons)
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML))
	if err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}
