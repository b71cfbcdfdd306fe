package bots

import (
	"context"

	tg "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type DoneState struct {
}

func (s *DoneState) String() string {
	return "DoneState"
}

func (s *DoneState) To(_ context.Context, fsm *FSM, _ *tg.Message, bot *Bot) {
	if bot.sessions[fsm.key] == fsm {
		delete(bot.sessions, fsm.key)
	}
	fsm.log.Debug("We are done")
}

func (s *DoneState) Do(_ context.Context, fsm *FSM, msg *tg.Message, _ *Bot) {
	fsm.log.Errorw("Message for a finished wizard", "text", msg.Text)
}
