package bots

import (
	"context"
	"fmt"

	tg "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/silh/garcombot/pkg/domain"
	"go.uber.org/zap"
)

// FSM is the order wizard of one person in one chat.
type FSM struct {
	key domain.SessionKey
	log *zap.SugaredLogger
	bot *Bot

	state State
}

func NewFSM(key domain.SessionKey, bot *Bot) *FSM {
	return &FSM{
		key: key,
		log: log.With("chat", key.ChatID, "user", key.UserID),
		bot: bot,
	}
}

func (fsm *FSM) To(ctx context.Context, newState State, msg *tg.Message) {
	fsm.log.Debugw("State transition", "from", fsm.state, "to", newState)
	fsm.state = newState
	fsm.state.To(ctx, fsm, msg, fsm.bot)
}

func (fsm *FSM) Do(ctx context.Context, msg *tg.Message) {
	fsm.state.Do(ctx, fsm, msg, fsm.bot)
}

// send replies to msg so that selective keyboards only show up for the person running the wizard.
// A message that fails to send ends the wizard.
func (fsm *FSM) send(ctx context.Context, toSend tg.MessageConfig, msg *tg.Message) {
	if _, err := fsm.bot.API.Send(toSend); err != nil {
		fsm.log.Warnw("Failed to send message", "msg", toSend.Text, "err", err)
		if fsm.state != doneState {
			fsm.To(ctx, doneState, msg)
		}
	}
}

type State interface {
	fmt.Stringer
	// To is called when the FSM enters the state.
	To(ctx context.Context, fsm *FSM, msg *tg.Message, bot *Bot)
	// Do handles a plain text message while in the state.
	Do(ctx context.Context, fsm *FSM, msg *tg.Message, bot *Bot)
}

var doneState = &DoneState{}

func newMessage(msg *tg.Message, text string) tg.MessageConfig {
	message := tg.NewMessage(msg.Chat.ID, text)
	message.ReplyToMessageID = msg.MessageID
	message.ReplyMarkup = tg.ReplyKeyboardRemove{RemoveKeyboard: true, Selective: true}
	return message
}
