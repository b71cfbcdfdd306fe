package bots

import (
	"context"
	"fmt"

	tg "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/silh/garcombot/pkg/domain"
)

type WhichTableState struct {
	tables []domain.Mesa
}

func (s *WhichTableState) String() string {
	return "WhichTableState"
}

func (s *WhichTableState) To(ctx context.Context, fsm *FSM, msg *tg.Message, _ *Bot) {
	toSend := newMessage(msg, "Qual mesa?")
	toSend.ReplyMarkup = s.makeReplyKeyboard()
	fsm.send(ctx, toSend, msg)
}

func (s *WhichTableState) Do(ctx context.Context, fsm *FSM, msg *tg.Message, bot *Bot) {
	table, ok := s.tableFor(msg.Text)
	if !ok {
		toSend := newMessage(
			msg,
			fmt.Sprintf("%q não é uma mesa válida, escolha uma das mesas nos botões.", msg.Text),
		)
		toSend.ReplyMarkup = s.makeReplyKeyboard()
		fsm.send(ctx, toSend, msg)
		return
	}
	products, err := bot.backend.ListProducts(ctx)
	if err != nil {
		fsm.send(ctx, newMessage(msg, errorReply(wizardCommand, err, fsm.log)), msg)
		fsm.To(ctx, doneState, msg)
		return
	}
	if len(products) == 0 {
		fsm.send(ctx, newMessage(msg, "Nenhum produto disponível no momento."), msg)
		fsm.To(ctx, doneState, msg)
		return
	}
	fsm.To(ctx, &WhichItemsState{table: table, products: products}, msg)
}

func (s *WhichTableState) tableFor(text string) (domain.Mesa, bool) {
	for _, table := range s.tables {
		if tableLabel(table) == text {
			return table, true
		}
	}
	return domain.Mesa{}, false
}

func (s *WhichTableState) makeReplyKeyboard() tg.ReplyKeyboardMarkup {
	const perRow = 3
	rows := make([][]tg.KeyboardButton, 0, len(s.tables)/perRow+1)
	row := make([]tg.KeyboardButton, 0, perRow)
	for _, table := range s.tables {
		row = append(row, tg.NewKeyboardButton(tableLabel(table)))
		if len(row) == perRow {
			rows = append(rows, row)
			row = make([]tg.KeyboardButton, 0, perRow)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	keyboard := tg.NewOneTimeReplyKeyboard(rows...)
	keyboard.Selective = true
	return keyboard
}
