package bots

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tg "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/silh/garcombot/pkg/domain"
)

const finishButton = "✅ Finalizar"

type WhichItemsState struct {
	table    domain.Mesa
	products []domain.Produto
	items    []string
}

func (s *WhichItemsState) String() string {
	return "WhichItemsState"
}

func (s *WhichItemsState) To(ctx context.Context, fsm *FSM, msg *tg.Message, _ *Bot) {
	toSend := newMessage(
		msg,
		fmt.Sprintf("%s selecionada. Escolha os itens e toque em Finalizar.", tableLabel(s.table)),
	)
	toSend.ReplyMarkup = s.makeReplyKeyboard()
	fsm.send(ctx, toSend, msg)
}

func (s *WhichItemsState) Do(ctx context.Context, fsm *FSM, msg *tg.Message, bot *Bot) {
	if msg.Text == finishButton {
		s.finish(ctx, fsm, msg, bot)
		return
	}
	var text string
	if product, ok := s.productFor(msg.Text); ok {
		s.items = append(s.items, product.Nome)
		text = fmt.Sprintf(
			"Adicionado: %s (%d %s). Escolha mais itens ou toque em Finalizar.",
			product.Nome, len(s.items), pluralItems(len(s.items)),
		)
	} else {
		text = fmt.Sprintf("%q não está no cardápio, escolha um dos produtos nos botões.", msg.Text)
	}
	toSend := newMessage(msg, text)
	toSend.ReplyMarkup = s.makeReplyKeyboard()
	fsm.send(ctx, toSend, msg)
}

func (s *WhichItemsState) finish(ctx context.Context, fsm *FSM, msg *tg.Message, bot *Bot) {
	if len(s.items) == 0 {
		toSend := newMessage(msg, "Nenhum item escolhido ainda. Escolha ao menos um produto.")
		toSend.ReplyMarkup = s.makeReplyKeyboard()
		fsm.send(ctx, toSend, msg)
		return
	}
	tableID := strconv.Itoa(s.table.Numero)
	order, err := bot.ledger.AddItems(tableID, displayName(msg.From), s.items...)
	if err != nil {
		fsm.send(ctx, newMessage(msg, errorReply(wizardCommand, err, fsm.log)), msg)
		fsm.To(ctx, doneState, msg)
		return
	}
	fsm.log.Infow("Order taken", "table", tableID, "items", len(s.items))
	fsm.send(ctx, newMessage(msg, "✅ Pedido registrado!\n\n"+formatOrder(order)), msg)
	fsm.To(ctx, doneState, msg)
}

func (s *WhichItemsState) productFor(text string) (domain.Produto, bool) {
	for _, product := range s.products {
		if strings.EqualFold(product.Nome, text) {
			return product, true
		}
	}
	return domain.Produto{}, false
}

func (s *WhichItemsState) makeReplyKeyboard() tg.ReplyKeyboardMarkup {
	const perRow = 2
	rows := make([][]tg.KeyboardButton, 0, len(s.products)/perRow+2)
	row := make([]tg.KeyboardButton, 0, perRow)
	for _, product := range s.products {
		row = append(row, tg.NewKeyboardButton(product.Nome))
		if len(row) == perRow {
			rows = append(rows, row)
			row = make([]tg.KeyboardButton, 0, perRow)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, tg.NewKeyboardButtonRow(tg.NewKeyboardButton(finishButton)))
	keyboard := tg.NewReplyKeyboard(rows...)
	keyboard.Selective = true
	return keyboard
}

func pluralItems(n int) string {
	if n == 1 {
		return "item"
	}
	return "itens"
}
