package bots

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/silh/garcombot/pkg/ledger"
)

func noOpenOrder(tableID string) string {
	return fmt.Sprintf("Não há pedido aberto para a mesa %s.", tableID)
}

func (b *Bot) addLedgerItem(_ context.Context, req request) (string, error) {
	if len(req.args) < 2 {
		return "", errUsage
	}
	tableID := req.args[0]
	item := strings.Join(req.args[1:], " ")
	order, err := b.ledger.AddItems(tableID, displayName(req.msg.From), item)
	if err != nil {
		return "", err
	}
	req.log.Infow("Item added", "table", tableID, "items", len(order.Items))
	return fmt.Sprintf("✅ Item adicionado à mesa %s.\n\n%s", tableID, formatOrder(order)), nil
}

func (b *Bot) listLedger(_ context.Context, req request) (string, error) {
	if len(req.args) != 0 {
		return "", errUsage
	}
	orders, err := b.ledger.List()
	if err != nil {
		return "", err
	}
	return formatOrders("📋 Pedidos em andamento:", "Nenhum pedido em andamento.", orders), nil
}

func (b *Bot) listLedgerReady(_ context.Context, req request) (string, error) {
	if len(req.args) != 0 {
		return "", errUsage
	}
	orders, err := b.ledger.ListByStatus(ledger.StatusReady)
	if err != nil {
		return "", err
	}
	return formatOrders("✅ Pedidos prontos:", "Nenhum pedido pronto.", orders), nil
}

func (b *Bot) markLedgerReady(_ context.Context, req request) (string, error) {
	if len(req.args) != 1 {
		return "", errUsage
	}
	tableID := req.args[0]
	if _, err := b.ledger.MarkReady(tableID); err != nil {
		if errors.Is(err, ledger.ErrNoOpenOrder) {
			return noOpenOrder(tableID), nil
		}
		return "", err
	}
	return fmt.Sprintf("✅ Pedido da mesa %s pronto para entrega.", tableID), nil
}

func (b *Bot) closeLedgerOrder(_ context.Context, req request) (string, error) {
	if len(req.args) != 1 {
		return "", errUsage
	}
	tableID := req.args[0]
	order, err := b.ledger.Close(tableID)
	if err != nil {
		if errors.Is(err, ledger.ErrNoOpenOrder) {
			return noOpenOrder(tableID), nil
		}
		return "", err
	}
	req.log.Infow("Order closed", "table", tableID)
	return fmt.Sprintf("🔒 Pedido da mesa %s encerrado.\n\n%s", tableID, formatOrder(order)), nil
}
