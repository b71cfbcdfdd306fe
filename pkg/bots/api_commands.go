package bots

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/silh/garcombot/pkg/domain"
)

// pedidoListing describes how one kitchen status is listed and announced.
type pedidoListing struct {
	status  domain.PedidoStatus
	header  string
	empty   string
	updated string
}

var (
	pedidosAguardando = pedidoListing{
		status: domain.Aguardando,
		header: "⏳ Pedidos aguardando:",
		empty:  "Nenhum pedido aguardando.",
	}
	pedidosEmPreparo = pedidoListing{
		status:  domain.EmPreparo,
		header:  "👨‍🍳 Pedidos em preparo:",
		empty:   "Nenhum pedido em preparo.",
		updated: "👨‍🍳 Pedido #%d (%s) em preparo.",
	}
	pedidosProntos = pedidoListing{
		status:  domain.Pronto,
		header:  "✅ Pedidos prontos:",
		empty:   "Nenhum pedido pronto.",
		updated: "✅ Pedido #%d (%s) pronto para entrega.",
	}
)

func (b *Bot) openComanda(ctx context.Context, req request) (string, error) {
	if len(req.args) != 1 {
		return "", errUsage
	}
	tableID, err := parseID(req.args[0])
	if err != nil {
		return "", err
	}
	comanda, err := b.backend.OpenComanda(ctx, tableID)
	if err != nil {
		return "", err
	}
	req.log.Infow("Comanda opened", "comanda", comanda.ID, "table", tableID)
	return fmt.Sprintf("✅ Comanda #%d aberta para a mesa #%d.", comanda.ID, tableID), nil
}

func (b *Bot) closeComanda(ctx context.Context, req request) (string, error) {
	if len(req.args) != 1 {
		return "", errUsage
	}
	id, err := parseID(req.args[0])
	if err != nil {
		return "", err
	}
	comanda, err := b.backend.CloseComanda(ctx, id)
	if err != nil {
		return "", err
	}
	req.log.Infow("Comanda closed", "comanda", id)
	return fmt.Sprintf("🔒 Comanda #%d fechada. Total: %s", id, formatMoney(comanda.Total)), nil
}

func (b *Bot) addPedido(ctx context.Context, req request) (string, error) {
	if len(req.args) < 2 || len(req.args) > 3 {
		return "", errUsage
	}
	comandaID, err := parseID(req.args[0])
	if err != nil {
		return "", err
	}
	productID, err := parseID(req.args[1])
	if err != nil {
		return "", err
	}
	quantity := 1
	if len(req.args) == 3 {
		quantity, err = strconv.Atoi(req.args[2])
		if err != nil || quantity <= 0 {
			return "", errUsage
		}
	}
	pedido, err := b.backend.AddPedido(ctx, comandaID, productID, quantity)
	if err != nil {
		return "", err
	}
	if pedido.ProdutoID == 0 {
		pedido.ProdutoID = productID
	}
	return fmt.Sprintf(
		"✅ Pedido #%d registrado: %dx %s na comanda #%d.",
		pedido.ID, quantity, productName(pedido), comandaID,
	), nil
}

func (b *Bot) listProducts(ctx context.Context, req request) (string, error) {
	if len(req.args) != 0 {
		return "", errUsage
	}
	products, err := b.backend.ListProducts(ctx)
	if err != nil {
		return "", err
	}
	return formatProducts(products), nil
}

func (b *Bot) listTables(ctx context.Context, req request) (string, error) {
	if len(req.args) != 0 {
		return "", errUsage
	}
	tables, err := b.backend.ListTables(ctx)
	if err != nil {
		return "", err
	}
	return formatTables(tables), nil
}

func (b *Bot) showComanda(ctx context.Context, req request) (string, error) {
	if len(req.args) != 1 {
		return "", errUsage
	}
	id, err := parseID(req.args[0])
	if err != nil {
		return "", err
	}
	comanda, err := b.backend.GetComanda(ctx, id)
	if err != nil {
		return "", err
	}
	return formatComanda(comanda), nil
}

func (b *Bot) listPedidos(listing pedidoListing) handlerFunc {
	return func(ctx context.Context, req request) (string, error) {
		if len(req.args) != 0 {
			return "", errUsage
		}
		pedidos, err := b.backend.ListPedidos(ctx, listing.status)
		if err != nil {
			return "", err
		}
		if len(pedidos) == 0 {
			return listing.empty, nil
		}
		lines := make([]string, len(pedidos))
		for i, p := range pedidos {
			lines[i] = formatPedidoLine(p)
		}
		return listing.header + "\n" + strings.Join(lines, "\n"), nil
	}
}

func (b *Bot) updatePedido(listing pedidoListing) handlerFunc {
	return func(ctx context.Context, req request) (string, error) {
		if len(req.args) != 1 {
			return "", errUsage
		}
		id, err := parseID(req.args[0])
		if err != nil {
			return "", err
		}
		pedido, err := b.backend.UpdatePedidoStatus(ctx, id, listing.status)
		if err != nil {
			return "", err
		}
		req.log.Infow("Pedido status changed", "pedido", id, "status", listing.status)
		return fmt.Sprintf(listing.updated, id, productName(pedido)), nil
	}
}
