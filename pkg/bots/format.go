package bots

import (
	"fmt"
	"strings"

	"github.com/silh/garcombot/pkg/domain"
	"github.com/silh/garcombot/pkg/ledger"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func formatMoney(value float64) string {
	return printer.Sprintf("R$ %.2f", value)
}

func formatProducts(products []domain.Produto) string {
	if len(products) == 0 {
		return "Nenhum produto cadastrado."
	}
	var sb strings.Builder
	sb.WriteString("📋 Produtos:\n")
	category := ""
	for _, p := range products {
		if p.Categoria != "" && p.Categoria != category {
			category = p.Categoria
			sb.WriteString(fmt.Sprintf("\n%s\n", category))
		}
		sb.WriteString(fmt.Sprintf("#%d %s - %s\n", p.ID, p.Nome, formatMoney(p.Preco)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatTables(tables []domain.Mesa) string {
	if len(tables) == 0 {
		return "Nenhuma mesa cadastrada."
	}
	var sb strings.Builder
	sb.WriteString("🪑 Mesas:\n")
	for _, t := range tables {
		sb.WriteString(fmt.Sprintf("Mesa %d (#%d) - %s\n", t.Numero, t.ID, t.Status))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func tableLabel(t domain.Mesa) string {
	return fmt.Sprintf("Mesa %d", t.Numero)
}

func productName(p domain.Pedido) string {
	if p.ProdutoNome != "" {
		return p.ProdutoNome
	}
	return fmt.Sprintf("produto #%d", p.ProdutoID)
}

func formatPedidoLine(p domain.Pedido) string {
	line := fmt.Sprintf("#%d %dx %s", p.ID, p.Quantidade, productName(p))
	if p.ComandaID != 0 {
		line += fmt.Sprintf(" - comanda #%d", p.ComandaID)
	}
	if p.MesaID != 0 {
		line += fmt.Sprintf(", mesa #%d", p.MesaID)
	}
	return line
}

func formatComanda(c domain.Comanda) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🧾 Comanda #%d - mesa #%d\n", c.ID, c.MesaID))
	sb.WriteString(fmt.Sprintf("Status: %s\n", c.Status))
	sb.WriteString(fmt.Sprintf("Aberta em: %s\n", c.AbertaEm))
	if !c.FechadaEm.IsZero() {
		sb.WriteString(fmt.Sprintf("Fechada em: %s\n", c.FechadaEm))
	}
	sb.WriteRune('\n')
	if len(c.Pedidos) == 0 {
		sb.WriteString("Nenhum pedido nesta comanda.\n")
	} else {
		sb.WriteString("Pedidos:\n")
		for _, p := range c.Pedidos {
			sb.WriteString(fmt.Sprintf("#%d %dx %s - %s\n", p.ID, p.Quantidade, productName(p), p.Status.Label()))
		}
	}
	sb.WriteString(fmt.Sprintf("\nTotal: %s", formatMoney(c.Total)))
	return sb.String()
}

func formatOrder(order ledger.Order) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mesa %s (aberto por %s) - %s", order.TableID, order.OpenedBy, order.Status))
	for i, item := range order.Items {
		sb.WriteString(fmt.Sprintf("\n%d. %s", i+1, item))
	}
	return sb.String()
}

func formatOrders(header, empty string, orders []ledger.Order) string {
	if len(orders) == 0 {
		return empty
	}
	formatted := make([]string, len(orders))
	for i, order := range orders {
		formatted[i] = formatOrder(order)
	}
	return header + "\n\n" + strings.Join(formatted, "\n\n")
}
