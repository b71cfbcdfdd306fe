package bots

import (
	"testing"

	"github.com/silh/garcombot/pkg/domain"
	"github.com/silh/garcombot/pkg/ledger"
)

func TestFormatMoney(t *testing.T) {
	tests := map[float64]string{
		0:      "R$ 0,00",
		6.5:    "R$ 6,50",
		1234.5: "R$ 1.234,50",
	}
	for value, want := range tests {
		if got := formatMoney(value); got != want {
			t.Errorf("formatMoney(%v): expected %q, got %q", value, want, got)
		}
	}
}

func TestEscapeMarkdown(t *testing.T) {
	got := escapeMarkdown("/pedir <comanda_id> [quantidade] *")
	want := "/pedir <comanda\\_id> \\[quantidade] \\*"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatProductsGroupsCategories(t *testing.T) {
	got := formatProducts([]domain.Produto{
		{ID: 1, Nome: "Coxinha", Preco: 6.5, Categoria: "Salgados"},
		{ID: 2, Nome: "Esfiha", Preco: 7, Categoria: "Salgados"},
		{ID: 3, Nome: "Suco", Preco: 8, Categoria: "Bebidas"},
	})
	want := "📋 Produtos:\n\nSalgados\n#1 Coxinha - R$ 6,50\n#2 Esfiha - R$ 7,00\n\nBebidas\n#3 Suco - R$ 8,00"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if formatProducts(nil) != "Nenhum produto cadastrado." {
		t.Fatal("unexpected empty products text")
	}
}

func TestFormatComandaWithoutPedidos(t *testing.T) {
	got := formatComanda(domain.Comanda{ID: 3, MesaID: 1, Status: domain.ComandaAberta})
	want := "🧾 Comanda #3 - mesa #1\nStatus: aberta\nAberta em: -\n\nNenhum pedido nesta comanda.\n\nTotal: R$ 0,00"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatOrders(t *testing.T) {
	orders := []ledger.Order{
		{TableID: "1", OpenedBy: "Ana", Items: []string{"café"}, Status: ledger.StatusOpen},
		{TableID: "3", OpenedBy: "Bruno", Items: []string{"bolo", "chá"}, Status: ledger.StatusReady},
	}
	got := formatOrders("Pedidos:", "vazio", orders)
	want := "Pedidos:\n\nMesa 1 (aberto por Ana) - aberto\n1. café\n\nMesa 3 (aberto por Bruno) - pronto\n1. bolo\n2. chá"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if formatOrders("Pedidos:", "vazio", nil) != "vazio" {
		t.Fatal("expected empty text")
	}
}
