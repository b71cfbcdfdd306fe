package bots

import (
	"strings"
	"testing"

	"github.com/silh/garcombot/pkg/config"
)

func TestMemoryModeOrderLifecycle(t *testing.T) {
	b := newTestBot(t, config.ModeMemory, nil)

	got := b.send(t, waiterChat, ana, "/cadastrar 5 pizza   de calabresa")
	want := "✅ Item adicionado à mesa 5.\n\nMesa 5 (aberto por Ana Souza) - aberto\n1. pizza de calabresa"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	b.send(t, waiterChat, bruno, "/cadastrar 5 guaraná")
	b.send(t, waiterChat, bruno, "/cadastrar 2 água")

	got = b.send(t, waiterChat, ana, "/listar")
	if !strings.HasPrefix(got, "📋 Pedidos em andamento:\n\nMesa 2 (aberto por @bruno)") {
		t.Fatalf("unexpected listing %q", got)
	}
	if !strings.Contains(got, "Mesa 5 (aberto por Ana Souza) - aberto\n1. pizza de calabresa\n2. guaraná") {
		t.Fatalf("unexpected listing %q", got)
	}

	if got := b.send(t, waiterChat, ana, "/prontos"); got != "Nenhum pedido pronto." {
		t.Fatalf("unexpected reply %q", got)
	}
	if got := b.send(t, waiterChat, ana, "/pronto 5"); got != "✅ Pedido da mesa 5 pronto para entrega." {
		t.Fatalf("unexpected reply %q", got)
	}
	got = b.send(t, waiterChat, ana, "/prontos")
	if !strings.Contains(got, "Mesa 5") || strings.Contains(got, "Mesa 2") {
		t.Fatalf("unexpected ready listing %q", got)
	}

	got = b.send(t, waiterChat, ana, "/encerrar 5")
	if !strings.HasPrefix(got, "🔒 Pedido da mesa 5 encerrado.") {
		t.Fatalf("unexpected reply %q", got)
	}
	if got := b.send(t, waiterChat, ana, "/encerrar 5"); got != "Não há pedido aberto para a mesa 5." {
		t.Fatalf("unexpected reply %q", got)
	}
	if got := b.send(t, waiterChat, ana, "/pronto 5"); got != "Não há pedido aberto para a mesa 5." {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestMemoryModeEmptyListing(t *testing.T) {
	b := newTestBot(t, config.ModeMemory, nil)

	if got := b.send(t, waiterChat, ana, "/listar"); got != "Nenhum pedido em andamento." {
		t.Fatalf("unexpected reply %q", got)
	}
	if got := b.send(t, strangerChat, ana, "/listar"); got != "Este comando só pode ser usado no grupo dos garçons." {
		t.Fatalf("unexpected reply %q", got)
	}
}
