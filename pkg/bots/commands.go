package bots

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tg "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/silh/garcombot/pkg/backend"
	"github.com/silh/garcombot/pkg/config"
	"go.uber.org/zap"
)

// errUsage makes the bot reply with the command usage.
var errUsage = errors.New("invalid arguments")

type request struct {
	msg  *tg.Message
	args []string
	log  *zap.SugaredLogger
}

// handlerFunc returns the text to reply with. An empty text means the handler already replied.
type handlerFunc func(ctx context.Context, req request) (string, error)

// Command is one entry of the dispatch table.
type Command struct {
	Name        string
	Args        string
	Description string
	Audience    Audience
	Markdown    bool
	Handle      handlerFunc
}

func (c *Command) Usage() string {
	return strings.TrimSpace("Uso: /" + c.Name + " " + c.Args)
}

// commandsFor returns the command table of a mode in the order it is shown in the menu.
func (b *Bot) commandsFor(mode config.Mode) []*Command {
	commands := []*Command{
		{Name: "start", Description: "Mostra os comandos disponíveis", Audience: Everyone, Markdown: true, Handle: b.start},
		{Name: "getid", Description: "Mostra o ID deste chat", Audience: Everyone, Handle: b.getID},
	}
	switch mode {
	case config.ModeMemory:
		commands = append(commands,
			&Command{Name: "cadastrar", Args: "<mesa> <item>", Description: "Adiciona um item ao pedido da mesa", Audience: Waiters, Handle: b.addLedgerItem},
			&Command{Name: "listar", Description: "Lista os pedidos em andamento", Audience: Waiters, Handle: b.listLedger},
			&Command{Name: "prontos", Description: "Mostra os pedidos prontos para entrega", Audience: Waiters, Handle: b.listLedgerReady},
			&Command{Name: "pronto", Args: "<mesa>", Description: "Marca o pedido da mesa como pronto", Audience: Waiters, Handle: b.markLedgerReady},
			&Command{Name: "encerrar", Args: "<mesa>", Description: "Fecha o pedido da mesa", Audience: Waiters, Handle: b.closeLedgerOrder},
		)
	case config.ModeWizard:
		commands = append(commands,
			&Command{Name: "pedir", Description: "Inicia um pedido escolhendo mesa e itens (em grupos, desative o modo de privacidade do bot)", Audience: Waiters, Handle: b.startWizard},
			&Command{Name: "cancelar", Description: "Cancela o pedido em andamento", Audience: Waiters, Handle: b.cancelWizard},
			&Command{Name: "listar", Description: "Lista os pedidos em andamento", Audience: Waiters, Handle: b.listLedger},
			&Command{Name: "fechar", Args: "<mesa>", Description: "Fecha o pedido da mesa", Audience: Waiters, Handle: b.closeLedgerOrder},
		)
	case config.ModeAPI:
		commands = append(commands,
			&Command{Name: "abrir", Args: "<mesa_id>", Description: "Abre uma comanda para a mesa", Audience: Waiters, Handle: b.openComanda},
			&Command{Name: "fechar", Args: "<comanda_id>", Description: "Fecha a comanda e mostra o total", Audience: Waiters, Handle: b.closeComanda},
			&Command{Name: "pedir", Args: "<comanda_id> <produto_id> [quantidade]", Description: "Adiciona um pedido à comanda", Audience: Waiters, Handle: b.addPedido},
			&Command{Name: "produtos", Description: "Lista os produtos", Audience: Waiters, Handle: b.listProducts},
			&Command{Name: "mesas", Description: "Lista as mesas", Audience: Waiters, Handle: b.listTables},
			&Command{Name: "comanda", Args: "<comanda_id>", Description: "Mostra uma comanda", Audience: Waiters, Handle: b.showComanda},
			&Command{Name: "ver_prontos", Description: "Mostra os pedidos prontos para entrega", Audience: Waiters, Handle: b.listPedidos(pedidosProntos)},
			&Command{Name: "pedidos_aguardando", Description: "Pedidos aguardando preparo", Audience: Kitchen, Handle: b.listPedidos(pedidosAguardando)},
			&Command{Name: "pedidos_em_preparo", Description: "Pedidos em preparo", Audience: Kitchen, Handle: b.listPedidos(pedidosEmPreparo)},
			&Command{Name: "pedidos_prontos", Description: "Pedidos prontos", Audience: Kitchen, Handle: b.listPedidos(pedidosProntos)},
			&Command{Name: "em_preparo", Args: "<pedido_id>", Description: "Marca um pedido como em preparo", Audience: Kitchen, Handle: b.updatePedido(pedidosEmPreparo)},
			&Command{Name: "pronto", Args: "<pedido_id>", Description: "Marca um pedido como pronto", Audience: Kitchen, Handle: b.updatePedido(pedidosProntos)},
		)
	}
	return commands
}

func (b *Bot) start(_ context.Context, _ request) (string, error) {
	var sb strings.Builder
	sb.WriteString("Olá! Eu sou o bot de pedidos do restaurante 🍔\n\n")
	sb.WriteString("Aqui estão os comandos que você pode usar:\n\n")
	for _, cmd := range b.menu {
		if cmd.Name == "start" {
			continue
		}
		line := strings.TrimSpace("/" + cmd.Name + " " + cmd.Args)
		sb.WriteString(fmt.Sprintf("%s - %s\n", escapeMarkdown(line), escapeMarkdown(cmd.Description)))
	}
	return sb.String(), nil
}

func (b *Bot) getID(_ context.Context, req request) (string, error) {
	return fmt.Sprintf("ID deste chat: %d", req.msg.Chat.ID), nil
}

// errorReply renders a failed command: usage errors as the usage string, backend errors with their message,
// anything else as is.
func errorReply(cmd *Command, err error, log *zap.SugaredLogger) string {
	if errors.Is(err, errUsage) {
		return cmd.Usage()
	}
	var apiErr *backend.Error
	if errors.As(err, &apiErr) {
		log.Warnw("Backend rejected command", "command", cmd.Name, "status", apiErr.StatusCode, "err", err)
		if apiErr.Message != "" {
			return "Erro na API: " + apiErr.Message
		}
		return fmt.Sprintf("Erro na API: %d - %s", apiErr.StatusCode, apiErr.Body)
	}
	log.Warnw("Command failed", "command", cmd.Name, "err", err)
	return "Ocorreu um erro: " + err.Error()
}

// parseID parses a positive numeric id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errUsage
	}
	return id, nil
}
