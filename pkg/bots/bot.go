package bots

import (
	"context"
	"fmt"
	"strings"

	tg "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/silh/garcombot/pkg/backend"
	"github.com/silh/garcombot/pkg/config"
	"github.com/silh/garcombot/pkg/domain"
	"github.com/silh/garcombot/pkg/ledger"
	"github.com/silh/garcombot/pkg/logger"
	"go.uber.org/zap"
)

var log = logger.Logger()

// TelegramAPI is the part of *tg.BotAPI the bot uses.
type TelegramAPI interface {
	Send(c tg.Chattable) (tg.Message, error)
	Request(c tg.Chattable) (*tg.APIResponse, error)
	GetUpdatesChan(config tg.UpdateConfig) tg.UpdatesChannel
	StopReceivingUpdates()
}

// Options configure which commands the bot serves and what they talk to. Backend is required in wizard and
// api modes, Ledger in memory and wizard modes.
type Options struct {
	// Username is the bot's own @name. Commands addressed to another bot with /cmd@name are ignored.
	Username    string
	Mode        config.Mode
	Access      *AccessList
	Backend     *backend.Client
	Ledger      *ledger.Ledger
	PollTimeout int
}

type Bot struct {
	API TelegramAPI

	username    string
	mode        config.Mode
	access      *AccessList
	backend     *backend.Client
	ledger      *ledger.Ledger
	pollTimeout int

	commands map[string]*Command
	menu     []*Command
	sessions map[domain.SessionKey]*FSM
}

func New(api TelegramAPI, opts Options) *Bot {
	b := &Bot{
		API:         api,
		username:    opts.Username,
		mode:        opts.Mode,
		access:      opts.Access,
		backend:     opts.Backend,
		ledger:      opts.Ledger,
		pollTimeout: opts.PollTimeout,
		sessions:    make(map[domain.SessionKey]*FSM),
	}
	b.menu = b.commandsFor(opts.Mode)
	b.commands = make(map[string]*Command, len(b.menu))
	for _, cmd := range b.menu {
		b.commands[cmd.Name] = cmd
	}
	return b
}

// Run registers the commands and processes updates one at a time until ctx is cancelled or the updates
// channel is closed.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.registerCommands(); err != nil {
		return err
	}
	u := tg.NewUpdate(0)
	u.Timeout = b.pollTimeout
	updatesC := b.API.GetUpdatesChan(u)
	log.Infow("Waiting for updates", "mode", b.mode)
	for {
		select {
		case <-ctx.Done():
			b.Stop()
			return nil
		case update, ok := <-updatesC:
			if !ok {
				return nil
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// Stop closes update channel and lets a goroutine that is in Run func to exit it.
func (b *Bot) Stop() {
	b.API.StopReceivingUpdates()
}

// HandleUpdate routes one update: commands go to the command table, plain text to the sender's wizard if one
// is running. Everything else is ignored.
func (b *Bot) HandleUpdate(ctx context.Context, update tg.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return
	}
	log := log.With("chat", msg.Chat.ID)
	if !msg.IsCommand() {
		// In groups, keyboard presses only reach the bot with its privacy mode disabled (BotFather /setprivacy).
		if fsm, ok := b.sessions[sessionKey(msg)]; ok {
			fsm.Do(ctx, msg)
		}
		return
	}
	if b.addressedElsewhere(msg) {
		log.Debugw("Command for another bot", "text", msg.Text)
		return
	}
	log.Infow("New command", "text", msg.Text)
	b.dispatch(ctx, msg, log)
}

func (b *Bot) dispatch(ctx context.Context, msg *tg.Message, log *zap.SugaredLogger) {
	cmd, ok := b.commands[msg.Command()]
	if !ok {
		log.Infow("Unknown command", "command", msg.Command())
		b.reply(msg, fmt.Sprintf(
			"Comando desconhecido: /%s. Use /start para ver os comandos disponíveis.",
			msg.Command(),
		), log)
		return
	}
	if !b.access.Allowed(cmd.Audience, msg.Chat.ID) {
		log.Warnw("Command from chat outside allow-list", "command", cmd.Name, "audience", cmd.Audience)
		b.reply(msg, cmd.Audience.denial(), log)
		return
	}
	req := request{msg: msg, args: strings.Fields(msg.CommandArguments()), log: log}
	text, err := cmd.Handle(ctx, req)
	if err != nil {
		text = errorReply(cmd, err, log)
	}
	if text == "" {
		return
	}
	reply := tg.NewMessage(msg.Chat.ID, text)
	if cmd.Markdown {
		reply.ParseMode = tg.ModeMarkdown
	}
	b.sendAndForget(reply, cmd.Name+" reply", log)
}

// registerCommands registers available bot commands.
func (b *Bot) registerCommands() error {
	botCommands := make([]tg.BotCommand, 0, len(b.menu))
	for _, cmd := range b.menu {
		botCommands = append(botCommands, tg.BotCommand{Command: cmd.Name, Description: cmd.Description})
	}
	resp, err := b.API.Request(tg.NewSetMyCommands(botCommands...))
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	if !resp.Ok {
		return fmt.Errorf("failed to register commands: %d %s", resp.ErrorCode, resp.Description)
	}
	log.Infow("Commands registration successful", "count", len(botCommands))
	return nil
}

func (b *Bot) reply(msg *tg.Message, text string, log *zap.SugaredLogger) {
	b.sendAndForget(tg.NewMessage(msg.Chat.ID, text), "reply", log)
}

// sendAndForget sends message and logs error if it occurs.
func (b *Bot) sendAndForget(msg tg.Chattable, msgType string, log *zap.SugaredLogger) {
	if _, err := b.API.Send(msg); err != nil {
		log.Warnw("Failed to send "+msgType, "err", err)
	}
}

// addressedElsewhere reports a /cmd@name command whose name is not this bot's.
func (b *Bot) addressedElsewhere(msg *tg.Message) bool {
	_, name, ok := strings.Cut(msg.CommandWithAt(), "@")
	return ok && b.username != "" && !strings.EqualFold(name, b.username)
}

func sessionKey(msg *tg.Message) domain.SessionKey {
	key := domain.SessionKey{ChatID: domain.ChatID(msg.Chat.ID)}
	if msg.From != nil {
		key.UserID = domain.UserID(msg.From.ID)
	}
	return key
}

// displayName is how the person is recorded as the opener of an order.
func displayName(user *tg.User) string {
	if user == nil {
		return "desconhecido"
	}
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name != "" {
		return name
	}
	if user.UserName != "" {
		return "@" + user.UserName
	}
	return fmt.Sprintf("usuário %d", user.ID)
}
