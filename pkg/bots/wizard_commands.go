package bots

import "context"

// wizardCommand is used to render errors that happen in the middle of the wizard.
var wizardCommand = &Command{Name: "pedir"}

// startWizard starts the order wizard, replacing one the same person may have left unfinished.
func (b *Bot) startWizard(ctx context.Context, req request) (string, error) {
	tables, err := b.backend.ListTables(ctx)
	if err != nil {
		return "", err
	}
	if len(tables) == 0 {
		return "Nenhuma mesa cadastrada.", nil
	}
	key := sessionKey(req.msg)
	fsm := NewFSM(key, b)
	b.sessions[key] = fsm
	fsm.To(ctx, &WhichTableState{tables: tables}, req.msg)
	return "", nil
}

func (b *Bot) cancelWizard(ctx context.Context, req request) (string, error) {
	fsm, ok := b.sessions[sessionKey(req.msg)]
	if !ok {
		return "Nenhum pedido em andamento para cancelar.", nil
	}
	fsm.To(ctx, doneState, req.msg)
	b.sendAndForget(newMessage(req.msg, "Pedido cancelado."), "cancel notification", req.log)
	return "", nil
}
