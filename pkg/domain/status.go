package domain

// PedidoStatus is the kitchen-facing status of an order line.
type PedidoStatus string

const (
	Aguardando PedidoStatus = "aguardando"
	EmPreparo  PedidoStatus = "em_preparo"
	Pronto     PedidoStatus = "pronto"
)

var pedidoStatusLabels = map[PedidoStatus]string{
	Aguardando: "Aguardando",
	EmPreparo:  "Em preparo",
	Pronto:     "Pronto",
}

// Label returns a human readable name, falling back to the raw value for statuses we don't know.
func (s PedidoStatus) Label() string {
	if label, ok := pedidoStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

const (
	MesaLivre   = "livre"
	MesaOcupada = "ocupada"
)

const (
	ComandaAberta  = "aberta"
	ComandaFechada = "fechada"
)
