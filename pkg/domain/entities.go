package domain

// Mesa is a physical table of the restaurant.
type Mesa struct {
	ID     int64  `json:"id"`
	Numero int    `json:"numero"`
	Status string `json:"status"`
}

// Produto is an item of the menu.
type Produto struct {
	ID        int64   `json:"id"`
	Nome      string  `json:"nome"`
	Preco     float64 `json:"preco"`
	Categoria string  `json:"categoria,omitempty"`
}

// Pedido is one order line of a Comanda.
type Pedido struct {
	ID          int64        `json:"id"`
	ComandaID   int64        `json:"comanda_id"`
	MesaID      int64        `json:"mesa_id,omitempty"`
	ProdutoID   int64        `json:"produto_id"`
	ProdutoNome string       `json:"produto_nome,omitempty"`
	Quantidade  int          `json:"quantidade"`
	Status      PedidoStatus `json:"status"`
	CriadoEm    Timestamp    `json:"criado_em"`
}

// Comanda is the ticket of a table, open until the customer pays.
type Comanda struct {
	ID        int64     `json:"id"`
	MesaID    int64     `json:"mesa_id"`
	Status    string    `json:"status"`
	AbertaEm  Timestamp `json:"aberta_em"`
	FechadaEm Timestamp `json:"fechada_em"`
	Pedidos   []Pedido  `json:"pedidos,omitempty"`
	Total     float64   `json:"total"`
}
