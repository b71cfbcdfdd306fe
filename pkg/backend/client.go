package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/silh/garcombot/pkg/domain"
	"github.com/silh/garcombot/pkg/logger"
)

var log = logger.Logger()

const requestIDHeader = "X-Request-ID"

// Client talks to the restaurant backend, which owns tables, comandas, products and order lines.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the API rooted at baseURL. A zero timeout leaves requests without one.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListTables(ctx context.Context) ([]domain.Mesa, error) {
	var tables []domain.Mesa
	if err := c.do(ctx, http.MethodGet, "/mesas", nil, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Produto, error) {
	var products []domain.Produto
	if err := c.do(ctx, http.MethodGet, "/produtos", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// OpenComanda opens a new comanda for the given table.
func (c *Client) OpenComanda(ctx context.Context, tableID int64) (domain.Comanda, error) {
	var comanda domain.Comanda
	body := map[string]int64{"mesa_id": tableID}
	if err := c.do(ctx, http.MethodPost, "/comandas", body, &comanda); err != nil {
		return domain.Comanda{}, err
	}
	return comanda, nil
}

func (c *Client) GetComanda(ctx context.Context, id int64) (domain.Comanda, error) {
	var comanda domain.Comanda
	if err := c.do(ctx, http.MethodGet, "/comandas/"+strconv.FormatInt(id, 10), nil, &comanda); err != nil {
		return domain.Comanda{}, err
	}
	return comanda, nil
}

// CloseComanda closes a comanda, the response carries the final total.
func (c *Client) CloseComanda(ctx context.Context, id int64) (domain.Comanda, error) {
	var comanda domain.Comanda
	path := "/comandas/" + strconv.FormatInt(id, 10) + "/fechar"
	if err := c.do(ctx, http.MethodPatch, path, nil, &comanda); err != nil {
		return domain.Comanda{}, err
	}
	return comanda, nil
}

// AddPedido adds an order line to an open comanda.
func (c *Client) AddPedido(ctx context.Context, comandaID, productID int64, quantity int) (domain.Pedido, error) {
	var pedido domain.Pedido
	path := "/comandas/" + strconv.FormatInt(comandaID, 10) + "/pedidos"
	body := struct {
		ProdutoID  int64 `json:"produto_id"`
		Quantidade int   `json:"quantidade"`
	}{ProdutoID: productID, Quantidade: quantity}
	if err := c.do(ctx, http.MethodPost, path, body, &pedido); err != nil {
		return domain.Pedido{}, err
	}
	return pedido, nil
}

// ListPedidos returns order lines with the given kitchen status.
func (c *Client) ListPedidos(ctx context.Context, status domain.PedidoStatus) ([]domain.Pedido, error) {
	var pedidos []domain.Pedido
	path := "/pedidos?" + url.Values{"status": {string(status)}}.Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &pedidos); err != nil {
		return nil, err
	}
	return pedidos, nil
}

func (c *Client) UpdatePedidoStatus(ctx context.Context, id int64, status domain.PedidoStatus) (domain.Pedido, error) {
	var pedido domain.Pedido
	body := map[string]domain.PedidoStatus{"status": status}
	if err := c.do(ctx, http.MethodPatch, "/pedidos/"+strconv.FormatInt(id, 10), body, &pedido); err != nil {
		return domain.Pedido{}, err
	}
	return pedido, nil
}

// do performs a single request, there are no retries. Responses with status >= 400 are returned as *Error.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("could not build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	log := log.With("method", method, "path", path, "requestID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("could not reach backend: %w", err)
	}
	defer resp.Body.Close()
	log.Debugw("Backend responded", "status", resp.StatusCode)
	if resp.StatusCode >= 400 {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed reading error response (%s): %w", resp.Status, err)
		}
		return newError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed decoding: %w", err)
	}
	return nil
}
