package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avc/orderchat/internal/domain"
	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
)

const requestIDHeader = "X-Request-ID"

// HTTPOrderingClient реализует domain.OrderingService поверх HTTP+JSON
type HTTPOrderingClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewOrderingClient создает новый клиент сервиса заказов
func NewOrderingClient(baseURL string, timeout time.Duration) *HTTPOrderingClient {
	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = timeout

	return &HTTPOrderingClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type menuResponse struct {
	Menu []domain.MenuItem `json:"menu"`
}

type clearCartResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// GetMenu получает меню. Отсутствие ключа menu означает пустое меню.
func (c *HTTPOrderingClient) GetMenu(ctx context.Context) ([]domain.MenuItem, error) {
	var resp menuResponse
	if err := c.do(ctx, "get menu", http.MethodGet, "/menu", nil, &resp); err != nil {
		return nil, err
	}

	if resp.Menu == nil {
		return []domain.MenuItem{}, nil
	}
	return resp.Menu, nil
}

// Register регистрирует клиента для сессии
func (c *HTTPOrderingClient) Register(ctx context.Context, req domain.RegistrationRequest) (*domain.RegistrationResponse, error) {
	var resp domain.RegistrationResponse
	if err := c.do(ctx, "register", http.MethodPost, "/register", req, &resp); err != nil {
		return nil, err
	}

	if !resp.Success {
		return nil, NewServiceError("register", http.StatusOK, resp.Message)
	}
	return &resp, nil
}

// Chat отправляет реплику пользователя и возвращает ответ сервиса
func (c *HTTPOrderingClient) Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	var resp domain.ChatResponse
	if err := c.do(ctx, "chat", http.MethodPost, "/chat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCart получает текущую корзину сессии
func (c *HTTPOrderingClient) GetCart(ctx context.Context, sessionID string) (*domain.CartResponse, error) {
	var resp domain.CartResponse
	if err := c.do(ctx, "get cart", http.MethodGet, "/cart/"+url.PathEscape(sessionID), nil, &resp); err != nil {
		return nil, err
	}

	if resp.Cart == nil {
		resp.Cart = []domain.CartLine{}
	}
	return &resp, nil
}

// ClearCart очищает корзину сессии на стороне сервиса
func (c *HTTPOrderingClient) ClearCart(ctx context.Context, sessionID string) error {
	var resp clearCartResponse
	if err := c.do(ctx, "clear cart", http.MethodPost, "/clear-cart/"+url.PathEscape(sessionID), nil, &resp); err != nil {
		return err
	}

	if !resp.Success {
		return NewServiceError("clear cart", http.StatusOK, resp.Message)
	}
	return nil
}

// do выполняет запрос и декодирует JSON ответ в out
func (c *HTTPOrderingClient) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("ordering client: failed to encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("ordering client: failed to create %s request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return NewNetworkError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Тело ответа об ошибке читаем ограниченно, только для логов оператора
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return NewServiceError(op, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewNetworkError(op, fmt.Errorf("failed to decode response: %w", err))
	}

	return nil
}
