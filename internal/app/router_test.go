package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avc/orderchat/internal/config"
	"github.com/avc/orderchat/internal/domain"
	"github.com/avc/orderchat/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newOrderingServer поднимает сервис заказов: бургеры в корзину, checkout выдает чек
func newOrderingServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /menu", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"menu":[{"name":"Cheese Burger","price":17,"category":"Burgers"}]}`)) //nolint:errcheck
	})
	mux.HandleFunc("POST /register", func(w http.ResponseWriter, r *http.Request) {
		var req domain.RegistrationRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.SessionID, 32)
		w.Write([]byte(`{"success":true,"message":"Welcome ` + req.CustomerName + `!"}`)) //nolint:errcheck
	})
	mux.HandleFunc("POST /chat", func(w http.ResponseWriter, r *http.Request) {
		var req domain.ChatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if strings.Contains(req.Message, "checkout") {
			w.Write([]byte(`{"response":"----- Receipt -----\nOrder ID: 7\nTotal: $34\n---------------------","has_receipt":true}`)) //nolint:errcheck
			return
		}
		w.Write([]byte(`{"response":"Added 2 Cheese Burgers","cart_items":[{"name":"Cheese Burger","price":17,"quantity":2}]}`)) //nolint:errcheck
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_OrderingFlow(t *testing.T) {
	ordering := newOrderingServer(t)
	logger := zap.NewNop()

	cfg := &config.Config{
		OrderingAddress:         ordering.URL,
		RequestTimeout:          5 * time.Second,
		RegistrationPromptDelay: time.Hour,
		NewOrderCartPolicy:      domain.CartPolicyKeep,
		DispatchQueueSize:       2,
	}
	deps := initDependencies(cfg, memory.NewStore(nil), logger)
	router := setupRouter(deps, logger)

	w := doJSON(t, router, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	deps.session.Start(context.Background())

	w = doJSON(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/menu", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cheese Burger")

	// До регистрации заказы не принимаются
	w = doJSON(t, router, http.MethodPost, "/api/chat?wait=true", `{"message":"2 cheese burgers"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/session/register", `{"customer_name":"Sam","customer_phone":"5551234"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome Sam!")

	w = doJSON(t, router, http.MethodPost, "/api/chat?wait=true", `{"message":"2 cheese burgers"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var view domain.SessionView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Equal(t, 34.0, view.Total)
	assert.Equal(t, domain.StateIdle, view.State)

	w = doJSON(t, router, http.MethodPost, "/api/chat?wait=true", `{"message":"checkout"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Equal(t, domain.StateReceiptShown, view.State)
	require.NotNil(t, view.Turns[len(view.Turns)-1].Receipt)

	w = doJSON(t, router, http.MethodPost, "/api/chat?wait=true", `{"message":"more fries"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/order/new", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Equal(t, domain.StateIdle, view.State)
	assert.Equal(t, 34.0, view.Total)

	w = doJSON(t, router, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_BackgroundDispatch(t *testing.T) {
	ordering := newOrderingServer(t)
	logger := zap.NewNop()

	store := memory.NewStore(map[string]string{
		domain.KeyRegistered:   domain.RegisteredValue,
		domain.KeyCustomerName: "Sam",
	})
	cfg := &config.Config{
		OrderingAddress:    ordering.URL,
		RequestTimeout:     5 * time.Second,
		NewOrderCartPolicy: domain.CartPolicyKeep,
		DispatchQueueSize:  2,
	}
	deps := initDependencies(cfg, store, logger)
	router := setupRouter(deps, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	deps.dispatcher.Start(ctx)
	defer deps.dispatcher.Stop()

	// Корзину сервис не вернет: /cart не реализован, сессия стартует с пустой корзиной
	deps.session.Start(ctx)

	w := doJSON(t, router, http.MethodPost, "/api/chat", `{"message":"2 cheese burgers"}`)
	require.Equal(t, http.StatusAccepted, w.Code)

	require.Eventually(t, func() bool {
		return deps.session.State() == domain.StateIdle && deps.session.CartTotal() == 34.0
	}, 2*time.Second, 10*time.Millisecond)
}
